package collection

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/landkeeper/internal/feed"
	"github.com/dmitrijs2005/landkeeper/internal/gateway"
	"github.com/dmitrijs2005/landkeeper/internal/logging"
	"github.com/dmitrijs2005/landkeeper/internal/models"
	"github.com/stretchr/testify/require"
)

func TestHandleEvent_MergesCleanRows(t *testing.T) {
	h := newHarness(t, Projects)
	ctx := context.Background()
	p := h.insert(t, models.TableProjects, models.Row{"title": "Lawn"})
	require.NoError(t, h.ctrl.Load(ctx))

	h.ctrl.HandleEvent(feed.Event{Table: models.TableProjects, Op: feed.OpUpdate, New: models.Row{"id": p.ID(), "title": "Lawn 2"}})
	v, _ := h.ctrl.Get(p.ID())
	require.Equal(t, "Lawn 2", v.Fields.String("title"))
	require.False(t, v.Stale)

	h.ctrl.HandleEvent(feed.Event{Table: models.TableProjects, Op: feed.OpInsert, New: models.Row{"id": "p2", "title": "Remote"}})
	require.Len(t, h.ctrl.List(), 2)

	h.ctrl.HandleEvent(feed.Event{Table: models.TablePairs, Op: feed.OpInsert,
		New: models.Row{"id": "c2", "project_id": p.ID(), "before_key": "k2", "sort_order": int64(2)}})
	h.ctrl.HandleEvent(feed.Event{Table: models.TablePairs, Op: feed.OpInsert,
		New: models.Row{"id": "c1", "project_id": p.ID(), "before_key": "k1", "sort_order": int64(1)}})
	v, _ = h.ctrl.Get(p.ID())
	require.Equal(t, []string{"c1", "c2"}, []string{v.Children[0].ID, v.Children[1].ID})

	h.ctrl.HandleEvent(feed.Event{Table: models.TablePairs, Op: feed.OpDelete, Old: models.Row{"id": "c1"}})
	v, _ = h.ctrl.Get(p.ID())
	require.Len(t, v.Children, 1)

	h.ctrl.HandleEvent(feed.Event{Table: models.TableProjects, Op: feed.OpDelete, Old: models.Row{"id": "p2"}})
	require.Len(t, h.ctrl.List(), 1)

	h.ctrl.HandleEvent(feed.Event{Table: models.TableMessages, Op: feed.OpInsert, New: models.Row{"id": "m"}})
	require.Len(t, h.ctrl.List(), 1)
}

func TestHandleEvent_DirtyEntityIsFlaggedStaleThenRefreshedOnSave(t *testing.T) {
	h := newHarness(t, Projects)
	ctx := context.Background()
	p := h.insert(t, models.TableProjects, models.Row{"title": "Lawn"})
	require.NoError(t, h.ctrl.Load(ctx))

	require.NoError(t, h.ctrl.Edit(p.ID(), models.Row{"title": "Lawn by A"}))

	remote, err := h.raw.Update(ctx, models.TableProjects, p.ID(), models.Row{"title": "Lawn by B", "description": "from B"})
	require.NoError(t, err)
	h.ctrl.HandleEvent(feed.Event{Table: models.TableProjects, Op: feed.OpUpdate, New: remote})

	v, _ := h.ctrl.Get(p.ID())
	require.Equal(t, "Lawn by A", v.Fields.String("title"), "unsaved edits survive a remote update")
	require.Equal(t, "", v.Fields.String("description"))
	require.True(t, v.Stale)
	require.Equal(t, "dirty", v.State)

	v, err = h.ctrl.Save(ctx, p.ID())
	require.NoError(t, err)
	require.False(t, v.Stale)
	require.Equal(t, "Lawn by A", v.Fields.String("title"))
	require.Equal(t, "from B", v.Fields.String("description"))
}

func TestHandleEvent_StaleRefreshedOnDiscard(t *testing.T) {
	h := newHarness(t, Projects)
	ctx := context.Background()
	p := h.insert(t, models.TableProjects, models.Row{"title": "Lawn"})
	require.NoError(t, h.ctrl.Load(ctx))
	require.NoError(t, h.ctrl.Edit(p.ID(), models.Row{"title": "Lawn by A"}))

	remote, err := h.raw.Update(ctx, models.TableProjects, p.ID(), models.Row{"title": "Lawn by B"})
	require.NoError(t, err)
	h.ctrl.HandleEvent(feed.Event{Table: models.TableProjects, Op: feed.OpUpdate, New: remote})
	h.ctrl.HandleEvent(feed.Event{Table: models.TablePairs, Op: feed.OpInsert, New: models.Row{"id": "c9", "project_id": p.ID()}})

	require.NoError(t, h.ctrl.Discard(ctx, p.ID()))
	v, _ := h.ctrl.Get(p.ID())
	require.Equal(t, "Lawn by B", v.Fields.String("title"))
	require.False(t, v.Stale)
	require.Equal(t, "clean", v.State)
	require.Empty(t, v.Children, "the pair event was not merged into the dirty entity")
}

func TestHandleEvent_FilterAppliesToMergedRows(t *testing.T) {
	h := newHarness(t, Quotes)
	ctx := context.Background()
	q := h.insert(t, models.TableQuotes, models.Row{"name": "Ann", "email": "a@b.co", "service": "Mulch", "description": "fifteen chars long"})
	require.NoError(t, h.ctrl.SetFilter(ctx, gateway.Eq("status", models.QuoteStatusNew)))
	require.Len(t, h.ctrl.List(), 1)

	h.ctrl.HandleEvent(feed.Event{Table: models.TableQuotes, Op: feed.OpUpdate, New: models.Row{"id": q.ID(), "status": "sent"}})
	require.Empty(t, h.ctrl.List())

	h.ctrl.HandleEvent(feed.Event{Table: models.TableQuotes, Op: feed.OpInsert, New: models.Row{"id": "q2", "status": "sent"}})
	require.Empty(t, h.ctrl.List())
	h.ctrl.HandleEvent(feed.Event{Table: models.TableQuotes, Op: feed.OpInsert, New: models.Row{"id": "q3", "status": "new"}})
	require.Len(t, h.ctrl.List(), 1)
}

func TestAttach_ReconnectResyncsAndKeepsStaging(t *testing.T) {
	hub := feed.NewHub(logging.Nop{})
	defer hub.Close()

	h := newHarness(t, Projects, func(g gateway.Gateway) gateway.Gateway { return gateway.NewPublishing(g, hub) })
	ctx := context.Background()
	a := h.insert(t, models.TableProjects, models.Row{"title": "A"})
	require.NoError(t, h.ctrl.Load(ctx))

	detach := h.ctrl.Attach(ctx, hub)
	defer detach()
	require.Equal(t, 1, hub.Subscriptions(models.TableProjects))
	require.Equal(t, 1, hub.Subscriptions(models.TablePairs))

	require.NoError(t, h.ctrl.Edit(a.ID(), models.Row{"description": "staged"}))

	// Written behind the feed's back, as if missed during a disconnect.
	missed := h.insert(t, models.TableProjects, models.Row{"title": "Missed"})
	hub.Reconnected()

	require.Eventually(t, func() bool { return len(h.ctrl.List()) == 2 }, waitFor, pollEvery)
	_, err := h.ctrl.Get(missed.ID())
	require.NoError(t, err)
	v, _ := h.ctrl.Get(a.ID())
	require.Equal(t, "staged", v.Fields.String("description"))
	require.Equal(t, "dirty", v.State)

	created, err := h.ctrl.Create(ctx, Draft{Fields: models.Row{"title": "Via feed"}})
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		_, err := h.ctrl.Get(created.ID)
		return err == nil
	}, waitFor, pollEvery)

	detach()
	require.Equal(t, 0, hub.Subscriptions(models.TableProjects))
}
