package gateway

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/landkeeper/internal/common"
	"github.com/dmitrijs2005/landkeeper/internal/feed"
	"github.com/dmitrijs2005/landkeeper/internal/models"
	"github.com/dmitrijs2005/landkeeper/internal/server/migrations"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newSQLiteGateway(t *testing.T) *SQLGateway {
	t.Helper()
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared&_time_format=sqlite", t.Name()))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Apply(context.Background(), db, "sqlite"))

	tick := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		tick = tick.Add(time.Second)
		return tick
	}
	return NewSQLGateway(db, SQLite, DefaultSchema(), WithClock(clock))
}

func TestSQLite_CRUDRoundTrip(t *testing.T) {
	g := newSQLiteGateway(t)
	ctx := context.Background()

	p1, err := g.Insert(ctx, models.TableProjects, models.Row{"title": "Lawn Redo"})
	require.NoError(t, err)
	p2, err := g.Insert(ctx, models.TableProjects, models.Row{"title": "Patio", "featured": true})
	require.NoError(t, err)

	rows, err := g.List(ctx, models.TableProjects, Query{Orders: []Order{Desc("featured"), Desc("created_at")}})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, p2.ID(), rows[0].ID())
	require.Equal(t, p1.ID(), rows[1].ID())

	project, err := models.ProjectFromRow(rows[1])
	require.NoError(t, err)
	require.Equal(t, "", project.Description)
	require.False(t, project.Featured)
	require.False(t, project.CreatedAt.IsZero())

	updated, err := g.Update(ctx, models.TableProjects, p1.ID(), models.Row{"description": "front yard"})
	require.NoError(t, err)
	require.Equal(t, "front yard", updated.String("description"))
	require.Equal(t, "Lawn Redo", updated.String("title"))

	require.NoError(t, g.Delete(ctx, models.TableProjects, p1.ID()))
	require.ErrorIs(t, g.Delete(ctx, models.TableProjects, p1.ID()), common.ErrorNotFound)

	_, err = Get(ctx, g, models.TableProjects, p1.ID())
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSQLite_FilterAndAtomic(t *testing.T) {
	g := newSQLiteGateway(t)
	ctx := context.Background()

	q, err := g.Insert(ctx, models.TableQuotes, models.Quote{
		Name: "Ann", Email: "ann@example.com", Service: "Mulch", Description: "fifteen chars at least",
		ContactPref: "email", Status: models.QuoteStatusNew,
	}.Row())
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := g.Insert(ctx, models.TableQuoteMedia, models.Row{"quote_id": q.ID(), "kind": "image", "path": fmt.Sprintf("quotes/%s/%d.jpg", q.ID(), i), "sort_order": i})
		require.NoError(t, err)
	}

	media, err := g.List(ctx, models.TableQuoteMedia, Query{Filters: []Filter{Eq("quote_id", q.ID())}, Orders: []Order{Desc("sort_order")}})
	require.NoError(t, err)
	require.Len(t, media, 3)
	require.Equal(t, int64(2), media[0].Int("sort_order"))

	// A failing statement inside Atomic rolls back the media deletes.
	err = g.Atomic(ctx, func(ctx context.Context, tx Gateway) error {
		for _, m := range media {
			if err := tx.Delete(ctx, models.TableQuoteMedia, m.ID()); err != nil {
				return err
			}
		}
		return tx.Delete(ctx, models.TableQuotes, "missing")
	})
	require.ErrorIs(t, err, common.ErrorNotFound)

	media, err = g.List(ctx, models.TableQuoteMedia, Query{Filters: []Filter{Eq("quote_id", q.ID())}})
	require.NoError(t, err)
	require.Len(t, media, 3)

	sent, err := g.List(ctx, models.TableQuotes, Query{Filters: []Filter{Eq("quote_sent", false), Eq("status", "new")}})
	require.NoError(t, err)
	require.Len(t, sent, 1)
	require.True(t, (Query{Filters: []Filter{Eq("quote_sent", false)}}).Matches(sent[0]))
}

type captured struct {
	mu  sync.Mutex
	evs []feed.Event
}

func (c *captured) Publish(ev feed.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.evs = append(c.evs, ev)
}

func TestPublishing_EmitsEventsAfterSuccess(t *testing.T) {
	base := newSQLiteGateway(t)
	pub := &captured{}
	g := NewPublishing(base, pub)
	ctx := context.Background()

	m, err := g.Insert(ctx, models.TableMessages, models.Row{"name": "Bob", "email": "b@x.io", "body": "hi"})
	require.NoError(t, err)
	_, err = g.Update(ctx, models.TableMessages, m.ID(), models.Row{"read": true})
	require.NoError(t, err)
	require.Error(t, g.Delete(ctx, models.TableMessages, "missing"))
	require.NoError(t, g.Delete(ctx, models.TableMessages, m.ID()))

	require.Len(t, pub.evs, 3)
	require.Equal(t, feed.OpInsert, pub.evs[0].Op)
	require.Equal(t, feed.OpUpdate, pub.evs[1].Op)
	require.False(t, pub.evs[1].Old.Bool("read"))
	require.True(t, pub.evs[1].New.Bool("read"))
	require.Equal(t, feed.OpDelete, pub.evs[2].Op)
	require.Equal(t, "Bob", pub.evs[2].Old.String("name"))
}

func TestPublishing_AtomicHoldsEventsUntilCommit(t *testing.T) {
	base := newSQLiteGateway(t)
	pub := &captured{}
	g := NewPublishing(base, pub)
	ctx := context.Background()

	p, err := base.Insert(ctx, models.TableGeneralProjects, models.Row{"title": "Walkway"})
	require.NoError(t, err)

	err = g.Atomic(ctx, func(ctx context.Context, tx Gateway) error {
		_, err := tx.Insert(ctx, models.TableMedia, models.Row{"project_id": p.ID(), "kind": "image", "path": "gp/a.jpg"})
		if err != nil {
			return err
		}
		require.Empty(t, pub.evs)
		return fmt.Errorf("abort")
	})
	require.EqualError(t, err, "abort")
	require.Empty(t, pub.evs)

	err = g.Atomic(ctx, func(ctx context.Context, tx Gateway) error {
		_, err := tx.Insert(ctx, models.TableMedia, models.Row{"project_id": p.ID(), "kind": "image", "path": "gp/b.jpg"})
		return err
	})
	require.NoError(t, err)
	require.Len(t, pub.evs, 1)
	require.Equal(t, models.TableMedia, pub.evs[0].Table)
}

func TestQuery_SortRows(t *testing.T) {
	rows := []models.Row{
		{"id": "a", "featured": false, "created_at": "2026-01-01T00:00:03Z"},
		{"id": "b", "featured": true, "created_at": "2026-01-01T00:00:01Z"},
		{"id": "c", "featured": int64(0), "created_at": "2026-01-01T00:00:05Z"},
	}
	Query{Orders: []Order{Desc("featured"), Desc("created_at")}}.SortRows(rows)

	require.Equal(t, "b", rows[0].ID())
	require.Equal(t, "c", rows[1].ID())
	require.Equal(t, "a", rows[2].ID())
}
