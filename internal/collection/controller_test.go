package collection

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/landkeeper/internal/common"
	"github.com/dmitrijs2005/landkeeper/internal/gateway"
	"github.com/dmitrijs2005/landkeeper/internal/models"
	"github.com/dmitrijs2005/landkeeper/internal/staging"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestController_LoadGroupsAndSortsChildren(t *testing.T) {
	h := newHarness(t, Projects)
	ctx := context.Background()

	old := h.insert(t, models.TableProjects, models.Row{"title": "Old"})
	featured := h.insert(t, models.TableProjects, models.Row{"title": "Featured", "featured": true})
	newer := h.insert(t, models.TableProjects, models.Row{"title": "Newer"})
	h.insert(t, models.TablePairs, models.Row{"project_id": old.ID(), "before_key": "b2", "after_key": "a2", "sort_order": int64(1)})
	h.insert(t, models.TablePairs, models.Row{"project_id": old.ID(), "before_key": "b1", "after_key": "a1", "sort_order": int64(0)})

	require.NoError(t, h.ctrl.Load(ctx))

	views := h.ctrl.List()
	ids := []string{views[0].ID, views[1].ID, views[2].ID}
	require.Equal(t, []string{featured.ID(), newer.ID(), old.ID()}, ids)

	v, err := h.ctrl.Get(old.ID())
	require.NoError(t, err)
	require.Equal(t, "clean", v.State)
	require.Len(t, v.Children, 2)

	want := []MediaRef{
		{Slot: v.Children[0].ID + "/before_key", Key: "b1"},
		{Slot: v.Children[0].ID + "/after_key", Key: "a1"},
	}
	if diff := cmp.Diff(want, v.Children[0].Media); diff != "" {
		t.Errorf("first pair media mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, "b2", v.Children[1].Media[0].Key)

	rec, err := v.Record()
	require.NoError(t, err)
	require.Equal(t, "Old", rec.(models.Project).Title)
}

func TestController_LoadDiscardsStagedEdits(t *testing.T) {
	h := newHarness(t, Projects)
	ctx := context.Background()
	p := h.insert(t, models.TableProjects, models.Row{"title": "Lawn"})
	require.NoError(t, h.ctrl.Load(ctx))

	require.NoError(t, h.ctrl.Edit(p.ID(), models.Row{"title": "Lawn Redo"}))
	require.Equal(t, Dirty, h.ctrl.StateOf(p.ID()))

	require.NoError(t, h.ctrl.Load(ctx))
	v, err := h.ctrl.Get(p.ID())
	require.NoError(t, err)
	require.Equal(t, "Lawn", v.Fields.String("title"))
	require.Equal(t, "clean", v.State)
}

func TestController_LoadSurfacesGatewayError(t *testing.T) {
	h := newHarness(t, Projects)
	h.st.failOnce("list", models.TablePairs, 1)

	err := h.ctrl.Load(context.Background())
	var gerr *common.GatewayError
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, "connection reset", gerr.Message)
}

func TestController_EditIsolatedPerEntity(t *testing.T) {
	h := newHarness(t, Projects)
	a := h.insert(t, models.TableProjects, models.Row{"title": "A"})
	b := h.insert(t, models.TableProjects, models.Row{"title": "B"})
	require.NoError(t, h.ctrl.Load(context.Background()))

	require.NoError(t, h.ctrl.Edit(a.ID(), models.Row{"title": "A2", "description": "front"}))

	va, _ := h.ctrl.Get(a.ID())
	vb, _ := h.ctrl.Get(b.ID())
	require.Equal(t, "A2", va.Fields.String("title"))
	require.Equal(t, "B", vb.Fields.String("title"))
	require.Equal(t, "dirty", va.State)
	require.Equal(t, "clean", vb.State)
}

func TestController_EditRejectsBadFields(t *testing.T) {
	h := newHarness(t, Videos)
	v := h.insert(t, models.TableVideos, models.Row{"title": "Deck"})
	require.NoError(t, h.ctrl.Load(context.Background()))

	err := h.ctrl.Edit(v.ID(), models.Row{"id": "x", "before_path": "k", "colour": "red"})
	var verr *common.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, map[string]string{
		"id":          "is read-only",
		"before_path": "stage a file instead",
		"colour":      "unknown field",
	}, verr.Fields)
	require.True(t, errors.Is(err, common.ErrorValidation))
	require.Equal(t, Clean, h.ctrl.StateOf(v.ID()))

	require.ErrorIs(t, h.ctrl.Edit("missing", models.Row{"title": "x"}), common.ErrorNotFound)
}

func TestController_StageAttachmentValidatesSlot(t *testing.T) {
	h := newHarness(t, Projects)
	p := h.insert(t, models.TableProjects, models.Row{"title": "Lawn"})
	require.NoError(t, h.ctrl.Load(context.Background()))

	_, err := h.ctrl.StageAttachment(p.ID(), staging.InlineSlot("before_key"), jpeg("b.jpg"))
	require.ErrorIs(t, err, common.ErrorValidation)

	_, err = h.ctrl.StageAttachment(p.ID(), staging.ChildSlot("nope", "before_key"), jpeg("b.jpg"))
	require.ErrorIs(t, err, common.ErrorValidation)

	_, err = h.ctrl.StageAttachment(p.ID(), staging.NewChildSlot("1", "before_key"), staging.LocalFile{Name: "e.jpg"})
	require.ErrorIs(t, err, common.ErrorValidation)

	pid, err := h.ctrl.StageAttachment(p.ID(), staging.NewChildSlot("1", "before_key"), jpeg("b.jpg"))
	require.NoError(t, err)
	f, ok := h.ctrl.Preview(pid)
	require.True(t, ok)
	require.Equal(t, "b.jpg", f.Name)

	v, _ := h.ctrl.Get(p.ID())
	require.Len(t, v.Children, 1)
	require.True(t, v.Children[0].New)
	require.True(t, v.Children[0].Media[0].Staged)
	require.False(t, v.Children[0].Media[1].Staged)
}

func TestController_UnstageAndDiscardReturnToClean(t *testing.T) {
	h := newHarness(t, Projects)
	ctx := context.Background()
	p := h.insert(t, models.TableProjects, models.Row{"title": "Lawn"})
	require.NoError(t, h.ctrl.Load(ctx))

	slot := staging.NewChildSlot("1", "after_key")
	_, err := h.ctrl.StageAttachment(p.ID(), slot, jpeg("a.jpg"))
	require.NoError(t, err)
	require.NoError(t, h.ctrl.Unstage(ctx, p.ID(), slot))
	require.Equal(t, Clean, h.ctrl.StateOf(p.ID()))
	require.Equal(t, 0, h.ctrl.LivePreviews())

	require.NoError(t, h.ctrl.Edit(p.ID(), models.Row{"title": "X"}))
	_, err = h.ctrl.StageAttachment(p.ID(), slot, jpeg("a.jpg"))
	require.NoError(t, err)
	require.NoError(t, h.ctrl.RevertField(ctx, p.ID(), "title"))
	require.Equal(t, Dirty, h.ctrl.StateOf(p.ID()))

	require.NoError(t, h.ctrl.Discard(ctx, p.ID()))
	require.Equal(t, Clean, h.ctrl.StateOf(p.ID()))
	require.Equal(t, 0, h.ctrl.LivePreviews())
}

func TestController_ResolveURL(t *testing.T) {
	h := newHarness(t, Quotes)
	ctx := context.Background()

	u, err := h.ctrl.ResolveURL(ctx, "quotes/q1/1_a.jpg")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(u, "memory://quote-media/quotes/q1/1_a.jpg?expires="), u)

	_, err = h.ctrl.ResolveURL(ctx, "")
	require.ErrorIs(t, err, common.ErrorValidation)

	projects := newHarness(t, Projects)
	u, err = projects.ctrl.ResolveURL(ctx, "projects/p/k.jpg")
	require.NoError(t, err)
	require.NotContains(t, u, "expires")

	messages := newHarness(t, Messages)
	_, err = messages.ctrl.ResolveURL(ctx, "x")
	require.Error(t, err)
}

func TestController_SetFilterAndApply(t *testing.T) {
	h := newHarness(t, Quotes)
	ctx := context.Background()
	q1 := h.insert(t, models.TableQuotes, models.Row{"name": "Ann", "email": "a@b.co", "service": "Mulch", "description": "fifteen chars long"})
	h.insert(t, models.TableQuotes, models.Row{"name": "Bo", "email": "b@b.co", "service": "Sod", "description": "fifteen chars long", "status": "sent", "quote_sent": true})

	require.NoError(t, h.ctrl.Load(ctx))
	require.Len(t, h.ctrl.List(), 2)

	require.NoError(t, h.ctrl.SetFilter(ctx, gateway.Eq("status", models.QuoteStatusNew)))
	views := h.ctrl.List()
	require.Len(t, views, 1)
	require.Equal(t, q1.ID(), views[0].ID)

	v, err := h.ctrl.Apply(ctx, q1.ID(), models.Row{"reviewed": true})
	require.NoError(t, err)
	require.True(t, v.Fields.Bool("reviewed"))

	_, err = h.ctrl.Apply(ctx, q1.ID(), models.Row{"created_at": "x"})
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestByName(t *testing.T) {
	s, ok := ByName("videos")
	require.True(t, ok)
	require.Equal(t, models.TableVideos, s.Table)
	_, ok = ByName("nope")
	require.False(t, ok)
	require.Len(t, All(), 6)
}

func TestMessage(t *testing.T) {
	gerr := &common.GatewayError{Op: "update", Target: "t", Message: "permission denied", Err: errors.New("x")}
	require.Equal(t, "permission denied", Message(gerr))
	require.Equal(t, "upload: permission denied", Message(&StepError{Step: StepUpload, Err: gerr}))
	require.Equal(t, "upload: boom", Message(&StepError{Step: StepUpload, Err: errors.New("boom")}))
	require.Equal(t, "plain", Message(errors.New("plain")))
}
