package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time            { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestRouter() (*Router, *fakeClock) {
	c := &fakeClock{t: time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)}
	return NewRouter(WithClock(c.now)), c
}

func msgDeleted(id string) Notice {
	return Notice{Kind: "message", Action: ActionDelete, SubjectID: id, Title: "Message deleted (Ann)"}
}

func TestRouter_DedupeWithinWindow(t *testing.T) {
	r, clock := newTestRouter()

	_, ok := r.Push(msgDeleted("m1"))
	require.True(t, ok)

	clock.advance(200 * time.Millisecond)
	_, ok = r.Push(msgDeleted("m1"))
	require.False(t, ok, "duplicate delivery within the window is dropped")
	require.Len(t, r.List(), 1)

	_, ok = r.Push(Notice{Kind: "message", Action: ActionInsert, SubjectID: "m1"})
	require.True(t, ok, "different action is a different key")

	clock.advance(1600 * time.Millisecond)
	_, ok = r.Push(msgDeleted("m1"))
	require.True(t, ok)
	require.Len(t, r.List(), 3)
}

func TestRouter_MostRecentFirstAndReadState(t *testing.T) {
	r, clock := newTestRouter()

	a, _ := r.Push(Notice{Kind: "quote", Action: ActionInsert, SubjectID: "q1"})
	clock.advance(time.Second)
	b, _ := r.Push(Notice{Kind: "quote", Action: ActionInsert, SubjectID: "q2"})

	list := r.List()
	require.Equal(t, []string{b.ID, a.ID}, []string{list[0].ID, list[1].ID})
	require.Equal(t, 2, r.UnreadCount())
	require.Equal(t, LevelInfo, list[0].Level)

	require.True(t, r.MarkRead(a.ID))
	require.False(t, r.MarkRead("missing"))
	require.Equal(t, 1, r.UnreadCount())

	r.MarkAllRead()
	require.Equal(t, 0, r.UnreadCount())

	require.True(t, r.DeleteOne(b.ID))
	require.False(t, r.DeleteOne(b.ID))
	require.Len(t, r.List(), 1)

	r.DeleteAll()
	require.Empty(t, r.List())
}

func TestRouter_SelectSetsOneShotFocus(t *testing.T) {
	r, _ := newTestRouter()

	n, _ := r.Push(Notice{Kind: "message", Action: ActionInsert, SubjectID: "m7"})
	del, _ := r.Push(msgDeleted("m8"))

	got, ok := r.Select(n.ID)
	require.True(t, ok)
	require.True(t, got.Read)

	id, ok := r.ConsumeFocus("message")
	require.True(t, ok)
	require.Equal(t, "m7", id)
	_, ok = r.ConsumeFocus("message")
	require.False(t, ok)

	r.Select(del.ID)
	_, ok = r.ConsumeFocus("message")
	require.False(t, ok, "deleted subjects cannot be focused")

	_, ok = r.Select("missing")
	require.False(t, ok)
}

func TestRouter_MarkSubjectRead(t *testing.T) {
	r, clock := newTestRouter()
	r.Push(Notice{Kind: "message", Action: ActionInsert, SubjectID: "m1"})
	clock.advance(2 * time.Second)
	r.Push(Notice{Kind: "message", Action: ActionInsert, SubjectID: "m1"})
	r.Push(Notice{Kind: "quote", Action: ActionInsert, SubjectID: "m1"})

	require.Equal(t, 2, r.MarkSubjectRead("message", "m1"))
	require.Equal(t, 1, r.UnreadCount())
}

func TestRouter_WatchAndReset(t *testing.T) {
	r, _ := newTestRouter()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := r.Watch(ctx)
	pushed, _ := r.Push(Notice{Kind: "testimonial", Action: ActionInsert, SubjectID: "t1"})

	select {
	case got := <-ch:
		require.Equal(t, pushed.ID, got.ID)
	case <-time.After(time.Second):
		t.Fatal("watcher did not receive the notice")
	}

	r.Reset()
	_, open := <-ch
	require.False(t, open, "reset closes watchers")
	require.Empty(t, r.List())

	_, ok := r.Push(Notice{Kind: "testimonial", Action: ActionInsert, SubjectID: "t1"})
	require.True(t, ok, "reset forgets the dedupe window")
}

func TestRouter_WatchClosesOnCancel(t *testing.T) {
	r, _ := newTestRouter()
	ctx, cancel := context.WithCancel(context.Background())
	ch := r.Watch(ctx)
	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, open := <-ch:
			return !open
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}

type countingRecorder struct{ pushed, deduped int }

func (c *countingRecorder) NoticePushed(string)       { c.pushed++ }
func (c *countingRecorder) NoticeDeduplicated(string) { c.deduped++ }

func TestRouter_RecordsCounts(t *testing.T) {
	rec := &countingRecorder{}
	r := NewRouter(WithRecorder(rec), WithWindow(time.Hour))
	r.Push(msgDeleted("x"))
	r.Push(msgDeleted("x"))
	require.Equal(t, 1, rec.pushed)
	require.Equal(t, 1, rec.deduped)
}
