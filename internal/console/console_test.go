package console

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/landkeeper/internal/blob"
	"github.com/dmitrijs2005/landkeeper/internal/collection"
	"github.com/dmitrijs2005/landkeeper/internal/common"
	"github.com/dmitrijs2005/landkeeper/internal/feed"
	"github.com/dmitrijs2005/landkeeper/internal/gateway"
	"github.com/dmitrijs2005/landkeeper/internal/logging"
	"github.com/dmitrijs2005/landkeeper/internal/models"
	"github.com/dmitrijs2005/landkeeper/internal/server/migrations"
	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

const (
	waitFor   = 2 * time.Second
	pollEvery = 5 * time.Millisecond
)

type env struct {
	hub  *feed.Hub
	gw   *gateway.Publishing
	deps Deps
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared&_time_format=sqlite", t.Name()))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Apply(context.Background(), db, "sqlite"))

	hub := feed.NewHub(logging.Nop{})
	t.Cleanup(hub.Close)
	gw := gateway.NewPublishing(gateway.NewSQLGateway(db, gateway.SQLite, gateway.DefaultSchema()), hub)
	return &env{
		hub: hub,
		gw:  gw,
		deps: Deps{
			Gateway: gw,
			Blobs:   blob.NewMemoryStore(),
			Feed:    hub,
			Log:     logging.Nop{},
		},
	}
}

func (e *env) insertQuote(t *testing.T, name string) string {
	t.Helper()
	row, err := e.gw.Insert(context.Background(), models.TableQuotes, models.Row{
		"name":         name,
		"email":        "client@example.com",
		"service":      "Lawn care",
		"description":  "Front yard needs mowing weekly",
		"contact_pref": "email",
		"status":       models.QuoteStatusNew,
		"quote_sent":   false,
		"reviewed":     false,
	})
	require.NoError(t, err)
	return row.ID()
}

type sessionCounter struct {
	mu             sync.Mutex
	opened, closed int
}

func (s *sessionCounter) SessionOpened() { s.mu.Lock(); s.opened++; s.mu.Unlock() }
func (s *sessionCounter) SessionClosed() { s.mu.Lock(); s.closed++; s.mu.Unlock() }

func (s *sessionCounter) counts() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opened, s.closed
}

func TestOpen_LoadsEveryCollection(t *testing.T) {
	e := newEnv(t)
	e.insertQuote(t, "Ann")

	w, err := Open(context.Background(), e.deps, "s1", "admin@example.com", time.Time{})
	require.NoError(t, err)
	defer w.Close()

	require.Equal(t, []string{"general", "messages", "projects", "quotes", "testimonials", "videos"}, w.Collections())

	c, err := w.Controller("quotes")
	require.NoError(t, err)
	require.Len(t, c.List(), 1)

	_, err = w.Controller("invoices")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestWorkspace_FeedReachesBellAndControllers(t *testing.T) {
	e := newEnv(t)
	w, err := Open(context.Background(), e.deps, "s1", "admin@example.com", time.Time{})
	require.NoError(t, err)
	defer w.Close()

	id := e.insertQuote(t, "Ben")

	c, err := w.Controller("quotes")
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		_, err := c.Get(id)
		return err == nil && w.Router.UnreadCount() == 1
	}, waitFor, pollEvery)

	n := w.Router.List()[0]
	require.Equal(t, "New quote from Ben", n.Title)
	require.Equal(t, id, n.SubjectID)
}

func TestWorkspace_QuoteTabsAndSent(t *testing.T) {
	e := newEnv(t)
	a := e.insertQuote(t, "Ann")
	e.insertQuote(t, "Ben")

	ctx := context.Background()
	w, err := Open(ctx, e.deps, "s1", "admin@example.com", time.Time{})
	require.NoError(t, err)
	defer w.Close()

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	v, err := w.MarkQuoteSent(ctx, a, true, now)
	require.NoError(t, err)
	require.Equal(t, models.QuoteStatusSent, v.Fields.String("status"))
	require.True(t, v.Fields.Bool("quote_sent"))

	require.NoError(t, w.SetQuoteTab(ctx, TabSent))
	require.Equal(t, TabSent, w.QuoteTab())
	c, _ := w.Controller("quotes")
	list := c.List()
	require.Len(t, list, 1)
	require.Equal(t, a, list[0].ID)

	require.NoError(t, w.SetQuoteTab(ctx, TabNew))
	list = c.List()
	require.Len(t, list, 1)
	require.NotEqual(t, a, list[0].ID)

	require.NoError(t, w.SetQuoteTab(ctx, TabAll))
	require.Len(t, c.List(), 2)

	var verr *common.ValidationError
	require.ErrorAs(t, w.SetQuoteTab(ctx, "archived"), &verr)
	require.Equal(t, TabAll, w.QuoteTab())
}

func TestWorkspace_ToggleReviewedAndApprove(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	q := e.insertQuote(t, "Ann")
	tm, err := e.gw.Insert(ctx, models.TableTestimonials, models.Row{"name": "Cy", "text": "Great lawn", "rating": 5, "approved": false})
	require.NoError(t, err)

	w, err := Open(ctx, e.deps, "s1", "admin@example.com", time.Time{})
	require.NoError(t, err)
	defer w.Close()

	v, err := w.ToggleReviewed(ctx, q)
	require.NoError(t, err)
	require.True(t, v.Fields.Bool("reviewed"))
	v, err = w.ToggleReviewed(ctx, q)
	require.NoError(t, err)
	require.False(t, v.Fields.Bool("reviewed"))

	v, err = w.ApproveTestimonial(ctx, tm.ID())
	require.NoError(t, err)
	require.True(t, v.Fields.Bool("approved"))
	require.Equal(t, collection.Clean.String(), v.State)
}

func TestWorkspace_MarkMessageReadClearsBell(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	w, err := Open(ctx, e.deps, "s1", "admin@example.com", time.Time{})
	require.NoError(t, err)
	defer w.Close()

	msg, err := e.gw.Insert(ctx, models.TableMessages, models.Row{"name": "Dee", "email": "dee@example.com", "body": "Do you trim hedges?", "read": false})
	require.NoError(t, err)
	require.Eventually(t, func() bool { return w.Router.UnreadCount() == 1 }, waitFor, pollEvery)

	c, _ := w.Controller("messages")
	require.Eventually(t, func() bool { _, err := c.Get(msg.ID()); return err == nil }, waitFor, pollEvery)

	_, err = w.MarkMessageRead(ctx, msg.ID())
	require.NoError(t, err)
	require.Eventually(t, func() bool { return w.Router.UnreadCount() == 0 }, waitFor, pollEvery)
}

func TestWorkspace_CloseUnsubscribes(t *testing.T) {
	e := newEnv(t)
	w, err := Open(context.Background(), e.deps, "s1", "admin@example.com", time.Time{})
	require.NoError(t, err)
	require.Positive(t, e.hub.Subscriptions(models.TableQuotes))

	w.Close()
	w.Close()
	require.Zero(t, e.hub.Subscriptions(models.TableQuotes))
	require.Zero(t, e.hub.Subscriptions(models.TableMessages))
	require.Empty(t, w.Router.List())
}

func TestManager_AcquireReusesWorkspace(t *testing.T) {
	e := newEnv(t)
	rec := &sessionCounter{}
	m := NewManager(e.deps, rec)
	defer m.CloseAll()

	ctx := context.Background()
	exp := time.Now().Add(time.Hour)

	var wg sync.WaitGroup
	got := make([]*Workspace, 4)
	errs := make([]error, 4)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i], errs[i] = m.Acquire(ctx, "s1", "admin@example.com", exp)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	for _, w := range got[1:] {
		require.Same(t, got[0], w)
	}
	require.Equal(t, 1, m.Len())
	opened, _ := rec.counts()
	require.Equal(t, 1, opened)

	other, err := m.Acquire(ctx, "s2", "admin@example.com", exp)
	require.NoError(t, err)
	require.NotSame(t, got[0], other)
	require.Equal(t, 2, m.Len())
}

func TestManager_RejectsExpiredSession(t *testing.T) {
	e := newEnv(t)
	m := NewManager(e.deps, nil)

	_, err := m.Acquire(context.Background(), "s1", "admin@example.com", time.Now().Add(-time.Minute))
	require.ErrorIs(t, err, common.ErrTokenExpired)
	require.Zero(t, m.Len())
}

func TestManager_CloseAndReap(t *testing.T) {
	e := newEnv(t)
	rec := &sessionCounter{}
	m := NewManager(e.deps, rec)
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	ctx := context.Background()
	_, err := m.Acquire(ctx, "short", "admin@example.com", now.Add(time.Minute))
	require.NoError(t, err)
	_, err = m.Acquire(ctx, "long", "admin@example.com", now.Add(time.Hour))
	require.NoError(t, err)
	_, err = m.Acquire(ctx, "gone", "admin@example.com", now.Add(time.Hour))
	require.NoError(t, err)

	require.True(t, m.Close("gone"))
	require.False(t, m.Close("gone"))

	now = now.Add(2 * time.Minute)
	require.Equal(t, 1, m.Reap())

	_, ok := m.Get("short")
	require.False(t, ok)
	_, ok = m.Get("long")
	require.True(t, ok)

	opened, closed := rec.counts()
	require.Equal(t, 3, opened)
	require.Equal(t, 2, closed)

	m.CloseAll()
	require.Zero(t, m.Len())
}

func TestManager_SignOutRevokesSession(t *testing.T) {
	e := newEnv(t)
	rec := &sessionCounter{}
	m := NewManager(e.deps, rec)
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	ctx := context.Background()
	exp := now.Add(time.Hour)
	_, err := m.Acquire(ctx, "s1", "admin@example.com", exp)
	require.NoError(t, err)

	m.SignOut("s1", exp)
	require.Zero(t, m.Len())

	_, err = m.Acquire(ctx, "s1", "admin@example.com", exp)
	require.ErrorIs(t, err, common.ErrInvalidToken)

	now = exp.Add(time.Second)
	m.Reap()
	m.mu.Lock()
	require.Empty(t, m.revoked)
	m.mu.Unlock()

	_, closed := rec.counts()
	require.Equal(t, 1, closed)
}

func TestManager_SignOutWhileOpening(t *testing.T) {
	e := newEnv(t)
	rec := &sessionCounter{}
	m := NewManager(e.deps, rec)
	exp := time.Now().Add(time.Hour)

	orig := openWorkspace
	t.Cleanup(func() { openWorkspace = orig })
	openWorkspace = func(ctx context.Context, deps Deps, sessionID, email string, expiresAt time.Time) (*Workspace, error) {
		w, err := orig(ctx, deps, sessionID, email, expiresAt)
		m.SignOut(sessionID, expiresAt)
		return w, err
	}

	_, err := m.Acquire(context.Background(), "s1", "admin@example.com", exp)
	require.ErrorIs(t, err, common.ErrInvalidToken)
	require.Zero(t, m.Len())
	require.Zero(t, e.hub.Subscriptions(models.TableQuotes), "workspace opened for a revoked session is closed")

	opened, closed := rec.counts()
	require.Zero(t, opened)
	require.Zero(t, closed)
}

func TestManager_Schedule(t *testing.T) {
	m := NewManager(newEnv(t).deps, nil)
	c := cron.New()

	_, err := m.Schedule(c, ReapSchedule)
	require.NoError(t, err)
	require.Len(t, c.Entries(), 1)

	_, err = m.Schedule(c, "soon")
	require.Error(t, err)
}
