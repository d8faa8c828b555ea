// Package console hosts one workspace per signed-in admin session: a
// controller for every collection plus the notification bell, all fed by
// the shared change feed.
package console

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/landkeeper/internal/blob"
	"github.com/dmitrijs2005/landkeeper/internal/collection"
	"github.com/dmitrijs2005/landkeeper/internal/common"
	"github.com/dmitrijs2005/landkeeper/internal/feed"
	"github.com/dmitrijs2005/landkeeper/internal/gateway"
	"github.com/dmitrijs2005/landkeeper/internal/logging"
	"github.com/dmitrijs2005/landkeeper/internal/models"
	"github.com/dmitrijs2005/landkeeper/internal/notify"
)

// Quote tabs.
const (
	TabAll  = "all"
	TabNew  = "new"
	TabSent = "sent"
)

// Deps are the shared collaborators every workspace is built from.
type Deps struct {
	Gateway   gateway.Gateway
	Blobs     blob.Store
	Feed      feed.Subscriber
	Log       logging.Logger
	SignedTTL time.Duration

	Recorder       collection.Recorder
	NoticeRecorder notify.Recorder
}

// Workspace is the state of one admin session.
type Workspace struct {
	SessionID string
	Email     string
	ExpiresAt time.Time

	Router      *notify.Router
	controllers map[string]*collection.Controller

	deps    Deps
	log     logging.Logger
	cancel  context.CancelFunc
	mu      sync.Mutex
	detach  []func()
	closed  bool
	lastTab string
}

// Open builds the controllers, loads every collection and subscribes to
// the feed. ctx bounds the initial load; the workspace itself lives until
// Close.
func Open(ctx context.Context, deps Deps, sessionID, email string, expiresAt time.Time) (*Workspace, error) {
	var routerOpts []notify.Option
	if deps.NoticeRecorder != nil {
		routerOpts = append(routerOpts, notify.WithRecorder(deps.NoticeRecorder))
	}

	life, cancel := context.WithCancel(context.Background())
	w := &Workspace{
		SessionID:   sessionID,
		Email:       email,
		ExpiresAt:   expiresAt,
		Router:      notify.NewRouter(routerOpts...),
		controllers: map[string]*collection.Controller{},
		deps:        deps,
		log:         deps.Log.With("session", sessionID),
		cancel:      cancel,
		lastTab:     TabAll,
	}

	opts := []collection.Option{collection.WithNotifier(w.Router)}
	if deps.Recorder != nil {
		opts = append(opts, collection.WithRecorder(deps.Recorder))
	}

	w.detach = append(w.detach, w.Router.Observe(deps.Feed))
	for _, s := range collection.All() {
		if s.Signed && deps.SignedTTL > 0 {
			s.SignedTTL = deps.SignedTTL
		}
		c := collection.New(s, deps.Gateway, deps.Blobs, w.log, opts...)
		w.detach = append(w.detach, c.Attach(life, deps.Feed))
		w.controllers[s.Name] = c
	}

	for name, c := range w.controllers {
		if err := c.Load(ctx); err != nil {
			w.Close()
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
	}
	w.log.Info(ctx, "workspace opened")
	return w, nil
}

// Controller returns the controller of a collection by name.
func (w *Workspace) Controller(name string) (*collection.Controller, error) {
	c, ok := w.controllers[name]
	if !ok {
		return nil, fmt.Errorf("collection %q: %w", name, common.ErrorNotFound)
	}
	return c, nil
}

// Collections lists the collection names in sorted order.
func (w *Workspace) Collections() []string {
	names := make([]string, 0, len(w.controllers))
	for n := range w.controllers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// SetQuoteTab filters the quotes collection to all, new or sent quotes.
func (w *Workspace) SetQuoteTab(ctx context.Context, tab string) error {
	var filters []gateway.Filter
	switch tab {
	case TabAll:
	case TabNew:
		filters = append(filters, gateway.Eq("status", models.QuoteStatusNew))
	case TabSent:
		filters = append(filters, gateway.Eq("status", models.QuoteStatusSent))
	default:
		return &common.ValidationError{Fields: map[string]string{"tab": "must be all, new or sent"}}
	}

	c, err := w.Controller(collection.Quotes.Name)
	if err != nil {
		return err
	}
	if err := c.SetFilter(ctx, filters...); err != nil {
		return err
	}
	w.mu.Lock()
	w.lastTab = tab
	w.mu.Unlock()
	return nil
}

func (w *Workspace) QuoteTab() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastTab
}

// MarkQuoteSent flips a quote between new and sent.
func (w *Workspace) MarkQuoteSent(ctx context.Context, id string, sent bool, now time.Time) (collection.View, error) {
	c, err := w.Controller(collection.Quotes.Name)
	if err != nil {
		return collection.View{}, err
	}
	patch := models.Row{"quote_sent": sent, "status": models.QuoteStatusNew, "quote_sent_at": nil}
	if sent {
		patch["status"] = models.QuoteStatusSent
		patch["quote_sent_at"] = now.UTC()
	}
	return c.Apply(ctx, id, patch)
}

// ToggleReviewed flips the reviewed flag of a quote.
func (w *Workspace) ToggleReviewed(ctx context.Context, id string) (collection.View, error) {
	c, err := w.Controller(collection.Quotes.Name)
	if err != nil {
		return collection.View{}, err
	}
	v, err := c.Get(id)
	if err != nil {
		return collection.View{}, err
	}
	return c.Apply(ctx, id, models.Row{"reviewed": !v.Fields.Bool("reviewed")})
}

// MarkMessageRead marks an inbox message read.
func (w *Workspace) MarkMessageRead(ctx context.Context, id string) (collection.View, error) {
	c, err := w.Controller(collection.Messages.Name)
	if err != nil {
		return collection.View{}, err
	}
	return c.Apply(ctx, id, models.Row{"read": true})
}

// ApproveTestimonial stages approved=true and saves it.
func (w *Workspace) ApproveTestimonial(ctx context.Context, id string) (collection.View, error) {
	c, err := w.Controller(collection.Testimonials.Name)
	if err != nil {
		return collection.View{}, err
	}
	if err := c.Edit(id, models.Row{"approved": true}); err != nil {
		return collection.View{}, err
	}
	return c.Save(ctx, id)
}

// Close unsubscribes everything and drops the bell. It is idempotent.
func (w *Workspace) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	detach := w.detach
	w.detach = nil
	w.mu.Unlock()

	w.cancel()
	for _, d := range detach {
		d()
	}
	w.Router.Reset()
	w.log.Info(context.Background(), "workspace closed")
}
