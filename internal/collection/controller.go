package collection

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/landkeeper/internal/blob"
	"github.com/dmitrijs2005/landkeeper/internal/common"
	"github.com/dmitrijs2005/landkeeper/internal/gateway"
	"github.com/dmitrijs2005/landkeeper/internal/logging"
	"github.com/dmitrijs2005/landkeeper/internal/models"
	"github.com/dmitrijs2005/landkeeper/internal/staging"
	"golang.org/x/sync/errgroup"
)

const defaultResyncTimeout = 30 * time.Second

type entity struct {
	row      models.Row
	children []models.Row
	state    State
	stale    bool
}

// Controller owns the in-memory copy of one collection for one admin
// session. All methods are safe for concurrent use; gateway and blob calls
// run without holding the controller lock.
type Controller struct {
	schema  Schema
	columns gateway.Table
	gw      gateway.Gateway
	blobs   blob.Store
	buffer  *staging.Buffer
	log     logging.Logger

	notifier      Notifier
	recorder      Recorder
	now           func() time.Time
	newKey        func(prefix, filename string) string
	resyncTimeout time.Duration

	mu       sync.Mutex
	entities map[string]*entity
	filters  []gateway.Filter
}

type Option func(*Controller)

func WithNotifier(n Notifier) Option { return func(c *Controller) { c.notifier = n } }

func WithRecorder(r Recorder) Option { return func(c *Controller) { c.recorder = r } }

func WithClock(now func() time.Time) Option { return func(c *Controller) { c.now = now } }

// WithKeyFunc replaces blob.NewKey for naming uploaded files.
func WithKeyFunc(f func(prefix, filename string) string) Option {
	return func(c *Controller) { c.newKey = f }
}

// WithTableSchema sets the registry edits are checked against. It defaults
// to gateway.DefaultSchema.
func WithTableSchema(s *gateway.Schema) Option {
	return func(c *Controller) {
		if t, err := s.Table(c.schema.Table); err == nil {
			c.columns = t
		}
	}
}

// New builds a controller for schema. blobs may be nil for collections
// without files.
func New(schema Schema, gw gateway.Gateway, blobs blob.Store, log logging.Logger, opts ...Option) *Controller {
	c := &Controller{
		schema:        schema,
		gw:            gw,
		blobs:         blobs,
		buffer:        staging.NewBuffer(),
		log:           log.With("collection", schema.Name),
		now:           time.Now,
		newKey:        blob.NewKey,
		resyncTimeout: defaultResyncTimeout,
		entities:      map[string]*entity{},
	}
	c.columns, _ = gateway.DefaultSchema().Table(schema.Table)
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Controller) Schema() Schema { return c.schema }

func (c *Controller) notFound(id string) error {
	return fmt.Errorf("%s %s: %w", c.schema.Name, id, common.ErrorNotFound)
}

// Load replaces the local state with a fresh snapshot. Staged edits are
// discarded. It fails with ErrBusy while a save or delete is in flight.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	for _, e := range c.entities {
		if e.state == Saving || e.state == Deleting {
			c.mu.Unlock()
			return ErrBusy
		}
	}
	filters := append([]gateway.Filter(nil), c.filters...)
	c.mu.Unlock()

	parents, children, err := c.fetch(ctx, filters)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.buffer.ClearAll()
	c.entities = make(map[string]*entity, len(parents))
	for _, row := range parents {
		c.entities[row.ID()] = &entity{row: row, children: children[row.ID()], state: Clean}
	}
	c.log.Debug(ctx, "collection loaded", "entities", len(parents))
	return nil
}

// Resync reloads persisted rows but keeps staged edits. Entities with a
// save or delete in flight keep their copy and are flagged stale.
func (c *Controller) Resync(ctx context.Context) error {
	c.mu.Lock()
	filters := append([]gateway.Filter(nil), c.filters...)
	c.mu.Unlock()

	parents, children, err := c.fetch(ctx, filters)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	next := make(map[string]*entity, len(parents))
	for _, row := range parents {
		id := row.ID()
		e, ok := c.entities[id]
		switch {
		case !ok:
			next[id] = &entity{row: row, children: children[id], state: Clean}
		case e.state == Saving || e.state == Deleting:
			e.stale = true
			next[id] = e
		default:
			e.row, e.children, e.stale = row, children[id], false
			c.dropMissingChildSlots(id, e)
			next[id] = e
		}
	}
	for id, e := range c.entities {
		if _, ok := next[id]; ok {
			continue
		}
		if e.state == Saving || e.state == Deleting {
			e.stale = true
			next[id] = e
			continue
		}
		if e.state == Dirty {
			c.log.Warn(ctx, "entity gone after resync, dropping staged edits", "id", id)
		}
		c.buffer.Clear(id)
	}
	c.entities = next
	return nil
}

// dropMissingChildSlots unstages files aimed at child rows that no longer
// exist. Caller holds c.mu.
func (c *Controller) dropMissingChildSlots(id string, e *entity) {
	staged, ok := c.buffer.Get(id)
	if !ok {
		return
	}
	for slot := range staged.Attachments {
		if slot.IsInline() || slot.IsNewGroup() || findRow(e.children, slot.Child) >= 0 {
			continue
		}
		c.buffer.Unstage(id, slot)
	}
	if e.state == Dirty && !c.buffer.IsDirty(id) {
		e.state = Clean
	}
}

func (c *Controller) fetch(ctx context.Context, filters []gateway.Filter) ([]models.Row, map[string][]models.Row, error) {
	var parents, children []models.Row

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		parents, err = c.gw.List(gctx, c.schema.Table, gateway.Query{Filters: filters, Orders: c.schema.Order})
		return err
	})
	if child := c.schema.Child; child != nil {
		g.Go(func() error {
			var err error
			children, err = c.gw.List(gctx, child.Table, gateway.Query{Orders: c.childOrder()})
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	grouped := map[string][]models.Row{}
	if child := c.schema.Child; child != nil {
		for _, row := range children {
			pid := row.String(child.ParentColumn)
			grouped[pid] = append(grouped[pid], row)
		}
	}
	return parents, grouped, nil
}

func (c *Controller) childOrder() []gateway.Order {
	return []gateway.Order{gateway.Asc(c.schema.Child.SortColumn), gateway.Asc("created_at")}
}

// refresh re-reads one entity if nothing is staged or in flight for it.
func (c *Controller) refresh(ctx context.Context, id string) error {
	row, err := gateway.Get(ctx, c.gw, c.schema.Table, id)
	gone := errors.Is(err, common.ErrorNotFound)
	if err != nil && !gone {
		return err
	}
	var children []models.Row
	if child := c.schema.Child; child != nil && !gone {
		children, err = c.gw.List(ctx, child.Table, gateway.Query{
			Filters: []gateway.Filter{gateway.Eq(child.ParentColumn, id)},
			Orders:  c.childOrder(),
		})
		if err != nil {
			return err
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entities[id]
	if !ok || (e.state != Clean && e.state != Dirty) {
		return nil
	}
	if gone {
		c.buffer.Clear(id)
		delete(c.entities, id)
		return nil
	}
	e.row, e.children, e.stale = row, children, false
	return nil
}

// SetFilter narrows the collection (the quotes tab, for instance) and
// resyncs.
func (c *Controller) SetFilter(ctx context.Context, filters ...gateway.Filter) error {
	c.mu.Lock()
	c.filters = filters
	c.mu.Unlock()
	return c.Resync(ctx)
}

// List returns every entity in collection order.
func (c *Controller) List() []View {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows := make([]models.Row, 0, len(c.entities))
	for _, e := range c.entities {
		rows = append(rows, e.row)
	}
	gateway.Query{Orders: c.schema.Order}.SortRows(rows)

	views := make([]View, 0, len(rows))
	for _, row := range rows {
		id := row.ID()
		views = append(views, c.view(id, c.entities[id]))
	}
	return views
}

func (c *Controller) Get(id string) (View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entities[id]
	if !ok {
		return View{}, c.notFound(id)
	}
	return c.view(id, e), nil
}

// StateOf reports the lifecycle state of id; Removed when unknown.
func (c *Controller) StateOf(id string) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entities[id]; ok {
		return e.state
	}
	return Removed
}

// Preview returns the staged local file behind a preview id.
func (c *Controller) Preview(previewID string) (staging.LocalFile, bool) {
	return c.buffer.Preview(previewID)
}

// LivePreviews is the number of staged-file previews still retained.
func (c *Controller) LivePreviews() int { return c.buffer.LivePreviews() }

// ResolveURL turns a persisted key into a URL: a stable public one, or a
// short-lived signed one for private buckets.
func (c *Controller) ResolveURL(ctx context.Context, key string) (string, error) {
	if c.blobs == nil || c.schema.Bucket == "" {
		return "", fmt.Errorf("%s has no files", c.schema.Name)
	}
	if key == "" {
		return "", fmt.Errorf("%s: empty key: %w", c.schema.Name, common.ErrorValidation)
	}
	return c.blobs.URLFor(ctx, c.schema.Bucket, key, blob.URLOptions{Signed: c.schema.Signed, TTL: c.schema.SignedTTL})
}

func findRow(rows []models.Row, id string) int {
	for i, r := range rows {
		if r.ID() == id {
			return i
		}
	}
	return -1
}

func cloneRows(rows []models.Row) []models.Row {
	out := make([]models.Row, len(rows))
	for i, r := range rows {
		out[i] = r.Clone()
	}
	return out
}
