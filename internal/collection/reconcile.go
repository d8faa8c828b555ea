package collection

import (
	"context"

	"github.com/dmitrijs2005/landkeeper/internal/feed"
	"github.com/dmitrijs2005/landkeeper/internal/gateway"
)

// Attach subscribes the controller to its tables. A feed reconnect
// triggers a Resync bounded by ctx. The returned function unsubscribes.
func (c *Controller) Attach(ctx context.Context, sub feed.Subscriber) (detach func()) {
	h := feed.Handlers{
		OnInsert: c.HandleEvent,
		OnUpdate: c.HandleEvent,
		OnDelete: c.HandleEvent,
		OnReconnect: func() {
			rctx, cancel := context.WithTimeout(ctx, c.resyncTimeout)
			defer cancel()
			if err := c.Resync(rctx); err != nil {
				c.log.Warn(ctx, "resync after reconnect failed", "error", err)
			}
		},
	}

	unsubs := []func(){sub.Subscribe(c.schema.Table, h)}
	if child := c.schema.Child; child != nil {
		// Reconnect is handled once, on the parent subscription.
		ch := h
		ch.OnReconnect = nil
		unsubs = append(unsubs, sub.Subscribe(child.Table, ch))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

// HandleEvent merges one row event into local state. Entities with staged
// edits or an operation in flight are not touched; they are flagged stale
// and refreshed once they settle.
func (c *Controller) HandleEvent(ev feed.Event) {
	switch {
	case ev.Table == c.schema.Table:
		c.applyParent(ev)
	case c.schema.Child != nil && ev.Table == c.schema.Child.Table:
		c.applyChild(ev)
	}
}

func (c *Controller) applyParent(ev feed.Event) {
	row := ev.Row()
	id := row.ID()
	if id == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	q := gateway.Query{Filters: c.filters}
	e, ok := c.entities[id]

	if ev.Op == feed.OpDelete {
		if !ok {
			return
		}
		if e.state != Clean && e.state != Dirty {
			e.stale = true
			return
		}
		if e.state == Dirty {
			c.log.Warn(context.Background(), "entity deleted remotely, dropping staged edits", "id", id)
		}
		c.buffer.Clear(id)
		delete(c.entities, id)
		return
	}

	if !ok {
		if q.Matches(row) {
			c.entities[id] = &entity{row: row.Clone(), state: Clean}
		}
		return
	}
	if e.state != Clean {
		e.stale = true
		return
	}
	merged := e.row.Merge(row)
	if !q.Matches(merged) {
		delete(c.entities, id)
		return
	}
	e.row = merged
}

func (c *Controller) applyChild(ev feed.Event) {
	child := c.schema.Child
	row := ev.Row()
	childID := row.ID()
	if childID == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	parentID := row.String(child.ParentColumn)
	if parentID == "" {
		for id, e := range c.entities {
			if findRow(e.children, childID) >= 0 {
				parentID = id
				break
			}
		}
	}
	e, ok := c.entities[parentID]
	if !ok {
		return
	}
	if e.state != Clean {
		e.stale = true
		return
	}

	i := findRow(e.children, childID)
	switch {
	case ev.Op == feed.OpDelete:
		if i >= 0 {
			e.children = append(e.children[:i:i], e.children[i+1:]...)
		}
		return
	case i >= 0:
		e.children[i] = e.children[i].Merge(row)
	default:
		e.children = append(e.children, row.Clone())
	}
	gateway.Query{Orders: c.childOrder()}.SortRows(e.children)
}
