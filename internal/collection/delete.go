package collection

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/landkeeper/internal/common"
	"github.com/dmitrijs2005/landkeeper/internal/gateway"
	"github.com/dmitrijs2005/landkeeper/internal/notify"
	"github.com/dmitrijs2005/landkeeper/internal/staging"
)

// Delete removes id: its child rows first, then the entity row, inside one
// transaction when the gateway supports it. Files are removed best-effort
// only after both row deletes succeeded. On failure the entity returns to
// its previous state and keeps its staged edits.
func (c *Controller) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	e, ok := c.entities[id]
	if !ok {
		c.mu.Unlock()
		return c.notFound(id)
	}
	if e.state == Saving || e.state == Deleting {
		c.mu.Unlock()
		return ErrBusy
	}
	prev := e.state
	e.state = Deleting
	title := titleOf(e.row)
	var keys []string
	for _, col := range c.schema.InlineFiles {
		if k := e.row.String(col); k != "" {
			keys = append(keys, k)
		}
	}
	c.mu.Unlock()

	var childKeys []string
	step := StepDeleteChildren
	err := gateway.Atomic(ctx, c.gw, func(ctx context.Context, g gateway.Gateway) error {
		childKeys = childKeys[:0]
		step = StepDeleteChildren
		if child := c.schema.Child; child != nil {
			rows, err := g.List(ctx, child.Table, gateway.Query{
				Filters: []gateway.Filter{gateway.Eq(child.ParentColumn, id)},
				Orders:  c.childOrder(),
			})
			if err != nil {
				return err
			}
			for _, r := range rows {
				if err := g.Delete(ctx, child.Table, r.ID()); err != nil && !errors.Is(err, common.ErrorNotFound) {
					return err
				}
				for _, col := range child.FileColumns {
					if k := r.String(col); k != "" {
						childKeys = append(childKeys, k)
					}
				}
			}
		}

		step = StepDeleteParent
		if err := g.Delete(ctx, c.schema.Table, id); err != nil && !errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return nil
	})

	if err != nil {
		err = c.stepErr(id, step, err)
		c.mu.Lock()
		if e, ok := c.entities[id]; ok {
			e.state = prev
		}
		c.mu.Unlock()

		c.failed(ctx, id, "Delete failed", err)
		c.recordDelete(err)
		return err
	}

	c.mu.Lock()
	delete(c.entities, id)
	c.buffer.Clear(id)
	c.mu.Unlock()

	c.removeBlobs(ctx, append(childKeys, keys...))
	c.log.Info(ctx, "entity deleted", "id", id)
	c.succeeded(id, notify.ActionDelete, c.label()+" deleted", title)
	c.recordDelete(nil)
	return nil
}

// RemoveChild deletes one child row of id (a pair, a media item) and then
// its files, best-effort. Files staged for that child are unstaged.
func (c *Controller) RemoveChild(ctx context.Context, id, childID string) error {
	child := c.schema.Child
	if child == nil {
		return c.notFound(childID)
	}

	c.mu.Lock()
	e, err := c.editable(id)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	i := findRow(e.children, childID)
	if i < 0 {
		c.mu.Unlock()
		return c.notFound(childID)
	}
	row := e.children[i]
	c.mu.Unlock()

	if err := c.gw.Delete(ctx, child.Table, childID); err != nil && !errors.Is(err, common.ErrorNotFound) {
		c.failed(ctx, id, "Remove failed", err)
		return err
	}

	c.mu.Lock()
	if e, ok := c.entities[id]; ok {
		if i := findRow(e.children, childID); i >= 0 {
			e.children = append(e.children[:i:i], e.children[i+1:]...)
		}
		for _, col := range child.FileColumns {
			c.buffer.Unstage(id, staging.ChildSlot(childID, col))
		}
		if e.state == Dirty && !c.buffer.IsDirty(id) {
			e.state = Clean
		}
	}
	c.mu.Unlock()

	var keys []string
	for _, col := range child.FileColumns {
		if k := row.String(col); k != "" {
			keys = append(keys, k)
		}
	}
	c.removeBlobs(ctx, keys)
	return nil
}
