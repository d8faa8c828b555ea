package collection

import (
	"context"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrijs2005/landkeeper/internal/blob"
	"github.com/dmitrijs2005/landkeeper/internal/common"
	"github.com/dmitrijs2005/landkeeper/internal/models"
	"github.com/dmitrijs2005/landkeeper/internal/notify"
	"github.com/dmitrijs2005/landkeeper/internal/staging"
)

// Save drains the staged edits of id: upload staged files, write child
// rows, update the entity row, then clear staging. It stops at the first
// failing step, keeps everything staged and returns a *StepError. Steps
// that already took effect are remembered so a retry neither uploads nor
// inserts twice.
func (c *Controller) Save(ctx context.Context, id string) (View, error) {
	c.mu.Lock()
	e, ok := c.entities[id]
	if !ok {
		c.mu.Unlock()
		return View{}, c.notFound(id)
	}
	if e.state == Saving || e.state == Deleting {
		c.mu.Unlock()
		return View{}, ErrBusy
	}
	staged, ok := c.buffer.Get(id)
	if !ok || !staged.Dirty() {
		e.state = Clean
		v := c.view(id, e)
		c.mu.Unlock()
		return v, nil
	}
	if err := c.validate(e, staged); err != nil {
		c.mu.Unlock()
		return View{}, err
	}
	e.state = Saving
	row, children := e.row.Clone(), cloneRows(e.children)
	c.mu.Unlock()

	out, superseded, err := c.runSave(ctx, id, row, children, staged)

	c.mu.Lock()
	e, ok = c.entities[id]
	if !ok {
		c.mu.Unlock()
		return View{}, c.notFound(id)
	}
	if err != nil {
		e.state = Dirty
		v := c.view(id, e)
		c.mu.Unlock()

		c.failed(ctx, id, "Save failed", err)
		c.recordSave(err)
		return v, err
	}
	e.row = out
	e.state = Clean
	stale := e.stale
	c.buffer.Clear(id)
	c.mu.Unlock()

	if stale {
		if rerr := c.refresh(ctx, id); rerr != nil {
			c.log.Warn(ctx, "refresh after save failed", "id", id, "error", rerr)
		}
	}
	c.removeBlobs(ctx, superseded)

	c.log.Info(ctx, "entity saved", "id", id, "files", len(staged.Attachments))
	c.succeeded(id, notify.ActionUpdate, c.label()+" saved", titleOf(out))
	c.recordSave(nil)

	v, err := c.Get(id)
	if err != nil {
		return View{}, err
	}
	return v, nil
}

func (c *Controller) validate(e *entity, staged staging.Entry) error {
	merged := e.row.Merge(staged.Fields)
	verr := &common.ValidationError{}
	for _, f := range c.schema.Required {
		if strings.TrimSpace(merged.String(f)) == "" {
			verr.Add(f, "is required")
		}
	}
	for _, col := range c.schema.RequiredFiles {
		if _, ok := staged.Attachments[staging.InlineSlot(col)]; !ok && merged.String(col) == "" {
			verr.Add(col, "file is required")
		}
	}
	for slot := range staged.Attachments {
		if err := c.checkSlot(e, slot); err != nil {
			verr.Add(slot.String(), "unknown attachment")
		}
	}
	return verr.OrNil()
}

func (c *Controller) stepErr(id, step string, err error) error {
	return &StepError{Collection: c.schema.Name, ID: id, Step: step, Err: err}
}

func (c *Controller) runSave(ctx context.Context, id string, row models.Row, children []models.Row, staged staging.Entry) (models.Row, []string, error) {
	slots := slices.SortedFunc(maps.Keys(staged.Attachments), func(a, b staging.Slot) int {
		return strings.Compare(a.String(), b.String())
	})

	keys := make(map[staging.Slot]string, len(slots))
	for _, slot := range slots {
		a := staged.Attachments[slot]
		key := a.UploadedKey
		// Past the window the sweep may already have removed it.
		if key != "" && c.now().Sub(a.UploadedAt) >= blob.UploadReuseWindow {
			key = ""
		}
		if key == "" {
			key = c.newKey(c.schema.KeyPrefix+"/"+id, a.File.Name)
			if _, err := c.blobs.Upload(ctx, c.schema.Bucket, key, a.File.Data, a.File.ContentType, false); err != nil {
				return nil, nil, c.stepErr(id, StepUpload, err)
			}
			c.buffer.MarkUploaded(id, slot, key, c.now())
			c.log.Debug(ctx, "file uploaded", "id", id, "slot", slot.String(), "key", key)
		}
		keys[slot] = key
	}

	superseded, err := c.writeChildren(ctx, id, children, slots, keys, staged)
	if err != nil {
		return nil, nil, c.stepErr(id, StepChildRows, err)
	}

	patch := staged.Fields.Clone()
	for _, slot := range slots {
		if !slot.IsInline() {
			continue
		}
		if old := row.String(slot.Column); old != keys[slot] {
			patch[slot.Column] = keys[slot]
			if old != "" {
				superseded = append(superseded, old)
			}
		}
	}
	if c.columns.HasColumn("updated_at") {
		patch["updated_at"] = c.now().UTC()
	}
	out, err := c.gw.Update(ctx, c.schema.Table, id, patch)
	if err != nil {
		return nil, nil, c.stepErr(id, StepParentRow, err)
	}
	return out, superseded, nil
}

// writeChildren points child rows at the uploaded keys. Rows that already
// hold the key are skipped and new groups inserted by an earlier attempt
// are updated instead of inserted again.
func (c *Controller) writeChildren(ctx context.Context, id string, children []models.Row, slots []staging.Slot, keys map[staging.Slot]string, staged staging.Entry) ([]string, error) {
	child := c.schema.Child
	if child == nil {
		return nil, nil
	}

	groups := map[string][]staging.Slot{}
	var order []string
	for _, slot := range slots {
		if slot.IsInline() {
			continue
		}
		if _, ok := groups[slot.Child]; !ok {
			order = append(order, slot.Child)
		}
		groups[slot.Child] = append(groups[slot.Child], slot)
	}

	nextSort := int64(0)
	for _, r := range children {
		if s := r.Int(child.SortColumn); s >= nextSort {
			nextSort = s + 1
		}
	}

	var superseded []string
	for _, group := range order {
		gslots := groups[group]
		target := group
		if gslots[0].IsNewGroup() {
			inserted, done := staged.Inserted[group]
			if !done {
				row := models.Row{child.ParentColumn: id, child.SortColumn: nextSort}
				for _, slot := range gslots {
					row[slot.Column] = keys[slot]
				}
				if child.KindColumn != "" {
					row[child.KindColumn] = models.MediaKindFor(staged.Attachments[gslots[0]].File.ContentType)
				}
				for _, col := range child.FileColumns {
					if _, ok := row[col]; !ok {
						row[col] = ""
					}
				}
				out, err := c.gw.Insert(ctx, child.Table, row)
				if err != nil {
					return nil, err
				}
				nextSort++
				c.buffer.MarkInserted(id, group, out.ID())
				c.putChild(id, out)
				children = append(children, out)
				continue
			}
			target = inserted
		}

		var cur models.Row
		if i := findRow(children, target); i >= 0 {
			cur = children[i]
		}
		patch := models.Row{}
		for _, slot := range gslots {
			old := cur.String(slot.Column)
			if old == keys[slot] {
				continue
			}
			patch[slot.Column] = keys[slot]
			if child.KindColumn != "" {
				patch[child.KindColumn] = models.MediaKindFor(staged.Attachments[slot].File.ContentType)
			}
			if old != "" {
				superseded = append(superseded, old)
			}
		}
		if len(patch) == 0 {
			continue
		}
		out, err := c.gw.Update(ctx, child.Table, target, patch)
		if err != nil {
			return nil, err
		}
		c.putChild(id, out)
	}
	return superseded, nil
}

// putChild records a child row written by a save so a retry sees it.
func (c *Controller) putChild(id string, row models.Row) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entities[id]
	if !ok {
		return
	}
	if i := findRow(e.children, row.ID()); i >= 0 {
		e.children[i] = row
	} else {
		e.children = append(e.children, row)
	}
}

func (c *Controller) removeBlobs(ctx context.Context, keys []string) {
	if len(keys) == 0 || c.blobs == nil {
		return
	}
	c.log.Info(ctx, "removing unreferenced files", "bucket", c.schema.Bucket, "count", len(keys))
	c.blobs.Remove(ctx, c.schema.Bucket, keys)
}
