package collection

import (
	"context"
	"slices"
	"strings"

	"github.com/dmitrijs2005/landkeeper/internal/common"
	"github.com/dmitrijs2005/landkeeper/internal/models"
	"github.com/dmitrijs2005/landkeeper/internal/notify"
	"github.com/dmitrijs2005/landkeeper/internal/staging"
)

// editable returns the entity if staged changes may be applied to it.
// Caller holds c.mu.
func (c *Controller) editable(id string) (*entity, error) {
	e, ok := c.entities[id]
	if !ok {
		return nil, c.notFound(id)
	}
	if e.state == Saving || e.state == Deleting {
		return nil, ErrBusy
	}
	return e, nil
}

func (c *Controller) checkFields(patch models.Row) error {
	verr := &common.ValidationError{}
	for col := range patch {
		switch {
		case slices.Contains(c.schema.ReadOnly, col):
			verr.Add(col, "is read-only")
		case c.schema.isInlineFile(col):
			verr.Add(col, "stage a file instead")
		case !c.columns.HasColumn(col):
			verr.Add(col, "unknown field")
		}
	}
	return verr.OrNil()
}

// Edit stages a field patch on id.
func (c *Controller) Edit(id string, patch models.Row) error {
	if err := c.checkFields(patch); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, err := c.editable(id)
	if err != nil {
		return err
	}
	if len(patch) == 0 {
		return nil
	}
	c.buffer.Edit(id, patch)
	e.state = Dirty
	return nil
}

// RevertField drops the staged edit of one field.
func (c *Controller) RevertField(ctx context.Context, id, column string) error {
	c.mu.Lock()
	e, err := c.editable(id)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.buffer.UnsetField(id, column)
	settle := c.settleLocked(e, id)
	c.mu.Unlock()

	if settle {
		return c.refresh(ctx, id)
	}
	return nil
}

func (c *Controller) checkSlot(e *entity, slot staging.Slot) error {
	verr := &common.ValidationError{}
	switch {
	case c.schema.Bucket == "" || c.blobs == nil:
		verr.Add(slot.String(), c.schema.Name+" has no files")
	case slot.IsInline():
		if !c.schema.isInlineFile(slot.Column) {
			verr.Add(slot.String(), "unknown attachment")
		}
	case c.schema.Child == nil || !c.schema.Child.isFile(slot.Column):
		verr.Add(slot.String(), "unknown attachment")
	case !slot.IsNewGroup() && findRow(e.children, slot.Child) < 0:
		verr.Add(slot.String(), "unknown attachment")
	}
	return verr.OrNil()
}

func checkFile(slot staging.Slot, file staging.LocalFile) error {
	verr := &common.ValidationError{}
	if strings.TrimSpace(file.Name) == "" {
		verr.Add(slot.String(), "file name is required")
	}
	if len(file.Data) == 0 {
		verr.Add(slot.String(), "file is empty")
	}
	return verr.OrNil()
}

// StageAttachment stages a local file for slot and returns its preview id.
func (c *Controller) StageAttachment(id string, slot staging.Slot, file staging.LocalFile) (string, error) {
	if err := checkFile(slot, file); err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, err := c.editable(id)
	if err != nil {
		return "", err
	}
	if err := c.checkSlot(e, slot); err != nil {
		return "", err
	}
	pid := c.buffer.StageAttachment(id, slot, file)
	e.state = Dirty
	return pid, nil
}

// Unstage drops the file staged for slot.
func (c *Controller) Unstage(ctx context.Context, id string, slot staging.Slot) error {
	c.mu.Lock()
	e, err := c.editable(id)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.buffer.Unstage(id, slot)
	settle := c.settleLocked(e, id)
	c.mu.Unlock()

	if settle {
		return c.refresh(ctx, id)
	}
	return nil
}

// Discard throws away everything staged for id.
func (c *Controller) Discard(ctx context.Context, id string) error {
	c.mu.Lock()
	e, err := c.editable(id)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.buffer.Clear(id)
	settle := c.settleLocked(e, id)
	c.mu.Unlock()

	if settle {
		return c.refresh(ctx, id)
	}
	return nil
}

// settleLocked moves an entity with nothing staged back to Clean and
// reports whether a stale copy needs refreshing. Caller holds c.mu.
func (c *Controller) settleLocked(e *entity, id string) bool {
	if c.buffer.IsDirty(id) {
		return false
	}
	e.state = Clean
	return e.stale
}

// Draft is a new entity: its fields and the files to attach. Files may
// address inline columns or new child groups only.
type Draft struct {
	Fields models.Row
	Files  map[staging.Slot]staging.LocalFile
}

// Create inserts a new entity and, when the draft carries files, saves them
// as a regular staged save. If that save fails the entity stays Dirty with
// its files staged and the error is returned alongside the view.
func (c *Controller) Create(ctx context.Context, d Draft) (View, error) {
	if err := c.checkDraft(d); err != nil {
		return View{}, err
	}

	row := d.Fields.Clone()
	for _, col := range c.schema.InlineFiles {
		row[col] = ""
	}
	out, err := c.gw.Insert(ctx, c.schema.Table, row)
	if err != nil {
		err = &StepError{Collection: c.schema.Name, Step: StepCreate, Err: err}
		c.failed(ctx, "", "Create failed", err)
		return View{}, err
	}
	id := out.ID()

	c.mu.Lock()
	e, ok := c.entities[id]
	if !ok {
		e = &entity{state: Clean}
		c.entities[id] = e
	}
	e.row = out
	for slot, file := range d.Files {
		c.buffer.StageAttachment(id, slot, file)
	}
	if len(d.Files) > 0 {
		e.state = Dirty
	}
	v := c.view(id, e)
	c.mu.Unlock()

	c.log.Info(ctx, "entity created", "id", id, "files", len(d.Files))
	if len(d.Files) == 0 {
		c.succeeded(id, notify.ActionInsert, c.label()+" created", titleOf(out))
		return v, nil
	}
	return c.Save(ctx, id)
}

func (c *Controller) checkDraft(d Draft) error {
	if err := c.checkFields(d.Fields); err != nil {
		return err
	}
	verr := &common.ValidationError{}
	for _, f := range c.schema.Required {
		if strings.TrimSpace(d.Fields.String(f)) == "" {
			verr.Add(f, "is required")
		}
	}
	for _, col := range c.schema.RequiredFiles {
		if _, ok := d.Files[staging.InlineSlot(col)]; !ok {
			verr.Add(col, "file is required")
		}
	}
	empty := &entity{}
	for slot, file := range d.Files {
		if !slot.IsInline() && !slot.IsNewGroup() {
			verr.Add(slot.String(), "unknown attachment")
			continue
		}
		if err := c.checkSlot(empty, slot); err != nil {
			verr.Add(slot.String(), "unknown attachment")
			continue
		}
		if err := checkFile(slot, file); err != nil {
			verr.Add(slot.String(), "file is empty")
		}
	}
	return verr.OrNil()
}

// Apply writes patch straight to the entity row, bypassing staging. It is
// used for one-click actions such as marking a quote sent or a message
// read. Staged edits are kept.
func (c *Controller) Apply(ctx context.Context, id string, patch models.Row) (View, error) {
	if err := c.checkFields(patch); err != nil {
		return View{}, err
	}

	c.mu.Lock()
	if _, err := c.editable(id); err != nil {
		c.mu.Unlock()
		return View{}, err
	}
	c.mu.Unlock()

	out, err := c.gw.Update(ctx, c.schema.Table, id, patch)
	if err != nil {
		c.failed(ctx, id, "Update failed", err)
		return View{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entities[id]
	if !ok {
		return View{}, c.notFound(id)
	}
	e.row = out
	return c.view(id, e), nil
}
