// Package staging holds unsaved, per-entity edits: a field patch plus local
// files staged against attachment slots. It performs no I/O. Previews of
// staged files are tracked so that nothing outlives the edit it belongs to.
package staging

import (
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/landkeeper/internal/models"
	"github.com/google/uuid"
)

// LocalFile is a file picked by the admin and not uploaded yet.
type LocalFile struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
}

// Attachment is one staged file. UploadedKey and UploadedAt are set once a
// save uploaded it, so a retried save can reuse the key instead of uploading
// again.
type Attachment struct {
	File        LocalFile
	PreviewID   string
	UploadedKey string
	UploadedAt  time.Time
}

// Entry is a copy of one entity's staged state.
type Entry struct {
	Fields      models.Row
	Attachments map[Slot]Attachment
	// Inserted maps a new child group to the id of the row a previous save
	// attempt already inserted for it.
	Inserted map[string]string
}

func (e Entry) Dirty() bool { return len(e.Fields) > 0 || len(e.Attachments) > 0 }

type entry struct {
	fields      models.Row
	attachments map[Slot]Attachment
	inserted    map[string]string
}

type previewRef struct {
	entityID string
	slot     Slot
}

type Buffer struct {
	mu         sync.Mutex
	entries    map[string]*entry
	previews   map[string]previewRef
	newPreview func() string
}

func NewBuffer() *Buffer {
	return &Buffer{
		entries:    map[string]*entry{},
		previews:   map[string]previewRef{},
		newPreview: uuid.NewString,
	}
}

func (b *Buffer) get(id string) *entry {
	e := b.entries[id]
	if e == nil {
		e = &entry{fields: models.Row{}, attachments: map[Slot]Attachment{}, inserted: map[string]string{}}
		b.entries[id] = e
	}
	return e
}

// Edit merges patch into the entity's staged fields.
func (b *Buffer) Edit(id string, patch models.Row) {
	if len(patch) == 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	e := b.get(id)
	for k, v := range patch {
		e.fields[k] = v
	}
}

// StageAttachment records file for slot and returns the id of its preview.
// A file already staged for the slot is replaced and its preview revoked.
func (b *Buffer) StageAttachment(id string, slot Slot, file LocalFile) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := b.get(id)
	if old, ok := e.attachments[slot]; ok {
		delete(b.previews, old.PreviewID)
	}
	pid := b.newPreview()
	e.attachments[slot] = Attachment{File: file, PreviewID: pid}
	b.previews[pid] = previewRef{entityID: id, slot: slot}
	return pid
}

// Unstage drops the file staged for slot. It reports whether one existed.
func (b *Buffer) Unstage(id string, slot Slot) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := b.entries[id]
	if e == nil {
		return false
	}
	a, ok := e.attachments[slot]
	if !ok {
		return false
	}
	delete(b.previews, a.PreviewID)
	delete(e.attachments, slot)
	b.dropIfEmpty(id, e)
	return true
}

// UnsetField removes a staged field edit.
func (b *Buffer) UnsetField(id, column string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if e := b.entries[id]; e != nil {
		delete(e.fields, column)
		b.dropIfEmpty(id, e)
	}
}

// MarkUploaded records the key a staged file was uploaded under and when.
func (b *Buffer) MarkUploaded(id string, slot Slot, key string, at time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if e := b.entries[id]; e != nil {
		if a, ok := e.attachments[slot]; ok {
			a.UploadedKey = key
			a.UploadedAt = at
			e.attachments[slot] = a
		}
	}
}

// MarkInserted records the child row inserted for a new group.
func (b *Buffer) MarkInserted(id, group, childID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if e := b.entries[id]; e != nil {
		e.inserted[group] = childID
	}
}

// Clear discards everything staged for id and revokes its previews.
func (b *Buffer) Clear(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clear(id)
}

func (b *Buffer) ClearAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id := range b.entries {
		b.clear(id)
	}
}

func (b *Buffer) clear(id string) {
	e := b.entries[id]
	if e == nil {
		return
	}
	for _, a := range e.attachments {
		delete(b.previews, a.PreviewID)
	}
	delete(b.entries, id)
}

func (b *Buffer) dropIfEmpty(id string, e *entry) {
	if len(e.fields) == 0 && len(e.attachments) == 0 && len(e.inserted) == 0 {
		delete(b.entries, id)
	}
}

// Get returns a copy of the staged state of id.
func (b *Buffer) Get(id string) (Entry, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := b.entries[id]
	if e == nil {
		return Entry{}, false
	}
	return Entry{
		Fields:      e.fields.Clone(),
		Attachments: maps.Clone(e.attachments),
		Inserted:    maps.Clone(e.inserted),
	}, true
}

func (b *Buffer) IsDirty(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := b.entries[id]
	return e != nil && (len(e.fields) > 0 || len(e.attachments) > 0)
}

// DirtyIDs returns the sorted ids of every dirty entity.
func (b *Buffer) DirtyIDs() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	var ids []string
	for id, e := range b.entries {
		if len(e.fields) > 0 || len(e.attachments) > 0 {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// Preview resolves a live preview id to its file.
func (b *Buffer) Preview(previewID string) (LocalFile, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ref, ok := b.previews[previewID]
	if !ok {
		return LocalFile{}, false
	}
	return b.entries[ref.entityID].attachments[ref.slot].File, true
}

// LivePreviews is the number of previews not yet revoked.
func (b *Buffer) LivePreviews() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.previews)
}
