package collection

import (
	"slices"

	"github.com/dmitrijs2005/landkeeper/internal/models"
	"github.com/dmitrijs2005/landkeeper/internal/staging"
)

// MediaRef is what an attachment slot currently shows: the staged local
// file when one is staged, the persisted key otherwise.
type MediaRef struct {
	Slot      string `json:"slot"`
	Key       string `json:"key,omitempty"`
	Staged    bool   `json:"staged"`
	PreviewID string `json:"preview_id,omitempty"`
	FileName  string `json:"file_name,omitempty"`
}

type ChildView struct {
	ID     string     `json:"id"`
	New    bool       `json:"new,omitempty"`
	Fields models.Row `json:"fields"`
	Media  []MediaRef `json:"media"`
}

// View is a read-only snapshot of one entity as the admin sees it.
type View struct {
	Collection string      `json:"collection"`
	ID         string      `json:"id"`
	Kind       models.Kind `json:"kind"`
	State      string      `json:"state"`
	Stale      bool        `json:"stale"`
	// Fields is the persisted row with staged field edits applied.
	Fields   models.Row  `json:"fields"`
	Media    []MediaRef  `json:"media,omitempty"`
	Children []ChildView `json:"children,omitempty"`
}

// Record decodes the displayed fields into the collection's record type.
func (v View) Record() (models.Record, error) {
	return models.Decode(v.Kind, v.Fields)
}

func (c *Controller) view(id string, e *entity) View {
	staged, _ := c.buffer.Get(id)

	v := View{
		Collection: c.schema.Name,
		ID:         id,
		Kind:       c.schema.Kind,
		State:      e.state.String(),
		Stale:      e.stale,
		Fields:     e.row.Merge(staged.Fields),
	}
	for _, col := range c.schema.InlineFiles {
		v.Media = append(v.Media, mediaRef(staging.InlineSlot(col), e.row.String(col), staged))
	}

	child := c.schema.Child
	if child == nil {
		return v
	}
	for _, row := range e.children {
		cv := ChildView{ID: row.ID(), Fields: row.Clone()}
		for _, col := range child.FileColumns {
			cv.Media = append(cv.Media, mediaRef(staging.ChildSlot(row.ID(), col), row.String(col), staged))
		}
		v.Children = append(v.Children, cv)
	}

	// New groups not inserted yet show up after the persisted children.
	groups := map[string]bool{}
	for slot := range staged.Attachments {
		if slot.IsNewGroup() {
			if _, done := staged.Inserted[slot.Child]; !done {
				groups[slot.Child] = true
			}
		}
	}
	tokens := make([]string, 0, len(groups))
	for g := range groups {
		tokens = append(tokens, g)
	}
	slices.Sort(tokens)
	for _, g := range tokens {
		cv := ChildView{ID: g, New: true, Fields: models.Row{}}
		for _, col := range child.FileColumns {
			cv.Media = append(cv.Media, mediaRef(staging.Slot{Child: g, Column: col}, "", staged))
		}
		v.Children = append(v.Children, cv)
	}
	return v
}

func mediaRef(slot staging.Slot, key string, staged staging.Entry) MediaRef {
	ref := MediaRef{Slot: slot.String(), Key: key}
	if a, ok := staged.Attachments[slot]; ok {
		ref.Staged = true
		ref.PreviewID = a.PreviewID
		ref.FileName = a.File.Name
	}
	return ref
}
