package staging

import (
	"fmt"
	"strings"
)

// NewGroupPrefix marks a Slot.Child that does not exist remotely yet.
const NewGroupPrefix = "new-"

// Slot addresses one staged attachment of an entity:
//
//	before_path          inline column on the entity row
//	<childID>/after_key  column of an existing child row
//	new-<token>/path     column of a child row to be inserted on save
type Slot struct {
	Child  string
	Column string
}

func InlineSlot(column string) Slot { return Slot{Column: column} }

func ChildSlot(childID, column string) Slot { return Slot{Child: childID, Column: column} }

// NewChildSlot addresses a column of a child group that will be inserted on
// save. Slots sharing a token end up on the same new row.
func NewChildSlot(token, column string) Slot {
	return Slot{Child: NewGroupPrefix + token, Column: column}
}

func (s Slot) IsInline() bool { return s.Child == "" }

func (s Slot) IsNewGroup() bool { return strings.HasPrefix(s.Child, NewGroupPrefix) }

func (s Slot) String() string {
	if s.Child == "" {
		return s.Column
	}
	return s.Child + "/" + s.Column
}

func ParseSlot(v string) (Slot, error) {
	child, col, found := strings.Cut(v, "/")
	if !found {
		child, col = "", v
	}
	if col == "" || strings.Contains(col, "/") || (found && child == "") || child == NewGroupPrefix {
		return Slot{}, fmt.Errorf("invalid slot %q", v)
	}
	return Slot{Child: child, Column: col}, nil
}
