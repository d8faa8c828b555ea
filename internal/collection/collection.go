// Package collection implements the editable collection controller: it
// owns one admin list (projects, videos, quotes, ...), layers staged edits
// over the persisted rows, drives multi-step saves and deletes through the
// table and blob gateways, and merges change-feed events row by row.
package collection

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/landkeeper/internal/gateway"
	"github.com/dmitrijs2005/landkeeper/internal/models"
	"github.com/dmitrijs2005/landkeeper/internal/notify"
)

// State is the lifecycle position of one entity.
type State int

const (
	Clean State = iota
	Dirty
	Saving
	Deleting
	Removed
)

func (s State) String() string {
	switch s {
	case Clean:
		return "clean"
	case Dirty:
		return "dirty"
	case Saving:
		return "saving"
	case Deleting:
		return "deleting"
	case Removed:
		return "removed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ErrBusy rejects a save, delete or edit while the entity already has one
// in flight.
var ErrBusy = errors.New("operation already in progress")

// Steps reported by StepError.
const (
	StepValidate       = "validate"
	StepUpload         = "upload"
	StepChildRows      = "child rows"
	StepParentRow      = "parent row"
	StepCreate         = "create"
	StepDeleteChildren = "delete children"
	StepDeleteParent   = "delete parent"
)

// StepError tells which step of a save or delete failed. Steps before it
// may have taken effect.
type StepError struct {
	Collection string
	ID         string
	Step       string
	Err        error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s %s: %s failed: %v", e.Collection, e.ID, e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Schema describes one editable collection.
type Schema struct {
	Name string
	// Label names one entity in notices.
	Label string
	Kind  models.Kind
	Table string
	Order []gateway.Order

	// Bucket holds the collection's files. Signed buckets are private and
	// resolve to short-lived URLs.
	Bucket    string
	Signed    bool
	SignedTTL time.Duration
	KeyPrefix string

	// InlineFiles are attachment columns on the entity row itself.
	InlineFiles []string
	// RequiredFiles must hold a key, persisted or staged, for a save to
	// pass validation.
	RequiredFiles []string
	Required      []string
	// ReadOnly columns are never accepted by Edit.
	ReadOnly []string

	Child *ChildSchema
}

// ChildSchema describes attachment rows owned by an entity.
type ChildSchema struct {
	Table        string
	Kind         models.Kind
	ParentColumn string
	SortColumn   string
	FileColumns  []string
	// KindColumn, when set, receives the media kind of an uploaded file.
	KindColumn string
}

func (s Schema) isInlineFile(col string) bool {
	for _, c := range s.InlineFiles {
		if c == col {
			return true
		}
	}
	return false
}

func (c *ChildSchema) isFile(col string) bool {
	for _, f := range c.FileColumns {
		if f == col {
			return true
		}
	}
	return false
}

// Collection schemas of the admin console.
var (
	Projects = Schema{
		Name:      "projects",
		Label:     "Project",
		Kind:      models.KindProject,
		Table:     models.TableProjects,
		Order:     []gateway.Order{gateway.Desc("featured"), gateway.Desc("created_at")},
		Bucket:    models.BucketProjects,
		KeyPrefix: "projects",
		Required:  []string{"title"},
		ReadOnly:  []string{"id", "created_at", "updated_at"},
		Child: &ChildSchema{
			Table:        models.TablePairs,
			Kind:         models.KindPair,
			ParentColumn: "project_id",
			SortColumn:   "sort_order",
			FileColumns:  []string{"before_key", "after_key"},
		},
	}

	Videos = Schema{
		Name:          "videos",
		Label:         "Video",
		Kind:          models.KindVideo,
		Table:         models.TableVideos,
		Order:         []gateway.Order{gateway.Desc("created_at")},
		Bucket:        models.BucketVideos,
		KeyPrefix:     "videos",
		InlineFiles:   []string{"before_path", "after_path"},
		RequiredFiles: []string{"before_path", "after_path"},
		Required:      []string{"title"},
		ReadOnly:      []string{"id", "created_at", "updated_at"},
	}

	General = Schema{
		Name:      "general",
		Label:     "General project",
		Kind:      models.KindGeneralProject,
		Table:     models.TableGeneralProjects,
		Order:     []gateway.Order{gateway.Desc("featured"), gateway.Desc("created_at")},
		Bucket:    models.BucketGeneral,
		KeyPrefix: "general",
		Required:  []string{"title"},
		ReadOnly:  []string{"id", "created_at", "updated_at"},
		Child: &ChildSchema{
			Table:        models.TableMedia,
			Kind:         models.KindMedia,
			ParentColumn: "project_id",
			SortColumn:   "sort_order",
			FileColumns:  []string{"path"},
			KindColumn:   "kind",
		},
	}

	Testimonials = Schema{
		Name:     "testimonials",
		Label:    "Review",
		Kind:     models.KindTestimonial,
		Table:    models.TableTestimonials,
		Order:    []gateway.Order{gateway.Desc("created_at")},
		Required: []string{"name", "text"},
		ReadOnly: []string{"id", "created_at"},
	}

	Messages = Schema{
		Name:     "messages",
		Label:    "Message",
		Kind:     models.KindMessage,
		Table:    models.TableMessages,
		Order:    []gateway.Order{gateway.Desc("created_at")},
		Required: []string{"name", "email", "body"},
		ReadOnly: []string{"id", "created_at"},
	}

	Quotes = Schema{
		Name:      "quotes",
		Label:     "Quote",
		Kind:      models.KindQuote,
		Table:     models.TableQuotes,
		Order:     []gateway.Order{gateway.Desc("created_at")},
		Bucket:    models.BucketQuoteMedia,
		Signed:    true,
		KeyPrefix: "quotes",
		Required:  []string{"name", "email", "service"},
		ReadOnly:  []string{"id", "created_at"},
		Child: &ChildSchema{
			Table:        models.TableQuoteMedia,
			Kind:         models.KindQuoteMedia,
			ParentColumn: "quote_id",
			SortColumn:   "sort_order",
			FileColumns:  []string{"path"},
			KindColumn:   "kind",
		},
	}
)

// All lists every collection schema in display order.
func All() []Schema {
	return []Schema{Projects, Videos, General, Testimonials, Messages, Quotes}
}

// ByName finds a collection schema.
func ByName(name string) (Schema, bool) {
	for _, s := range All() {
		if s.Name == name {
			return s, true
		}
	}
	return Schema{}, false
}

// Notifier receives the controller's success and failure notices.
// *notify.Router implements it.
type Notifier interface {
	Push(n notify.Notice) (notify.Notice, bool)
}

// Recorder counts save and delete outcomes. The metrics package
// implements it.
type Recorder interface {
	SaveFinished(collection string, err error)
	DeleteFinished(collection string, err error)
}
