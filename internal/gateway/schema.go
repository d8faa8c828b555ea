package gateway

import (
	"fmt"
	"slices"

	"github.com/dmitrijs2005/landkeeper/internal/models"
)

// Table is one whitelisted table. Columns lists every column a caller may
// read, filter, order or write; "id" is always the primary key.
type Table struct {
	Name    string
	Columns []string
	// Timestamps names columns the gateway fills with the current time on
	// insert when the caller leaves them out.
	Timestamps []string
}

func (t Table) HasColumn(col string) bool {
	return slices.Contains(t.Columns, col)
}

// Schema is the registry of tables the gateway will touch. Identifiers that
// reach SQL text always come from here.
type Schema struct {
	tables map[string]Table
}

func NewSchema(tables ...Table) *Schema {
	s := &Schema{tables: make(map[string]Table, len(tables))}
	for _, t := range tables {
		s.tables[t.Name] = t
	}
	return s
}

func (s *Schema) Table(name string) (Table, error) {
	t, ok := s.tables[name]
	if !ok {
		return Table{}, fmt.Errorf("unknown table %q", name)
	}
	return t, nil
}

// Tables returns the registered table names in sorted order.
func (s *Schema) Tables() []string {
	names := make([]string, 0, len(s.tables))
	for n := range s.tables {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

func (t Table) checkColumns(cols ...string) error {
	for _, c := range cols {
		if !t.HasColumn(c) {
			return fmt.Errorf("unknown column %q", c)
		}
	}
	return nil
}

// DefaultSchema describes the admin console's tables.
func DefaultSchema() *Schema {
	created := []string{"created_at"}
	createdUpdated := []string{"created_at", "updated_at"}

	return NewSchema(
		Table{
			Name:       models.TableProjects,
			Columns:    []string{"id", "title", "description", "featured", "created_at", "updated_at"},
			Timestamps: createdUpdated,
		},
		Table{
			Name:       models.TablePairs,
			Columns:    []string{"id", "project_id", "before_key", "after_key", "sort_order", "created_at"},
			Timestamps: created,
		},
		Table{
			Name: models.TableVideos,
			Columns: []string{"id", "title", "description", "before_path", "after_path",
				"switch_time_seconds", "playback_rate", "created_at", "updated_at"},
			Timestamps: createdUpdated,
		},
		Table{
			Name:       models.TableGeneralProjects,
			Columns:    []string{"id", "title", "description", "featured", "created_at", "updated_at"},
			Timestamps: createdUpdated,
		},
		Table{
			Name:       models.TableMedia,
			Columns:    []string{"id", "project_id", "kind", "path", "sort_order", "created_at"},
			Timestamps: created,
		},
		Table{
			Name:       models.TableTestimonials,
			Columns:    []string{"id", "name", "text", "rating", "approved", "created_at"},
			Timestamps: created,
		},
		Table{
			Name:       models.TableMessages,
			Columns:    []string{"id", "name", "email", "phone", "subject", "body", "read", "created_at"},
			Timestamps: created,
		},
		Table{
			Name: models.TableQuotes,
			Columns: []string{"id", "name", "email", "phone", "address", "city", "service", "description",
				"contact_pref", "status", "quote_sent", "quote_sent_at", "reviewed", "created_at"},
			Timestamps: created,
		},
		Table{
			Name:       models.TableQuoteMedia,
			Columns:    []string{"id", "quote_id", "kind", "path", "sort_order", "created_at"},
			Timestamps: created,
		},
	)
}
