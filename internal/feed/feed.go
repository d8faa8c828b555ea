// Package feed delivers row-level change events per table. Delivery is
// at-least-once and asynchronous; events for one subscription arrive in
// publish order. Nothing is replayed after a reconnect: subscribers get
// OnReconnect and are expected to reload.
package feed

import "github.com/dmitrijs2005/landkeeper/internal/models"

type Op string

const (
	OpInsert Op = "INSERT"
	OpUpdate Op = "UPDATE"
	OpDelete Op = "DELETE"
)

// Event is one row change. New is set for inserts and updates, Old for
// updates and deletes when the source provides it. Partial rows carry only
// some columns, at least the id.
type Event struct {
	Table   string     `json:"table"`
	Op      Op         `json:"op"`
	New     models.Row `json:"new,omitempty"`
	Old     models.Row `json:"old,omitempty"`
	Partial bool       `json:"partial,omitempty"`
}

// Row returns the row the event is about.
func (e Event) Row() models.Row {
	if e.Op == OpDelete || e.New == nil {
		return e.Old
	}
	return e.New
}

func (e Event) ID() string { return e.Row().ID() }

// Handlers are the callbacks of one subscription. Nil handlers are skipped.
type Handlers struct {
	OnInsert    func(Event)
	OnUpdate    func(Event)
	OnDelete    func(Event)
	OnReconnect func()
}

func (h Handlers) dispatch(ev Event) {
	var fn func(Event)
	switch ev.Op {
	case OpInsert:
		fn = h.OnInsert
	case OpUpdate:
		fn = h.OnUpdate
	case OpDelete:
		fn = h.OnDelete
	}
	if fn != nil {
		fn(ev)
	}
}

// Subscriber hands out per-table subscriptions. The returned function
// cancels the subscription; it is safe to call more than once.
type Subscriber interface {
	Subscribe(table string, h Handlers) (unsubscribe func())
}
