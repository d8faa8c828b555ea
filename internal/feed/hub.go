package feed

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/landkeeper/internal/logging"
)

// Hub is the in-process Subscriber. Publish never blocks: each subscription
// owns an unbounded mailbox drained by its own goroutine.
type Hub struct {
	log logging.Logger

	mu     sync.Mutex
	nextID uint64
	subs   map[string]map[uint64]*mailbox
	closed bool
}

func NewHub(log logging.Logger) *Hub {
	return &Hub{log: log, subs: map[string]map[uint64]*mailbox{}}
}

func (h *Hub) Subscribe(table string, handlers Handlers) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return func() {}
	}

	h.nextID++
	id := h.nextID
	mb := newMailbox(h.log, table, handlers)
	if h.subs[table] == nil {
		h.subs[table] = map[uint64]*mailbox{}
	}
	h.subs[table][id] = mb
	go mb.run()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[table], id)
			h.mu.Unlock()
			mb.close()
		})
	}
}

// Publish fans ev out to every subscription of ev.Table.
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, mb := range h.subs[ev.Table] {
		mb.push(delivery{event: ev})
	}
}

// Reconnected tells every subscription that events may have been missed.
func (h *Hub) Reconnected() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, byID := range h.subs {
		for _, mb := range byID {
			mb.push(delivery{reconnect: true})
		}
	}
	h.log.Info(context.Background(), "feed reconnected, subscribers notified")
}

// Subscriptions returns the number of live subscriptions on table.
func (h *Hub) Subscriptions(table string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[table])
}

// Close stops every subscription. Further Subscribe calls are no-ops.
func (h *Hub) Close() {
	h.mu.Lock()
	subs := h.subs
	h.subs = map[string]map[uint64]*mailbox{}
	h.closed = true
	h.mu.Unlock()

	for _, byID := range subs {
		for _, mb := range byID {
			mb.close()
		}
	}
}

type delivery struct {
	event     Event
	reconnect bool
}

type mailbox struct {
	log      logging.Logger
	table    string
	handlers Handlers

	mu     sync.Mutex
	queue  []delivery
	closed bool
	wake   chan struct{}
	done   chan struct{}
}

func newMailbox(log logging.Logger, table string, h Handlers) *mailbox {
	return &mailbox{
		log:      log,
		table:    table,
		handlers: h,
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

func (m *mailbox) push(d delivery) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.queue = append(m.queue, d)
	m.mu.Unlock()

	select {
	case m.wake <- struct{}{}:
	default:
	}
}

func (m *mailbox) close() {
	m.mu.Lock()
	if !m.closed {
		m.closed = true
		m.queue = nil
		close(m.done)
	}
	m.mu.Unlock()
}

func (m *mailbox) run() {
	for {
		select {
		case <-m.done:
			return
		case <-m.wake:
		}

		for {
			m.mu.Lock()
			if m.closed || len(m.queue) == 0 {
				m.mu.Unlock()
				break
			}
			d := m.queue[0]
			m.queue = m.queue[1:]
			m.mu.Unlock()

			m.deliver(d)
		}
	}
}

func (m *mailbox) deliver(d delivery) {
	defer func() {
		if p := recover(); p != nil {
			m.log.Error(context.Background(), "feed handler panicked", "table", m.table, "panic", p)
		}
	}()

	if d.reconnect {
		if m.handlers.OnReconnect != nil {
			m.handlers.OnReconnect()
		}
		return
	}
	m.handlers.dispatch(d.event)
}
