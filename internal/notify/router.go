// Package notify turns change-feed events into user-facing notices for the
// admin bell. A Router belongs to one admin session and is discarded at
// sign-out; nothing is persisted.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// DefaultWindow is how long a kind:action:subject key suppresses repeats.
const DefaultWindow = 1500 * time.Millisecond

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Actions used in notice keys.
const (
	ActionInsert = "insert"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionFailed = "failed"
)

type Notice struct {
	ID        string    `json:"id"`
	Time      time.Time `json:"time"`
	Level     Level     `json:"level"`
	Kind      string    `json:"kind"`
	Action    string    `json:"action"`
	SubjectID string    `json:"subject_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
}

func (n Notice) key() string { return n.Kind + ":" + n.Action + ":" + n.SubjectID }

// Recorder counts pushed and suppressed notices. The metrics package
// implements it.
type Recorder interface {
	NoticePushed(kind string)
	NoticeDeduplicated(kind string)
}

type Router struct {
	window   time.Duration
	now      func() time.Time
	recorder Recorder

	mu       sync.Mutex
	notices  []Notice
	seen     map[string]time.Time
	focus    map[string]string
	watchers map[int]chan Notice
	nextW    int
}

type Option func(*Router)

func WithWindow(d time.Duration) Option { return func(r *Router) { r.window = d } }

func WithClock(now func() time.Time) Option { return func(r *Router) { r.now = now } }

func WithRecorder(rec Recorder) Option { return func(r *Router) { r.recorder = rec } }

func NewRouter(opts ...Option) *Router {
	r := &Router{
		window:   DefaultWindow,
		now:      time.Now,
		seen:     map[string]time.Time{},
		focus:    map[string]string{},
		watchers: map[int]chan Notice{},
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Push adds n unless a notice with the same kind, action and subject was
// pushed within the window. It returns the stored notice and whether it
// was added.
func (r *Router) Push(n Notice) (Notice, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.prune(now)

	key := n.key()
	if last, ok := r.seen[key]; ok && now.Sub(last) < r.window {
		if r.recorder != nil {
			r.recorder.NoticeDeduplicated(n.Kind)
		}
		return Notice{}, false
	}
	r.seen[key] = now

	n.ID = ulid.Make().String()
	n.Time = now
	n.Read = false
	if n.Level == "" {
		n.Level = LevelInfo
	}
	r.notices = append([]Notice{n}, r.notices...)

	for _, ch := range r.watchers {
		select {
		case ch <- n:
		default:
		}
	}
	if r.recorder != nil {
		r.recorder.NoticePushed(n.Kind)
	}
	return n, true
}

func (r *Router) prune(now time.Time) {
	for k, t := range r.seen {
		if now.Sub(t) >= r.window {
			delete(r.seen, k)
		}
	}
}

// List returns the notices, most recent first.
func (r *Router) List() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notice(nil), r.notices...)
}

func (r *Router) UnreadCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, x := range r.notices {
		if !x.Read {
			n++
		}
	}
	return n
}

func (r *Router) MarkRead(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notices {
		if r.notices[i].ID == id {
			r.notices[i].Read = true
			return true
		}
	}
	return false
}

func (r *Router) MarkAllRead() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.notices {
		r.notices[i].Read = true
	}
}

// MarkSubjectRead marks every notice about subject of kind as read and
// returns how many changed.
func (r *Router) MarkSubjectRead(kind, subjectID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for i := range r.notices {
		x := &r.notices[i]
		if x.Kind == kind && x.SubjectID == subjectID && !x.Read {
			x.Read = true
			n++
		}
	}
	return n
}

func (r *Router) DeleteOne(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notices {
		if r.notices[i].ID == id {
			r.notices = append(r.notices[:i], r.notices[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Router) DeleteAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = nil
}

// Select marks a notice read and, when it names a subject, leaves a
// one-shot focus request for views of that kind.
func (r *Router) Select(id string) (Notice, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notices {
		if r.notices[i].ID != id {
			continue
		}
		r.notices[i].Read = true
		n := r.notices[i]
		if n.SubjectID != "" && n.Action != ActionDelete {
			r.focus[n.Kind] = n.SubjectID
		}
		return n, true
	}
	return Notice{}, false
}

// ConsumeFocus returns and clears the pending focus subject for kind.
func (r *Router) ConsumeFocus(kind string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.focus[kind]
	delete(r.focus, kind)
	return id, ok
}

// Watch streams notices pushed after the call until ctx is done. Slow
// readers miss notices rather than block Push.
func (r *Router) Watch(ctx context.Context) <-chan Notice {
	ch := make(chan Notice, 32)

	r.mu.Lock()
	id := r.nextW
	r.nextW++
	r.watchers[id] = ch
	r.mu.Unlock()

	go func() {
		<-ctx.Done()
		r.mu.Lock()
		if _, ok := r.watchers[id]; ok {
			delete(r.watchers, id)
			close(ch)
		}
		r.mu.Unlock()
	}()
	return ch
}

// Reset drops every notice, focus request and dedupe entry and closes all
// watchers.
func (r *Router) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notices = nil
	r.seen = map[string]time.Time{}
	r.focus = map[string]string{}
	for id, ch := range r.watchers {
		delete(r.watchers, id)
		close(ch)
	}
}
