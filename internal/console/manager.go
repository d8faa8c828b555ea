package console

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/landkeeper/internal/common"
	"github.com/robfig/cron/v3"
)

// ReapSchedule is how often expired sessions are closed.
const ReapSchedule = "@every 1m"

var openWorkspace = Open

// SessionRecorder tracks open workspaces. The metrics package implements
// it.
type SessionRecorder interface {
	SessionOpened()
	SessionClosed()
}

// Manager owns the workspaces of all signed-in sessions.
type Manager struct {
	deps     Deps
	recorder SessionRecorder
	now      func() time.Time

	mu         sync.Mutex
	workspaces map[string]*Workspace
	opening    map[string]*sync.Mutex
	// revoked holds signed-out sessions until their tokens expire.
	revoked map[string]time.Time
}

func NewManager(deps Deps, recorder SessionRecorder) *Manager {
	return &Manager{
		deps:       deps,
		recorder:   recorder,
		now:        time.Now,
		workspaces: map[string]*Workspace{},
		opening:    map[string]*sync.Mutex{},
		revoked:    map[string]time.Time{},
	}
}

// Acquire returns the workspace of a session, opening it on first use.
func (m *Manager) Acquire(ctx context.Context, sessionID, email string, expiresAt time.Time) (*Workspace, error) {
	if !expiresAt.IsZero() && !m.now().Before(expiresAt) {
		return nil, common.ErrTokenExpired
	}

	m.mu.Lock()
	if _, ok := m.revoked[sessionID]; ok {
		m.mu.Unlock()
		return nil, common.ErrInvalidToken
	}
	if w, ok := m.workspaces[sessionID]; ok {
		m.mu.Unlock()
		return w, nil
	}
	lock, ok := m.opening[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		m.opening[sessionID] = lock
	}
	m.mu.Unlock()

	// One open per session; concurrent callers wait for it.
	lock.Lock()
	defer lock.Unlock()

	m.mu.Lock()
	if _, ok := m.revoked[sessionID]; ok {
		m.mu.Unlock()
		return nil, common.ErrInvalidToken
	}
	if w, ok := m.workspaces[sessionID]; ok {
		m.mu.Unlock()
		return w, nil
	}
	m.mu.Unlock()

	w, err := openWorkspace(ctx, m.deps, sessionID, email, expiresAt)

	m.mu.Lock()
	delete(m.opening, sessionID)
	_, revoked := m.revoked[sessionID]
	if err == nil && !revoked {
		m.workspaces[sessionID] = w
	}
	m.mu.Unlock()

	if err != nil {
		return nil, fmt.Errorf("open workspace: %w", err)
	}
	// Signed out while opening.
	if revoked {
		w.Close()
		return nil, common.ErrInvalidToken
	}

	if m.recorder != nil {
		m.recorder.SessionOpened()
	}
	return w, nil
}

// Get returns an already open workspace.
func (m *Manager) Get(sessionID string) (*Workspace, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.workspaces[sessionID]
	return w, ok
}

// Close tears a session's workspace down. It reports whether one was open.
func (m *Manager) Close(sessionID string) bool {
	m.mu.Lock()
	w, ok := m.workspaces[sessionID]
	delete(m.workspaces, sessionID)
	m.mu.Unlock()

	if !ok {
		return false
	}
	w.Close()
	if m.recorder != nil {
		m.recorder.SessionClosed()
	}
	return true
}

// SignOut closes the session's workspace and refuses the session from now
// until expiresAt, when its token stops being accepted anyway.
func (m *Manager) SignOut(sessionID string, expiresAt time.Time) {
	m.mu.Lock()
	m.revoked[sessionID] = expiresAt
	m.mu.Unlock()
	m.Close(sessionID)
}

// Reap closes every workspace whose session has expired and returns how
// many were closed.
func (m *Manager) Reap() int {
	now := m.now()

	m.mu.Lock()
	for id, until := range m.revoked {
		if !now.Before(until) {
			delete(m.revoked, id)
		}
	}
	var expired []string
	for id, w := range m.workspaces {
		if !w.ExpiresAt.IsZero() && !now.Before(w.ExpiresAt) {
			expired = append(expired, id)
		}
	}
	m.mu.Unlock()

	n := 0
	for _, id := range expired {
		if m.Close(id) {
			n++
		}
	}
	return n
}

// Schedule registers Reap on c.
func (m *Manager) Schedule(c *cron.Cron, spec string) (cron.EntryID, error) {
	id, err := c.AddFunc(spec, func() { m.Reap() })
	if err != nil {
		return 0, fmt.Errorf("schedule session reaping %q: %w", spec, err)
	}
	return id, nil
}

// CloseAll tears every workspace down.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	ids := make([]string, 0, len(m.workspaces))
	for id := range m.workspaces {
		ids = append(ids, id)
	}
	m.mu.Unlock()

	for _, id := range ids {
		m.Close(id)
	}
}

// Len is the number of open workspaces.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.workspaces)
}
