package round

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/ugaemi/huntgrid/internal/game"
)

// Manager manages all active sessions.
type Manager struct {
	sessions map[uuid.UUID]*Session
	order    []uuid.UUID
	mu       sync.RWMutex
}

// NewManager creates a new session manager.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[uuid.UUID]*Session),
	}
}

// CreateSession creates a new session and registers it.
func (m *Manager) CreateSession(opts Options) (*Session, error) {
	s, err := NewSession(opts)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	m.order = append(m.order, s.ID)

	slog.Info("session created", "session", s.ID, "seed", opts.Seed)
	return s, nil
}

// GetSession returns a session by its id, or nil.
func (m *Manager) GetSession(id uuid.UUID) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[id]
}

// RemoveSession removes a session by its id.
func (m *Manager) RemoveSession(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return
	}
	delete(m.sessions, id)
	for i, sid := range m.order {
		if sid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	slog.Info("session removed", "session", id)
}

// SessionCount returns the number of active sessions.
func (m *Manager) SessionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sessions returns the active sessions in creation order.
func (m *Manager) Sessions() []*Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Session, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.sessions[id])
	}
	return out
}

// Result is how one session's Run ended.
type Result struct {
	Session uuid.UUID
	Round   uuid.UUID
	State   game.RoundState
	Ticks   int
	Err     error
}

// RunAll resumes every session and runs each on its own goroutine until all
// of them return. Results are in creation order.
func (m *Manager) RunAll(ctx context.Context) []Result {
	sessions := m.Sessions()
	results := make([]Result, len(sessions))

	var wg sync.WaitGroup
	for i, s := range sessions {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Resume()
			if err == nil {
				err = s.Run(ctx)
			}
			results[i] = Result{
				Session: s.ID,
				Round:   s.RoundID(),
				State:   s.State(),
				Ticks:   s.Ticks(),
				Err:     err,
			}
		}()
	}
	wg.Wait()
	return results
}
