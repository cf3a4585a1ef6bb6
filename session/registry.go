package session

import (
	"sync"
	"time"
)

// Registry owns one IdleMonitor per bearer token. Expired monitors remove
// themselves, so a revoked token simply stops resolving.
type Registry struct {
	mu            sync.Mutex
	sessions      map[string]*IdleMonitor
	timeout       time.Duration
	warningWindow time.Duration
}

func NewRegistry(timeout, warningWindow time.Duration) *Registry {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if warningWindow <= 0 || warningWindow >= timeout {
		warningWindow = WarningWindow
	}
	return &Registry{
		sessions:      make(map[string]*IdleMonitor),
		timeout:       timeout,
		warningWindow: warningWindow,
	}
}

// Register starts tracking a freshly issued token.
func (r *Registry) Register(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.sessions[token]; ok {
		old.Stop()
	}

	m := NewIdleMonitor(r.timeout, r.warningWindow, nil, func() {
		r.mu.Lock()
		delete(r.sessions, token)
		r.mu.Unlock()
	})
	r.sessions[token] = m
	m.Start()
}

// Touch records activity for the token. Returns false when the session is
// unknown or already expired.
func (r *Registry) Touch(token string) bool {
	r.mu.Lock()
	m, ok := r.sessions[token]
	r.mu.Unlock()
	if !ok {
		return false
	}
	if m.Evaluate() == StateExpired {
		return false
	}
	m.Touch()
	return true
}

// Peek reports the session state and remaining seconds without counting as
// activity (the UI polls this for its countdown).
func (r *Registry) Peek(token string) (State, int, bool) {
	r.mu.Lock()
	m, ok := r.sessions[token]
	r.mu.Unlock()
	if !ok {
		return StateExpired, 0, false
	}
	state := m.Evaluate()
	if state == StateExpired {
		return StateExpired, 0, false
	}
	return state, int(m.Remaining() / time.Second), true
}

// Revoke drops the token on explicit logout.
func (r *Registry) Revoke(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.sessions[token]; ok {
		m.Stop()
		delete(r.sessions, token)
	}
}
