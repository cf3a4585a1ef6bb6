// Package session tracks per-session inactivity with a fixed timeout and a
// warning window before forced sign-out.
package session

import (
	"sync"
	"time"
)

type State int

const (
	StateActive State = iota
	StateWarning
	StateExpired
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateWarning:
		return "warning"
	case StateExpired:
		return "expired"
	}
	return "unknown"
}

const (
	// DefaultTimeout is how long a session may sit idle before sign-out.
	DefaultTimeout = 15 * time.Minute
	// WarningWindow is the tail of the timeout during which the UI shows a
	// countdown.
	WarningWindow = 60 * time.Second

	tickPeriod = time.Second
)

// IdleMonitor is a single-session inactivity state machine:
// Active -> Warning -> Expired. Activity resets the clock and cancels a
// warning; Expired is terminal. All transitions happen on the once-per-second
// tick, events only move the timestamp.
type IdleMonitor struct {
	mu            sync.Mutex
	timeout       time.Duration
	warningWindow time.Duration
	lastActivity  time.Time
	state         State

	onWarning func(secondsRemaining int)
	onExpired func()

	now  func() time.Time
	done chan struct{}
	stop sync.Once
}

// NewIdleMonitor builds a monitor in the Active state with the clock already
// running from now. Callbacks may be nil. Call Start to begin ticking.
func NewIdleMonitor(timeout, warningWindow time.Duration, onWarning func(int), onExpired func()) *IdleMonitor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if warningWindow <= 0 || warningWindow >= timeout {
		warningWindow = WarningWindow
	}
	m := &IdleMonitor{
		timeout:       timeout,
		warningWindow: warningWindow,
		state:         StateActive,
		onWarning:     onWarning,
		onExpired:     onExpired,
		now:           time.Now,
		done:          make(chan struct{}),
	}
	m.lastActivity = m.now()
	return m
}

// Start launches the background tick. Stop must be called on teardown.
func (m *IdleMonitor) Start() {
	go func() {
		t := time.NewTicker(tickPeriod)
		defer t.Stop()
		for {
			select {
			case <-m.done:
				return
			case <-t.C:
				if m.Evaluate() == StateExpired {
					return
				}
			}
		}
	}()
}

// Touch records user activity: resets the idle clock and drops a Warning back
// to Active. No-op once expired.
func (m *IdleMonitor) Touch() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == StateExpired {
		return
	}
	m.lastActivity = m.now()
	if m.state == StateWarning {
		m.state = StateActive
	}
}

// Evaluate is the tick body: computes remaining time and applies at most one
// transition. Callbacks fire outside the lock.
func (m *IdleMonitor) Evaluate() State {
	m.mu.Lock()
	if m.state == StateExpired {
		m.mu.Unlock()
		return StateExpired
	}

	remaining := m.timeout - m.now().Sub(m.lastActivity)

	var fireExpired bool
	var fireWarning bool
	var seconds int

	switch {
	case remaining <= 0:
		m.state = StateExpired
		fireExpired = true
	case remaining <= m.warningWindow:
		m.state = StateWarning
		fireWarning = true
		seconds = int(remaining / time.Second)
	default:
		m.state = StateActive
	}
	state := m.state
	m.mu.Unlock()

	if fireExpired && m.onExpired != nil {
		m.onExpired()
	}
	if fireWarning && m.onWarning != nil {
		m.onWarning(seconds)
	}
	return state
}

// State returns the current state without re-evaluating the clock.
func (m *IdleMonitor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Remaining returns time left before expiry (zero if already expired).
func (m *IdleMonitor) Remaining() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == StateExpired {
		return 0
	}
	r := m.timeout - m.now().Sub(m.lastActivity)
	if r < 0 {
		return 0
	}
	return r
}

// Stop halts the background tick. Safe to call more than once.
func (m *IdleMonitor) Stop() {
	m.stop.Do(func() { close(m.done) })
}
