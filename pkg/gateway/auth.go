package gateway

import (
	"sync"
	"time"
)

// RefreshInterval is how long an authentication stays fresh before the next
// privileged call triggers a re-authentication.
const RefreshInterval = 4 * time.Minute

// NeedsRefresh reports whether an authentication performed at last is stale
// at now. An authentication exactly RefreshInterval old is still fresh; a
// zero last means never authenticated.
func NeedsRefresh(last, now time.Time) bool {
	if last.IsZero() {
		return true
	}
	return now.Sub(last) > RefreshInterval
}

// AuthLifecycle tracks the age of the last successful authentication. It is
// safe for concurrent use.
type AuthLifecycle struct {
	mu       sync.RWMutex
	lastAuth time.Time
	now      func() time.Time
}

// NewAuthLifecycle returns a lifecycle with no authentication recorded.
func NewAuthLifecycle() *AuthLifecycle {
	return &AuthLifecycle{now: time.Now}
}

// MarkAuthenticated records a successful authentication at the current time.
func (l *AuthLifecycle) MarkAuthenticated() {
	l.mu.Lock()
	l.lastAuth = l.now()
	l.mu.Unlock()
}

// NeedsRefresh reports whether the last authentication is stale.
func (l *AuthLifecycle) NeedsRefresh() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return NeedsRefresh(l.lastAuth, l.now())
}

// LastAuthenticated returns the time of the last successful authentication,
// zero if none.
func (l *AuthLifecycle) LastAuthenticated() time.Time {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lastAuth
}
