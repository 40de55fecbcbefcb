package services

import (
	"sync"
	"time"
)

// DefaultSubmitLockDuration matches the sign-in form's guard window.
const DefaultSubmitLockDuration = 800 * time.Millisecond

// SubmitLock rejects repeated submissions within a time window. It belongs
// to the UI layer: AuthService itself never de-duplicates calls.
type SubmitLock struct {
	mu       sync.Mutex
	duration time.Duration
	until    time.Time
	now      func() time.Time
}

func NewSubmitLock(duration time.Duration) *SubmitLock {
	if duration <= 0 {
		duration = DefaultSubmitLockDuration
	}
	return &SubmitLock{duration: duration, now: time.Now}
}

// TryAcquire reports whether an action may proceed, and if so starts a new
// window.
func (l *SubmitLock) TryAcquire() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	t := l.now()
	if t.Before(l.until) {
		return false
	}
	l.until = t.Add(l.duration)
	return true
}
