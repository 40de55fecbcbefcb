package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubmitLock_Window(t *testing.T) {
	base := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	clock := base
	l := NewSubmitLock(800 * time.Millisecond)
	l.now = func() time.Time { return clock }

	assert.True(t, l.TryAcquire(), "first tap proceeds")
	assert.False(t, l.TryAcquire(), "immediate second tap is rejected")

	clock = base.Add(799 * time.Millisecond)
	assert.False(t, l.TryAcquire())

	clock = base.Add(800 * time.Millisecond)
	assert.True(t, l.TryAcquire(), "window has elapsed")
	assert.False(t, l.TryAcquire())
}

func TestNewSubmitLock_DefaultDuration(t *testing.T) {
	assert.Equal(t, DefaultSubmitLockDuration, NewSubmitLock(0).duration)
	assert.Equal(t, DefaultSubmitLockDuration, NewSubmitLock(-time.Second).duration)
	assert.Equal(t, time.Second, NewSubmitLock(time.Second).duration)
}
