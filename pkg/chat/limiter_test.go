package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVisitorLimiter_BurstThenDeny(t *testing.T) {
	vl := NewVisitorLimiter(10, 3, 30*time.Minute, newFakeClock())

	assert.True(t, vl.Allow("1.2.3.4"))
	assert.True(t, vl.Allow("1.2.3.4"))
	assert.True(t, vl.Allow("1.2.3.4"))
	assert.False(t, vl.Allow("1.2.3.4"))
}

func TestVisitorLimiter_PerVisitorIsolation(t *testing.T) {
	vl := NewVisitorLimiter(10, 1, 30*time.Minute, newFakeClock())

	assert.True(t, vl.Allow("1.2.3.4"))
	assert.False(t, vl.Allow("1.2.3.4"))

	// A different visitor has their own budget.
	assert.True(t, vl.Allow("5.6.7.8"))
}

func TestVisitorLimiter_SweepEvictsIdle(t *testing.T) {
	clock := newFakeClock()
	vl := NewVisitorLimiter(10, 3, 30*time.Minute, clock)

	vl.Allow("idle")
	clock.Advance(31 * time.Minute)
	vl.Allow("active")

	assert.Equal(t, 1, vl.Sweep())
	assert.Equal(t, 1, vl.Len())
}

func TestVisitorLimiter_SweepKeepsRecent(t *testing.T) {
	clock := newFakeClock()
	vl := NewVisitorLimiter(10, 3, 30*time.Minute, clock)

	vl.Allow("a")
	vl.Allow("b")
	clock.Advance(10 * time.Minute)

	assert.Equal(t, 0, vl.Sweep())
	assert.Equal(t, 2, vl.Len())
}
