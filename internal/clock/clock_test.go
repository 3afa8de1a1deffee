package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	start := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	c := NewFixed(start)
	assert.Equal(t, start, c.Now())

	c.Advance(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), c.Now())

	later := time.Date(2025, 7, 1, 0, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	c.Set(later)
	assert.Equal(t, time.UTC, c.Now().Location())
	assert.True(t, later.Equal(c.Now()))
}

func TestSystem_ReturnsUTC(t *testing.T) {
	now := NewSystem().Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)
}
