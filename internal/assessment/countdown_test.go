package assessment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCountdownTicksToZero(t *testing.T) {
	c := NewCountdown(3 * time.Second)
	assert.True(t, c.Running())
	assert.Equal(t, "0:03", c.String())

	assert.True(t, c.Tick())
	assert.True(t, c.Tick())
	assert.False(t, c.Tick())

	assert.True(t, c.Expired())
	assert.False(t, c.Running())
	assert.Equal(t, "0:00", c.String())

	assert.False(t, c.Tick())
	assert.Equal(t, time.Duration(0), c.Remaining())
}

func TestCountdownString(t *testing.T) {
	tests := []struct {
		limit time.Duration
		want  string
	}{
		{90 * time.Second, "1:30"},
		{60 * time.Second, "1:00"},
		{45 * time.Second, "0:45"},
		{5 * time.Second, "0:05"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NewCountdown(tt.limit).String())
	}
}

func TestCountdownUrgent(t *testing.T) {
	c := NewCountdown(12 * time.Second)
	assert.False(t, c.Urgent())
	c.Tick()
	assert.False(t, c.Urgent())
	c.Tick()
	assert.True(t, c.Urgent())
}

func TestCountdownStop(t *testing.T) {
	c := NewCountdown(30 * time.Second)
	c.Stop()
	assert.False(t, c.Tick())
	assert.Equal(t, 30*time.Second, c.Remaining())
	assert.False(t, c.Expired())
}

func TestCountdownGenerationsDiffer(t *testing.T) {
	a := NewCountdown(time.Minute)
	b := NewCountdown(time.Minute)
	assert.NotEqual(t, a.Gen(), b.Gen())
}
