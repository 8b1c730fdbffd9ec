package bootstrap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartupTimer_AccumulatesRepeatedPhases(t *testing.T) {
	timer := NewStartupTimer()

	timer.Mark("database")
	time.Sleep(2 * time.Millisecond)
	timer.Mark("dbus")
	first, _ := timer.Phase("dbus")
	time.Sleep(2 * time.Millisecond)
	timer.Mark("dbus")

	total, ok := timer.Phase("dbus")
	assert.True(t, ok)
	assert.Greater(t, total, first)
	assert.Equal(t, []string{"database", "dbus"}, timer.order)

	_, ok = timer.Phase("never")
	assert.False(t, ok)
}
