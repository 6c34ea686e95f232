package app

import (
	"testing"

	"hello-window/internal/logger"

	"github.com/stretchr/testify/assert"
)

func TestLifecycle_ReverseOrderOnce(t *testing.T) {
	var order []string
	l := NewLifecycle(logger.Nop())
	l.Register("first", func() { order = append(order, "first") })
	l.Register("second", func() { order = append(order, "second") })

	assert.False(t, l.IsShutdown())

	l.Shutdown()
	l.Shutdown()

	assert.True(t, l.IsShutdown())
	assert.Equal(t, []string{"second", "first"}, order)
}

func TestLifecycle_NoSteps(t *testing.T) {
	l := NewLifecycle(logger.Nop())

	assert.NotPanics(t, l.Shutdown)
	assert.True(t, l.IsShutdown())
}
