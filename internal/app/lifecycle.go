package app

import (
	"sync"

	"hello-window/internal/logger"
)

type lifecycleStep struct {
	name string
	fn   func()
}

// Lifecycle runs teardown steps in reverse registration order, exactly once.
type Lifecycle struct {
	logger     logger.Logger
	mu         sync.Mutex
	steps      []lifecycleStep
	isShutdown bool
}

func NewLifecycle(log logger.Logger) *Lifecycle {
	return &Lifecycle{
		logger: log,
	}
}

func (l *Lifecycle) Register(name string, fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.steps = append(l.steps, lifecycleStep{name: name, fn: fn})
}

func (l *Lifecycle) Shutdown() {
	l.mu.Lock()
	if l.isShutdown {
		l.mu.Unlock()
		return
	}
	l.isShutdown = true
	steps := l.steps
	l.mu.Unlock()

	l.logger.Info("Lifecycle", "shutdown sequence initiated", map[string]interface{}{
		"steps": len(steps),
	})

	for i := len(steps) - 1; i >= 0; i-- {
		steps[i].fn()
		l.logger.Debug("Lifecycle", "step completed", map[string]interface{}{
			"step": steps[i].name,
		})
	}

	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
}

func (l *Lifecycle) IsShutdown() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.isShutdown
}
