package audit

import (
	"errors"
	"runtime"
	"sync"
)

// ErrExecutorClosed is returned by Loop.Run after Close.
var ErrExecutorClosed = errors.New("executor closed")

// Executor runs work on the execution context that owns the UI handle.
// Run blocks until fn has returned.
type Executor interface {
	Run(fn func()) error
}

// Inline runs work directly on the calling goroutine. Use it when the caller
// already is the UI-owning context, as in most test runners.
var Inline Executor = inlineExecutor{}

type inlineExecutor struct{}

func (inlineExecutor) Run(fn func()) error {
	fn()
	return nil
}

// Loop is an Executor backed by a single goroutine locked to its OS thread.
// Work submitted from any goroutine runs there one task at a time.
type Loop struct {
	tasks chan func()
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

// NewLoop starts a Loop. Call Close to stop it.
func NewLoop() *Loop {
	l := &Loop{
		tasks: make(chan func()),
		done:  make(chan struct{}),
	}
	go l.run()
	return l
}

func (l *Loop) run() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(l.done)

	for task := range l.tasks {
		task()
	}
}

// Run executes fn on the loop goroutine and waits for it to return.
// It must not be called from a task already running on the same Loop.
func (l *Loop) Run(fn func()) error {
	l.mu.RLock()
	if l.closed {
		l.mu.RUnlock()
		return ErrExecutorClosed
	}

	finished := make(chan struct{})
	l.tasks <- func() {
		defer close(finished)
		fn()
	}
	l.mu.RUnlock()

	<-finished
	return nil
}

// Close stops accepting work and waits for the loop goroutine to exit.
// Close is idempotent.
func (l *Loop) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		<-l.done
		return
	}
	l.closed = true
	close(l.tasks)
	l.mu.Unlock()

	<-l.done
}
