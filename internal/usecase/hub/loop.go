package hub

import (
	"context"
	"sync"
	"time"
)

const taskQueueBufSize = 16

// loop serialises every action of one session on a single goroutine.
type loop struct {
	tasks    chan func()
	done     chan struct{}
	stopOnce sync.Once
}

func newLoop() *loop {
	return &loop{
		tasks: make(chan func(), taskQueueBufSize),
		done:  make(chan struct{}),
	}
}

func (l *loop) Run(ctx context.Context) error {
	for {
		select {
		case task := <-l.tasks:
			task()
		case <-l.done:
			return nil
		case <-ctx.Done():
			l.Stop()
			return nil
		}
	}
}

// Submit queues task and reports false once the loop is stopped.
func (l *loop) Submit(task func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.tasks <- task:
		return true
	case <-l.done:
		return false
	}
}

func (l *loop) Schedule(delay time.Duration, task func()) func() {
	timer := time.AfterFunc(delay, func() {
		l.Submit(task)
	})
	return func() {
		timer.Stop()
	}
}

func (l *loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.done)
	})
}
