/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package dispatch provides apis.Executor implementations used for
// deferred result delivery.
//
// Inline runs a task on the caller's goroutine, Spawn on a fresh goroutine.
// Queue is a serial executor owned by one "foreground" goroutine: tasks
// posted from anywhere are run, in posting order, by whoever calls Run.
package dispatch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"dirpx.dev/shapes/apis"
)

// Func adapts a plain function to apis.Executor.
type Func func(fn func())

// Execute calls f(fn).
func (f Func) Execute(fn func()) { f(fn) }

var (
	// Inline runs tasks immediately on the calling goroutine.
	Inline apis.Executor = Func(func(fn func()) { fn() })
	// Spawn runs every task on its own goroutine.
	Spawn apis.Executor = Func(func(fn func()) { go fn() })
)

// ErrRunning is returned by Run when another goroutine is already running
// the queue.
var ErrRunning = errors.New("shapes(dispatch): queue is already running")

// Queue is an unbounded FIFO of tasks drained by Run.
//
// Execute never blocks and never drops a task: once the queue is closed,
// tasks run inline on the posting goroutine instead.
type Queue struct {
	mu      sync.Mutex
	tasks   []func()
	closed  bool
	wake    chan struct{}
	running atomic.Bool
	logger  *zap.Logger
}

// QueueOption configures a Queue.
type QueueOption func(*Queue)

// WithQueueLogger sets the logger used for diagnostics. Nil is ignored.
func WithQueueLogger(l *zap.Logger) QueueOption {
	return func(q *Queue) {
		if l != nil {
			q.logger = l
		}
	}
}

// NewQueue returns an open, empty queue.
func NewQueue(opts ...QueueOption) *Queue {
	q := &Queue{
		wake:   make(chan struct{}, 1),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Ensure Queue implements apis.Executor.
var _ apis.Executor = (*Queue)(nil)

// Execute posts fn to the queue. Nil tasks are ignored.
func (q *Queue) Execute(fn func()) {
	if fn == nil {
		return
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		q.logger.Debug("dispatch queue closed, running task inline")
		fn()
		return
	}
	q.tasks = append(q.tasks, fn)
	q.mu.Unlock()

	q.signal()
}

// Run executes posted tasks on the calling goroutine until the queue is
// closed and drained (returning nil) or ctx is done (returning ctx.Err()).
// Tasks still pending when ctx ends stay queued for a later Run.
func (q *Queue) Run(ctx context.Context) error {
	if !q.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer q.running.Store(false)

	for {
		q.mu.Lock()
		tasks := q.tasks
		q.tasks = nil
		closed := q.closed
		q.mu.Unlock()

		for _, fn := range tasks {
			fn()
		}
		if len(tasks) > 0 {
			continue
		}
		if closed {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-q.wake:
		}
	}
}

// Close stops accepting tasks. Run returns once everything already posted
// has executed. Close is idempotent and may be called from a task.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.signal()
}

// Len returns the number of pending tasks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

func (q *Queue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}
