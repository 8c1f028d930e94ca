// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// funcRun is one pending continuation on the foreground queue, grounded
// on driver/desktop/window.go's runQueue chan funcRun dispatch idiom.
type funcRun struct {
	f    func()
	done chan struct{}
}

// foregroundExecutor is the single-threaded cooperative executor pinned
// to the main thread. Tasks posted to it are run, in FIFO order, only
// while Drain is called from the main loop; nothing here spawns a
// goroutine of its own.
type foregroundExecutor struct {
	queue chan funcRun
}

func newForegroundExecutor(capacity int) *foregroundExecutor {
	return &foregroundExecutor{queue: make(chan funcRun, capacity)}
}

// Post enqueues f to run on the main thread at the next Drain, without
// waiting for it to complete.
func (e *foregroundExecutor) Post(f func()) {
	e.queue <- funcRun{f: f}
}

// RunOnMain enqueues f and blocks the calling goroutine until it has run.
func (e *foregroundExecutor) RunOnMain(f func()) {
	done := make(chan struct{})
	e.queue <- funcRun{f: f, done: done}
	<-done
}

// Drain runs every continuation currently queued, without blocking for
// more to arrive; called once per main-loop turn.
func (e *foregroundExecutor) Drain() {
	for {
		select {
		case r := <-e.queue:
			r.f()
			if r.done != nil {
				close(r.done)
			}
		default:
			return
		}
	}
}

// Task wraps the result of a spawned computation. Cancel requests
// cooperative cancellation — Go has no destructors, so unlike the
// source language's drop-to-cancel, callers must call Cancel explicitly
// to detach a Task they no longer care about.
type Task[T any] struct {
	cancel context.CancelFunc
	done   chan struct{}
	result T
	err    error
}

// Cancel requests cancellation of the underlying context; already-running
// work checks ctx.Err() at its next suspension point.
func (t *Task[T]) Cancel() {
	if t.cancel != nil {
		t.cancel()
	}
}

// Wait blocks until the task completes (including via cancellation) and
// returns its result and error.
func (t *Task[T]) Wait() (T, error) {
	<-t.done
	return t.result, t.err
}

// Done returns a channel closed when the task completes, for use in a
// select alongside other suspension points (timers, other tasks).
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// backgroundExecutor is the work-stealing background pool. Each spawned
// task runs on its own goroutine — Go's scheduler already work-steals
// across OS threads, so the pool only needs to cap concurrency, which it
// does with a buffered
// semaphore channel sized to NumCPU, mirroring golang.org/x/sync/errgroup's
// SetLimit idiom for fan-out/fan-in.
type backgroundExecutor struct {
	sem chan struct{}
}

func newBackgroundExecutor(numCPU int) *backgroundExecutor {
	if numCPU <= 0 {
		numCPU = runtime.NumCPU()
	}
	return &backgroundExecutor{sem: make(chan struct{}, numCPU)}
}

// NumCPUs reports the number of concurrent background workers available.
func (b *backgroundExecutor) NumCPUs() int {
	return cap(b.sem)
}

// spawnBackground runs f on the background pool and returns a Task
// tracking its completion. f must check ctx.Err() at any suspension
// point it wants to honor cancellation at.
func spawnBackground[T any](b *backgroundExecutor, ctx context.Context, f func(context.Context) (T, error)) *Task[T] {
	ctx, cancel := context.WithCancel(ctx)
	task := &Task[T]{cancel: cancel, done: make(chan struct{})}
	go func() {
		b.sem <- struct{}{}
		defer func() { <-b.sem }()
		task.result, task.err = f(ctx)
		close(task.done)
	}()
	return task
}

// runParallel fans a slice of work functions out across the background
// pool and waits for all of them, the errgroup fan-out/fan-in shape the
// teacher's indirect golang.org/x/sync dependency exists to support.
func runParallel(ctx context.Context, limit int, fns []func(context.Context) error) error {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for _, fn := range fns {
		fn := fn
		g.Go(func() error { return fn(ctx) })
	}
	return g.Wait()
}
