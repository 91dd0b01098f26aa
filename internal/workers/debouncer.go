// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"
)

// SaveFunc persists one debounced value.
type SaveFunc[T any] func(ctx context.Context, v T) error

type debouncer[T any] struct {
	ctx     context.Context
	delay   time.Duration
	save    SaveFunc[T]
	onError func(error)

	// saveMu serializes saves so an older value never lands after a newer one.
	saveMu sync.Mutex

	mu         sync.Mutex
	timer      *time.Timer
	value      T
	pending    bool
	generation uint64
	stopped    bool
	wg         sync.WaitGroup
}

// NewDebouncer returns a [Debouncer] saving through save after delay of
// quiet. Timer-driven saves run with ctx; their errors go to onError, which
// may be nil.
func NewDebouncer[T any](ctx context.Context, delay time.Duration, save SaveFunc[T], onError func(error)) Debouncer[T] {
	if onError == nil {
		onError = func(error) {}
	}

	return &debouncer[T]{
		ctx:     ctx,
		delay:   delay,
		save:    save,
		onError: onError,
	}
}

func (d *debouncer[T]) Schedule(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.value = v
	d.pending = true
	d.generation++

	if d.timer != nil {
		d.timer.Stop()
	}

	generation := d.generation
	d.timer = time.AfterFunc(d.delay, func() { d.fire(generation) })
}

// fire runs when the quiet window of generation has elapsed. A newer
// Schedule call makes it a no-op.
func (d *debouncer[T]) fire(generation uint64) {
	d.mu.Lock()
	if d.stopped || !d.pending || generation != d.generation {
		d.mu.Unlock()
		return
	}
	d.wg.Add(1)
	d.mu.Unlock()
	defer d.wg.Done()

	if err := d.saveLatest(d.ctx); err != nil {
		d.onError(err)
	}
}

func (d *debouncer[T]) Flush(ctx context.Context) error {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()

	return d.saveLatest(ctx)
}

// saveLatest takes the pending value, if any, and saves it.
func (d *debouncer[T]) saveLatest(ctx context.Context) error {
	d.saveMu.Lock()
	defer d.saveMu.Unlock()

	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return nil
	}
	v := d.value
	d.pending = false
	d.mu.Unlock()

	return d.save(ctx, v)
}

func (d *debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

func (d *debouncer[T]) Stop() {
	d.mu.Lock()
	d.stopped = true
	d.pending = false
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()

	d.wg.Wait()
}
