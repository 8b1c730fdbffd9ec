// Package listener keeps callback lists for the event sources the daemon
// listens to (store changes, downloads, permissions, idle state).
package listener

import (
	"context"
	"sort"
	"sync"
)

// Registry is a concurrency-safe list of callbacks receiving values of type T.
type Registry[T any] struct {
	mu   sync.Mutex
	next int
	fns  map[int]func(context.Context, T)
}

// Add registers fn and returns a func that removes it. Removing twice is a no-op.
func (r *Registry[T]) Add(fn func(context.Context, T)) func() {
	if fn == nil {
		return func() {}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.fns == nil {
		r.fns = make(map[int]func(context.Context, T))
	}
	id := r.next
	r.next++
	r.fns[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.fns, id)
			r.mu.Unlock()
		})
	}
}

// Notify calls every registered callback in registration order.
// Callbacks run outside the lock so they may add or remove listeners.
func (r *Registry[T]) Notify(ctx context.Context, v T) {
	r.mu.Lock()
	ids := make([]int, 0, len(r.fns))
	for id := range r.fns {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(context.Context, T), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, r.fns[id])
	}
	r.mu.Unlock()

	for _, fn := range fns {
		fn(ctx, v)
	}
}

// Len returns the number of registered callbacks.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.fns)
}
