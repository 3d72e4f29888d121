// SPDX-License-Identifier: EPL-2.0

// Package spsc provides a lock-free single-producer/single-consumer queue
// over fixed, pre-allocated storage.
//
// Exactly one goroutine may push and exactly one goroutine may pop. Under
// that contract every operation is wait-free: no locks, no blocking, and no
// allocation after construction, which makes the queue safe to drain from a
// real-time audio callback.
package spsc

import "sync/atomic"

// MinCapacity is the smallest usable queue size. One slot is always kept
// empty to distinguish a full queue from an empty one, so a queue of
// capacity N holds at most N-1 items.
const MinCapacity = 2

// Queue is a fixed-capacity SPSC ring buffer.
//
// The write index is advanced only by the producer, the read index only by
// the consumer. Each side publishes its index with an atomic store after
// finishing its slot access, and observes the other side's index with an
// atomic load before touching a slot, so a reader never sees a half-written
// element.
type Queue[T any] struct {
	buf   []T
	write atomic.Uint64
	read  atomic.Uint64
}

// New creates a queue with the given capacity. Capacities below MinCapacity
// are raised to MinCapacity. The backing array is allocated once here and
// never resized.
func New[T any](capacity int) *Queue[T] {
	if capacity < MinCapacity {
		capacity = MinCapacity
	}
	return &Queue[T]{buf: make([]T, capacity)}
}

// Cap returns the queue capacity. The maximum number of items held at once
// is Cap()-1.
func (q *Queue[T]) Cap() int { return len(q.buf) }

// Len returns a snapshot of the number of queued items. The value may be
// stale by the time the caller acts on it; it is advisory only.
func (q *Queue[T]) Len() int {
	w := q.write.Load()
	r := q.read.Load()
	n := len(q.buf)
	if w >= r {
		return int(w - r)
	}
	return n - int(r-w)
}

// Empty reports whether the queue currently holds no items. Advisory only.
func (q *Queue[T]) Empty() bool {
	return q.read.Load() == q.write.Load()
}

// Full reports whether the next TryPush would fail. Advisory only.
func (q *Queue[T]) Full() bool {
	next := (q.write.Load() + 1) % uint64(len(q.buf))
	return next == q.read.Load()
}

// TryPush appends v and returns true, or returns false without modifying
// any state when the queue is full. Producer side only.
func (q *Queue[T]) TryPush(v T) bool {
	w := q.write.Load()
	next := (w + 1) % uint64(len(q.buf))
	if next == q.read.Load() {
		return false
	}
	q.buf[w] = v
	q.write.Store(next)
	return true
}

// TryPop removes and returns the oldest item. The second result is false
// when the queue is empty. Consumer side only.
//
// The vacated slot is zeroed before the read index advances so that pointer
// payloads do not pin their referents until the slot is overwritten.
func (q *Queue[T]) TryPop() (T, bool) {
	r := q.read.Load()
	if r == q.write.Load() {
		var zero T
		return zero, false
	}
	v := q.buf[r]
	var zero T
	q.buf[r] = zero
	q.read.Store((r + 1) % uint64(len(q.buf)))
	return v, true
}

// Drain pops items and passes each to fn until the queue is empty. Consumer
// side only. fn must itself be bounded and allocation-free when Drain runs
// on a real-time thread.
func (q *Queue[T]) Drain(fn func(T)) {
	for {
		v, ok := q.TryPop()
		if !ok {
			return
		}
		fn(v)
	}
}
