// Package mempool maintains the pool of transactions waiting to be sealed
// into the next block.
package mempool

import (
	"sync"
)

// Pool holds not yet sealed values in submission order. The pool never drops
// a value on its own, entries only leave through DrainAll.
type Pool[T any] struct {
	pending []T
	mu      sync.Mutex
}

// New constructs an empty pool.
func New[T any]() *Pool[T] {
	return &Pool[T]{}
}

// Submit appends a value to the end of the pool.
func (p *Pool[T]) Submit(v T) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.pending = append(p.pending, v)
}

// DrainAll removes and returns every pending value in submission order.
// The drain is atomic with respect to concurrent submits.
func (p *Pool[T]) DrainAll() []T {
	p.mu.Lock()
	defer p.mu.Unlock()

	drained := p.pending
	p.pending = nil

	return drained
}

// Copy returns a copy of the pending values in submission order without
// removing them.
func (p *Pool[T]) Copy() []T {
	p.mu.Lock()
	defer p.mu.Unlock()

	cpy := make([]T, len(p.pending))
	copy(cpy, p.pending)

	return cpy
}

// Count returns the current number of pending values.
func (p *Pool[T]) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.pending)
}
