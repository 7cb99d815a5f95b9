// Package gate implements a counting semaphore with blocking, context-aware
// acquisition, used to bound the number of concurrent holders of a shared
// resource (feed parses, article tokenizations, per-origin fetches).
package gate

import "context"

// Gate is a fixed-capacity counting semaphore built from a buffered channel
// of tokens, per the design notes: acquire blocks until a slot is free,
// release always succeeds. Acquisition order is not guaranteed to be FIFO.
type Gate struct {
	slots chan struct{}
}

// New constructs a Gate with the given capacity. A non-positive capacity is
// treated as 1.
func New(capacity int) *Gate {
	if capacity <= 0 {
		capacity = 1
	}
	g := &Gate{slots: make(chan struct{}, capacity)}
	for i := 0; i < capacity; i++ {
		g.slots <- struct{}{}
	}
	return g
}

// Acquire blocks until a slot is available or ctx is done. It returns a
// release function that must be invoked exactly once, on every exit path
// of the caller that successfully acquired the slot.
func (g *Gate) Acquire(ctx context.Context) (release func(), err error) {
	select {
	case <-g.slots:
		return func() { g.slots <- struct{}{} }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Capacity reports the gate's fixed capacity.
func (g *Gate) Capacity() int {
	return cap(g.slots)
}

// InUse reports how many slots are currently held. It is intended for
// tests and diagnostics only; the returned value can be stale the instant
// it is observed under concurrent use.
func (g *Gate) InUse() int {
	return cap(g.slots) - len(g.slots)
}
