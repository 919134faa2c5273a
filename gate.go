package isolated

import (
	"context"
	"sync/atomic"
)

// Gate is an exclusive admission primitive: at most one holder at a time.
// It is the isolation context each container guards its owned value with,
// and is context-aware: Enter unblocks if the context is cancelled while
// waiting.
//
// Admission order among concurrent waiters is unspecified. Waiters park;
// they never spin.
type Gate struct {
	ch   chan struct{}
	held atomic.Int64
}

// NewGate creates a gate with no current holder.
func NewGate() *Gate {
	return &Gate{ch: make(chan struct{}, 1)}
}

// Enter blocks until the gate is free or ctx is cancelled while waiting.
// Returns nil once the caller holds the gate, ctx.Err() on cancellation.
// A cancelled Enter is withdrawn cleanly: the caller never held the gate
// and must not call [Gate.Leave].
func (g *Gate) Enter(ctx context.Context) error {
	select {
	case g.ch <- struct{}{}:
		g.held.Add(1)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryEnter attempts to take the gate without blocking.
// Returns true if the caller now holds the gate.
func (g *Gate) TryEnter() bool {
	select {
	case g.ch <- struct{}{}:
		g.held.Add(1)
		return true
	default:
		return false
	}
}

// Leave releases the gate. Panics if called without a matching Enter.
func (g *Gate) Leave() {
	if g.held.Add(-1) < 0 {
		g.held.Add(1) // undo
		panic("isolated: Gate.Leave called without matching Enter")
	}
	<-g.ch
}

// enter is the uncancellable admission used by container operations, which
// never abandon a queued request once issued.
func (g *Gate) enter() {
	g.ch <- struct{}{}
	g.held.Add(1)
}
