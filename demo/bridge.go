package demo

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// ErrQueueFull is returned by Submit when the UI thread is not keeping up.
var ErrQueueFull = errors.New("action queue full")

const (
	pending int32 = iota
	taken
	abandoned
)

// A request is run by Drain or given up by Submit, never both.
type request struct {
	action Action
	reply  chan bool
	state  atomic.Int32
}

// Bridge hands actions from network goroutines to the thread that owns the
// Screen and shares the latest State back.
type Bridge struct {
	requests chan *request

	mu      sync.RWMutex
	state   State
	version uint64
}

// NewBridge creates an instance of a Bridge holding up to size pending actions.
func NewBridge(size int) *Bridge {
	b := new(Bridge)
	b.requests = make(chan *request, size)
	return b
}

// Submit queues a press of a and waits for the UI thread to run it. The result
// is false when the button was disabled.
func (b *Bridge) Submit(ctx context.Context, a Action) (bool, error) {
	req := &request{action: a, reply: make(chan bool, 1)}
	select {
	case b.requests <- req:
	default:
		return false, ErrQueueFull
	}

	select {
	case ok := <-req.reply:
		return ok, nil
	case <-ctx.Done():
		if req.state.CompareAndSwap(pending, abandoned) {
			return false, ctx.Err()
		}
		// Drain already took it, so the press happens and its result is owed.
		return <-req.reply, nil
	}
}

// Drain runs every queued action against s and returns how many ran. Requests
// whose Submit gave up are dropped without pressing anything.
func (b *Bridge) Drain(s *Screen) int {
	n := 0
	for {
		select {
		case req := <-b.requests:
			if !req.state.CompareAndSwap(pending, taken) {
				continue
			}
			req.reply <- s.Press(req.action)
			n++
		default:
			return n
		}
	}
}

// Publish replaces the shared state when it differs from the last one.
func (b *Bridge) Publish(st State) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.version > 0 && b.state.Equal(st) {
		return
	}
	b.state = st
	b.version++
}

// State returns the last published state and its version. Version 0 means
// nothing has been published yet.
func (b *Bridge) State() (State, uint64) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state, b.version
}
