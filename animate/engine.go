package animate

import (
	"time"
)

type frameCallback interface {
	doFrame(now time.Duration)
	abandon()
}

// Engine schedules running animators against a frame clock. It is not safe for
// concurrent use; every call belongs on the thread that owns the views.
type Engine struct {
	now    time.Duration
	active map[frameCallback]struct{}
	order  []frameCallback
}

// NewEngine creates an instance of an Engine.
func NewEngine() *Engine {
	e := new(Engine)
	e.active = make(map[frameCallback]struct{})
	return e
}

// Now is the time of the most recent frame.
func (e *Engine) Now() time.Duration {
	return e.now
}

// Running is the number of animators currently scheduled.
func (e *Engine) Running() int {
	return len(e.active)
}

// Tick advances every running animator to now. Time never runs backwards.
func (e *Engine) Tick(now time.Duration) {
	if now > e.now {
		e.now = now
	}

	pending := e.order
	e.order = nil
	for _, a := range pending {
		if _, ok := e.active[a]; ok {
			a.doFrame(e.now)
		}
	}

	// Animators started from callbacks during this frame were appended to e.order.
	seen := make(map[frameCallback]struct{}, len(e.active))
	order := make([]frameCallback, 0, len(e.active))
	for _, list := range [][]frameCallback{pending, e.order} {
		for _, a := range list {
			if _, ok := e.active[a]; !ok {
				continue
			}
			if _, ok := seen[a]; ok {
				continue
			}
			seen[a] = struct{}{}
			order = append(order, a)
		}
	}
	e.order = order
}

// Advance moves the clock forward by d and runs a frame.
func (e *Engine) Advance(d time.Duration) {
	e.Tick(e.now + d)
}

// Clear drops every animator without running any callbacks. Cleared animators
// and the sets holding them can be started again.
func (e *Engine) Clear() {
	for a := range e.active {
		a.abandon()
	}
	e.active = make(map[frameCallback]struct{})
	e.order = nil
}

func (e *Engine) add(a frameCallback) {
	if _, ok := e.active[a]; ok {
		return
	}
	e.active[a] = struct{}{}
	e.order = append(e.order, a)
}

func (e *Engine) remove(a frameCallback) {
	delete(e.active, a)
}
