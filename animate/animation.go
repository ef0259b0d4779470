package animate

import (
	"time"
)

// DefaultDuration applies to animators that are never given a duration.
const DefaultDuration = 300 * time.Millisecond

// Infinite is the repeat count of an animator that never ends by itself.
const Infinite = -1

// RepeatMode decides what an animator does when it starts a new iteration.
type RepeatMode int

const (
	// Restart plays every iteration from the start values.
	Restart RepeatMode = iota
	// Reverse plays every other iteration backwards.
	Reverse
)

// An Animator changes properties over time once started.
type Animator interface {
	Start()
	Cancel()
	End()
	IsRunning() bool
	Duration() time.Duration
	SetDuration(d time.Duration)
	AddListener(l Listener)
}

// Listener receives lifecycle events from an Animator. Any hook may be nil.
type Listener struct {
	OnStart  func(a Animator)
	OnEnd    func(a Animator)
	OnCancel func(a Animator)
	OnRepeat func(a Animator)
}

type listeners []Listener

func (ls listeners) start(a Animator) {
	for _, l := range ls {
		if l.OnStart != nil {
			l.OnStart(a)
		}
	}
}

func (ls listeners) end(a Animator) {
	for _, l := range ls {
		if l.OnEnd != nil {
			l.OnEnd(a)
		}
	}
}

func (ls listeners) cancel(a Animator) {
	for _, l := range ls {
		if l.OnCancel != nil {
			l.OnCancel(a)
		}
	}
}

func (ls listeners) repeat(a Animator) {
	for _, l := range ls {
		if l.OnRepeat != nil {
			l.OnRepeat(a)
		}
	}
}
