package animate

import (
	"time"
)

// An AnimatorSet plays a group of animators together and ends when the last of
// them ends.
type AnimatorSet struct {
	children    []Animator
	duration    time.Duration
	hasDuration bool
	listeners   listeners

	running   bool
	remaining int
}

// NewAnimatorSet creates an instance of an AnimatorSet.
func NewAnimatorSet() *AnimatorSet {
	s := new(AnimatorSet)
	return s
}

// PlayTogether adds animators that start at the same moment.
func (s *AnimatorSet) PlayTogether(children ...Animator) {
	for _, c := range children {
		c.AddListener(Listener{OnEnd: s.childEnded})
		s.children = append(s.children, c)
	}
}

// Children returns the animators in the set.
func (s *AnimatorSet) Children() []Animator {
	return s.children
}

// Duration is the shared duration, or the longest child duration when none was set.
func (s *AnimatorSet) Duration() time.Duration {
	if s.hasDuration {
		return s.duration
	}

	var longest time.Duration
	for _, c := range s.children {
		if c.Duration() > longest {
			longest = c.Duration()
		}
	}
	return longest
}

// SetDuration overrides the duration of every child when the set starts.
func (s *AnimatorSet) SetDuration(d time.Duration) {
	s.duration = d
	s.hasDuration = true
}

// AddListener registers lifecycle hooks for the set as a whole.
func (s *AnimatorSet) AddListener(l Listener) {
	s.listeners = append(s.listeners, l)
}

// IsRunning reports whether any child of a started set is still running. A set
// whose children were dropped by Engine.Clear is not running and can be
// started again.
func (s *AnimatorSet) IsRunning() bool {
	if !s.running {
		return false
	}
	for _, c := range s.children {
		if c.IsRunning() {
			return true
		}
	}
	return false
}

// Start starts every child.
func (s *AnimatorSet) Start() {
	if s.IsRunning() {
		return
	}

	s.running = true
	s.remaining = len(s.children)
	s.listeners.start(s)

	if len(s.children) == 0 {
		s.running = false
		s.listeners.end(s)
		return
	}

	for _, c := range s.children {
		if s.hasDuration {
			c.SetDuration(s.duration)
		}
		c.Start()
	}
}

// Cancel cancels every child that is still running.
func (s *AnimatorSet) Cancel() {
	if !s.IsRunning() {
		return
	}

	s.running = false
	for _, c := range s.children {
		c.Cancel()
	}
	s.listeners.cancel(s)
	s.listeners.end(s)
}

// End moves every child to its final values.
func (s *AnimatorSet) End() {
	if !s.IsRunning() {
		return
	}

	s.running = false
	for _, c := range s.children {
		c.End()
	}
	s.listeners.end(s)
}

func (s *AnimatorSet) childEnded(Animator) {
	if !s.running {
		return
	}

	s.remaining--
	if s.remaining <= 0 {
		s.running = false
		s.listeners.end(s)
	}
}
