package animate

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// An ObjectAnimator drives one or more properties of a target from their start
// values to their end values.
type ObjectAnimator struct {
	engine       *Engine
	values       []PropertyValues
	duration     time.Duration
	interpolator Interpolator
	repeatCount  int
	repeatMode   RepeatMode
	listeners    listeners

	running   bool
	startTime time.Duration
	iteration int
}

// NewObjectAnimator creates an instance of an ObjectAnimator.
func NewObjectAnimator(engine *Engine, values ...PropertyValues) *ObjectAnimator {
	a := new(ObjectAnimator)
	a.engine = engine
	a.values = values
	a.duration = DefaultDuration
	a.interpolator = AccelerateDecelerate
	a.repeatCount = 0
	a.repeatMode = Restart
	return a
}

// OfFloat animates a single numeric property.
func OfFloat(engine *Engine, property Property[float64], values ...float64) *ObjectAnimator {
	return NewObjectAnimator(engine, FloatValues(property, values...))
}

// OfArgb animates a single colour property.
func OfArgb(engine *Engine, property Property[colorful.Color], values ...colorful.Color) *ObjectAnimator {
	return NewObjectAnimator(engine, ColorValues(property, values...))
}

// OfPropertyValues animates several properties in lockstep.
func OfPropertyValues(engine *Engine, values ...PropertyValues) *ObjectAnimator {
	return NewObjectAnimator(engine, values...)
}

// Duration is the length of a single iteration.
func (a *ObjectAnimator) Duration() time.Duration {
	return a.duration
}

// SetDuration sets the length of a single iteration.
func (a *ObjectAnimator) SetDuration(d time.Duration) {
	a.duration = d
}

// SetInterpolator sets the easing curve. A nil curve means linear.
func (a *ObjectAnimator) SetInterpolator(i Interpolator) {
	if i == nil {
		i = Linear
	}
	a.interpolator = i
}

// SetRepeatCount sets how many times the animation repeats after the first
// iteration. Use Infinite to repeat until cancelled.
func (a *ObjectAnimator) SetRepeatCount(n int) {
	a.repeatCount = n
}

// RepeatCount returns the number of repetitions after the first iteration.
func (a *ObjectAnimator) RepeatCount() int {
	return a.repeatCount
}

// SetRepeatMode sets what happens at the start of each repetition.
func (a *ObjectAnimator) SetRepeatMode(m RepeatMode) {
	a.repeatMode = m
}

// RepeatMode returns the current repeat mode.
func (a *ObjectAnimator) RepeatMode() RepeatMode {
	return a.repeatMode
}

// TotalDuration is the span from start to end, or a negative value when the
// animator repeats forever.
func (a *ObjectAnimator) TotalDuration() time.Duration {
	if a.repeatCount == Infinite {
		return -1
	}
	return a.duration * time.Duration(a.repeatCount+1)
}

// AddListener registers lifecycle hooks.
func (a *ObjectAnimator) AddListener(l Listener) {
	a.listeners = append(a.listeners, l)
}

// IsRunning reports whether the animator is between Start and its end.
func (a *ObjectAnimator) IsRunning() bool {
	return a.running
}

// Start captures the start values, applies the first frame and hands the
// animator to the engine. Starting a running animator does nothing.
func (a *ObjectAnimator) Start() {
	if a.running {
		return
	}

	for _, v := range a.values {
		v.setupStartValues()
	}

	a.running = true
	a.startTime = a.engine.Now()
	a.iteration = 0
	a.engine.add(a)

	a.listeners.start(a)
	a.animateValue(0)
}

// Cancel stops the animator where it is. Cancel hooks run before end hooks.
func (a *ObjectAnimator) Cancel() {
	if !a.running {
		return
	}

	a.stop()
	a.listeners.cancel(a)
	a.listeners.end(a)
}

// End jumps to the final values and finishes the animator.
func (a *ObjectAnimator) End() {
	if !a.running {
		return
	}

	a.animateValue(a.finalFraction())
	a.stop()
	a.listeners.end(a)
}

func (a *ObjectAnimator) stop() {
	a.running = false
	a.engine.remove(a)
}

func (a *ObjectAnimator) abandon() {
	a.running = false
}

// finalFraction is where the last iteration leaves the properties.
func (a *ObjectAnimator) finalFraction() float64 {
	if a.repeatCount == Infinite {
		return 1.0
	}
	return a.iterationFraction(a.repeatCount, 1.0)
}

func (a *ObjectAnimator) iterationFraction(iteration int, fraction float64) float64 {
	if a.repeatMode == Reverse && iteration%2 == 1 {
		return 1.0 - fraction
	}
	return fraction
}

func (a *ObjectAnimator) animateValue(fraction float64) {
	t := a.interpolator(fraction)
	for _, v := range a.values {
		v.animateValue(t)
	}
}

func (a *ObjectAnimator) doFrame(now time.Duration) {
	elapsed := now - a.startTime
	if a.duration <= 0 {
		a.finish()
		return
	}

	progress := float64(elapsed) / float64(a.duration)
	if a.repeatCount != Infinite && progress >= float64(a.repeatCount+1) {
		a.finish()
		return
	}

	iteration := int(progress)
	if iteration > a.iteration {
		a.iteration = iteration
		a.listeners.repeat(a)
	}

	a.animateValue(a.iterationFraction(iteration, progress-float64(iteration)))
}

func (a *ObjectAnimator) finish() {
	a.animateValue(a.finalFraction())
	a.stop()
	a.listeners.end(a)
}
