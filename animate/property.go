package animate

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Property gives an animator access to a single attribute of some target.
type Property[T any] struct {
	Name string
	Get  func() T
	Set  func(T)
}

// PropertyValues holds the values one property moves through during an animation.
type PropertyValues interface {
	PropertyName() string
	setupStartValues()
	animateValue(fraction float64)
}

// Values is the PropertyValues implementation for a property of type T.
type Values[T any] struct {
	property  Property[T]
	values    []T
	evaluator Evaluator[T]
	keyframes []T
}

// NewValues creates an instance of a Values object. A single value means the
// property animates from whatever it holds when the animator starts; two or more
// values are spread evenly over the animation as keyframes.
func NewValues[T any](property Property[T], evaluator Evaluator[T], values ...T) *Values[T] {
	v := new(Values[T])
	v.property = property
	v.evaluator = evaluator
	v.values = append([]T(nil), values...)
	return v
}

// FloatValues creates Values for a numeric property.
func FloatValues(property Property[float64], values ...float64) *Values[float64] {
	return NewValues(property, FloatEvaluator, values...)
}

// ColorValues creates Values for a colour property.
func ColorValues(property Property[colorful.Color], values ...colorful.Color) *Values[colorful.Color] {
	return NewValues(property, ArgbEvaluator, values...)
}

// SetEvaluator replaces the evaluator used between keyframes.
func (v *Values[T]) SetEvaluator(evaluator Evaluator[T]) {
	v.evaluator = evaluator
}

// PropertyName returns the name of the animated property.
func (v *Values[T]) PropertyName() string {
	return v.property.Name
}

func (v *Values[T]) setupStartValues() {
	if len(v.values) == 1 {
		v.keyframes = []T{v.property.Get(), v.values[0]}
	} else {
		v.keyframes = v.values
	}
}

func (v *Values[T]) animateValue(fraction float64) {
	n := len(v.keyframes)
	switch n {
	case 0:
		return
	case 1:
		v.property.Set(v.keyframes[0])
		return
	}

	pos := fraction * float64(n-1)
	i := int(math.Floor(pos))
	if i < 0 {
		i = 0
	} else if i > n-2 {
		i = n - 2
	}

	v.property.Set(v.evaluator(pos-float64(i), v.keyframes[i], v.keyframes[i+1]))
}
