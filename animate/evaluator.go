package animate

import (
	"github.com/lucasb-eyer/go-colorful"
)

// An Evaluator computes the value between start and end for a given fraction.
type Evaluator[T any] func(fraction float64, start, end T) T

// FloatEvaluator interpolates numbers linearly.
func FloatEvaluator(fraction float64, start, end float64) float64 {
	return start + fraction*(end-start)
}

// ArgbEvaluator blends colours in linear RGB space so that the midpoint of a
// transition keeps its perceived brightness.
func ArgbEvaluator(fraction float64, start, end colorful.Color) colorful.Color {
	return start.BlendLinearRgb(end, fraction).Clamped()
}
