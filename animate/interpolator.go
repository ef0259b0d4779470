package animate

import (
	"math"

	"github.com/fogleman/ease"
)

// An Interpolator maps the elapsed fraction of an animation to the fraction of
// the value change that should be applied.
type Interpolator func(t float64) float64

// Linear progresses at a constant rate.
var Linear Interpolator = ease.Linear

// AccelerateDecelerate starts and ends slowly. It is the default for animators.
var AccelerateDecelerate Interpolator = ease.InOutSine

// Accelerate starts slowly and speeds up. A factor of 1 is a quadratic curve,
// higher factors exaggerate the effect.
func Accelerate(factor float64) Interpolator {
	if factor == 1.0 {
		return ease.InQuad
	}

	return func(t float64) float64 {
		return math.Pow(t, 2*factor)
	}
}

// Decelerate is the mirror image of Accelerate.
func Decelerate(factor float64) Interpolator {
	if factor == 1.0 {
		return ease.OutQuad
	}

	return func(t float64) float64 {
		return 1.0 - math.Pow(1.0-t, 2*factor)
	}
}
