package util

import (
	"math/rand"
)

// RandomRange draws uniformly from [min, max) using r, or the global source
// when r is nil.
func RandomRange(r *rand.Rand, min float64, max float64) float64 {
	var f float64
	if r == nil {
		f = rand.Float64()
	} else {
		f = r.Float64()
	}
	return f*(max-min) + min
}
