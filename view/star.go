package view

import (
	"math"
)

// Point is a position in container coordinates.
type Point struct {
	X float64
	Y float64
}

// StarOutline returns the ten corners of a five pointed star centred on (cx, cy),
// alternating between outer and inner radius, starting from the top point and
// rotated clockwise by rotation degrees.
func StarOutline(cx, cy, outer, inner, rotation float64) []Point {
	points := make([]Point, 10)
	base := (rotation - 90) * math.Pi / 180
	for i := range points {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		theta := base + float64(i)*math.Pi/5
		points[i] = Point{X: cx + r*math.Cos(theta), Y: cy + r*math.Sin(theta)}
	}
	return points
}

// StarShape outlines v the way it is currently transformed. The inner radius is
// the classic 0.382 ratio of a regular star.
func StarShape(v *View) []Point {
	cx, cy := v.Center()
	outer := math.Min(v.Width*math.Abs(v.scaleX), v.Height*math.Abs(v.scaleY)) / 2
	return StarOutline(cx, cy, outer, outer*0.382, v.rotation)
}

// Contains reports whether (x, y) lies inside the polygon, using the even-odd rule.
func Contains(polygon []Point, x, y float64) bool {
	inside := false
	for i, j := 0, len(polygon)-1; i < len(polygon); j, i = i, i+1 {
		pi, pj := polygon[i], polygon[j]
		if (pi.Y > y) != (pj.Y > y) && x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}
