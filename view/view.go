package view

import (
	"math"

	"github.com/matt-g-everett/propanim/animate"
)

// A View is a rectangular element with animatable transform and opacity. The
// pivot for rotation and scale is the centre of the view.
type View struct {
	ID     string
	Left   float64
	Top    float64
	Width  float64
	Height float64

	rotation     float64
	translationX float64
	translationY float64
	scaleX       float64
	scaleY       float64
	alpha        float64

	parent *Container
}

// NewView creates an instance of a View with an identity transform.
func NewView(id string, width, height float64) *View {
	v := new(View)
	v.ID = id
	v.Width = width
	v.Height = height
	v.scaleX = 1.0
	v.scaleY = 1.0
	v.alpha = 1.0
	return v
}

// Parent returns the container holding the view, if any.
func (v *View) Parent() *Container { return v.parent }

func (v *View) Rotation() float64 { return v.rotation }
func (v *View) SetRotation(deg float64) { v.rotation = deg }
func (v *View) TranslationX() float64 { return v.translationX }
func (v *View) SetTranslationX(x float64) { v.translationX = x }
func (v *View) TranslationY() float64 { return v.translationY }
func (v *View) SetTranslationY(y float64) { v.translationY = y }
func (v *View) ScaleX() float64 { return v.scaleX }
func (v *View) SetScaleX(s float64) { v.scaleX = s }
func (v *View) ScaleY() float64 { return v.scaleY }
func (v *View) SetScaleY(s float64) { v.scaleY = s }
func (v *View) Alpha() float64 { return v.alpha }

// SetAlpha sets the opacity, clamped to [0, 1].
func (v *View) SetAlpha(a float64) {
	v.alpha = math.Max(0, math.Min(1, a))
}

// Center is the pivot point in container coordinates after translation.
func (v *View) Center() (x, y float64) {
	return v.Left + v.translationX + v.Width/2, v.Top + v.translationY + v.Height/2
}

// Bounds is the axis-aligned box covered by the scaled view, ignoring rotation.
func (v *View) Bounds() (x0, y0, x1, y1 float64) {
	cx, cy := v.Center()
	hw := v.Width * math.Abs(v.scaleX) / 2
	hh := v.Height * math.Abs(v.scaleY) / 2
	return cx - hw, cy - hh, cx + hw, cy + hh
}

// Rotation is the rotation of v in degrees.
func Rotation(v *View) animate.Property[float64] {
	return animate.Property[float64]{Name: "rotation", Get: v.Rotation, Set: v.SetRotation}
}

// TranslationX is the horizontal offset of v from its layout position.
func TranslationX(v *View) animate.Property[float64] {
	return animate.Property[float64]{Name: "translationX", Get: v.TranslationX, Set: v.SetTranslationX}
}

// TranslationY is the vertical offset of v from its layout position.
func TranslationY(v *View) animate.Property[float64] {
	return animate.Property[float64]{Name: "translationY", Get: v.TranslationY, Set: v.SetTranslationY}
}

// ScaleX is the horizontal scale factor of v.
func ScaleX(v *View) animate.Property[float64] {
	return animate.Property[float64]{Name: "scaleX", Get: v.ScaleX, Set: v.SetScaleX}
}

// ScaleY is the vertical scale factor of v.
func ScaleY(v *View) animate.Property[float64] {
	return animate.Property[float64]{Name: "scaleY", Get: v.ScaleY, Set: v.SetScaleY}
}

// Alpha is the opacity of v.
func Alpha(v *View) animate.Property[float64] {
	return animate.Property[float64]{Name: "alpha", Get: v.Alpha, Set: v.SetAlpha}
}
