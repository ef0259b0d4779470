package view

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewViewIdentity(t *testing.T) {
	v := NewView("star", 100, 50)
	assert.Equal(t, 1.0, v.ScaleX())
	assert.Equal(t, 1.0, v.ScaleY())
	assert.Equal(t, 1.0, v.Alpha())
	assert.Equal(t, 0.0, v.Rotation())
	assert.Nil(t, v.Parent())
}

func TestViewGeometry(t *testing.T) {
	v := NewView("star", 100, 50)
	v.Left, v.Top = 10, 20
	v.SetTranslationX(5)
	v.SetTranslationY(-5)
	v.SetScaleX(2)

	cx, cy := v.Center()
	assert.Equal(t, 65.0, cx)
	assert.Equal(t, 40.0, cy)

	x0, y0, x1, y1 := v.Bounds()
	assert.Equal(t, -35.0, x0)
	assert.Equal(t, 15.0, y0)
	assert.Equal(t, 165.0, x1)
	assert.Equal(t, 65.0, y1)
}

func TestAlphaIsClamped(t *testing.T) {
	v := NewView("star", 1, 1)
	Alpha(v).Set(1.5)
	assert.Equal(t, 1.0, v.Alpha())
	Alpha(v).Set(-0.2)
	assert.Equal(t, 0.0, v.Alpha())
}

func TestPropertiesAreBound(t *testing.T) {
	v := NewView("star", 1, 1)
	Rotation(v).Set(-360)
	TranslationX(v).Set(200)
	TranslationY(v).Set(30)
	ScaleX(v).Set(4)
	ScaleY(v).Set(3)

	assert.Equal(t, -360.0, Rotation(v).Get())
	assert.Equal(t, 200.0, TranslationX(v).Get())
	assert.Equal(t, 30.0, TranslationY(v).Get())
	assert.Equal(t, 4.0, ScaleX(v).Get())
	assert.Equal(t, 3.0, ScaleY(v).Get())
	assert.Equal(t, "rotation", Rotation(v).Name)
}

func TestContainerChildren(t *testing.T) {
	c := NewContainer("frame", 400, 300, colorful.Color{})
	a := NewView("a", 1, 1)
	b := NewView("b", 1, 1)

	c.AddView(a)
	c.AddView(b)
	require.Equal(t, 2, c.ChildCount())
	assert.Same(t, c, a.Parent())
	assert.Equal(t, []*View{a, b}, c.Children())

	assert.True(t, c.RemoveView(a))
	assert.False(t, c.RemoveView(a))
	assert.Nil(t, a.Parent())
	assert.Equal(t, 1, c.ChildCount())
}

func TestAddViewMovesBetweenContainers(t *testing.T) {
	c1 := NewContainer("one", 1, 1, colorful.Color{})
	c2 := NewContainer("two", 1, 1, colorful.Color{})
	v := NewView("v", 1, 1)

	c1.AddView(v)
	c2.AddView(v)
	assert.Equal(t, 0, c1.ChildCount())
	assert.Equal(t, 1, c2.ChildCount())
	assert.Same(t, c2, v.Parent())
}

func TestBackgroundColorProperty(t *testing.T) {
	c := NewContainer("frame", 1, 1, colorful.Color{})
	red := colorful.Color{R: 1}
	p := BackgroundColor(c)
	p.Set(red)
	assert.Equal(t, red, c.Background())
	assert.Equal(t, red, p.Get())
}

func TestButtonClick(t *testing.T) {
	b := NewButton("Rotate")
	clicks := 0
	b.SetOnClickListener(func() { clicks++ })

	assert.True(t, b.Click())
	b.SetEnabled(false)
	assert.False(t, b.IsEnabled())
	assert.False(t, b.Click())
	assert.Equal(t, 1, clicks)
}

func TestStarOutline(t *testing.T) {
	points := StarOutline(0, 0, 10, 4, 0)
	require.Len(t, points, 10)

	assert.InDelta(t, 0.0, points[0].X, 1e-9)
	assert.InDelta(t, -10.0, points[0].Y, 1e-9)
	for i, p := range points {
		r := math.Hypot(p.X, p.Y)
		if i%2 == 0 {
			assert.InDelta(t, 10.0, r, 1e-9)
		} else {
			assert.InDelta(t, 4.0, r, 1e-9)
		}
	}

	rotated := StarOutline(0, 0, 10, 4, 90)
	assert.InDelta(t, 10.0, rotated[0].X, 1e-9)
	assert.InDelta(t, 0.0, rotated[0].Y, 1e-9)
}

func TestStarShapeFollowsTransform(t *testing.T) {
	v := NewView("star", 20, 20)
	v.SetScaleX(2)
	v.SetScaleY(2)
	points := StarShape(v)
	assert.InDelta(t, 10.0, points[0].X, 1e-9)
	assert.InDelta(t, -10.0, points[0].Y, 1e-9)
}

func TestContains(t *testing.T) {
	star := StarOutline(0, 0, 10, 4, 0)

	assert.True(t, Contains(star, 0, 0))
	assert.True(t, Contains(star, 0, -8))
	assert.False(t, Contains(star, 20, 0))
	assert.False(t, Contains(star, 0, -11))

	// Between two points, outside the inner radius.
	notch := math.Pi*-90/180 + math.Pi/5
	assert.False(t, Contains(star, 8*math.Cos(notch), 8*math.Sin(notch)))
}
