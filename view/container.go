package view

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/propanim/animate"
)

// A Container is a view that owns an ordered list of child views and paints a
// background colour behind them.
type Container struct {
	View
	background colorful.Color
	children   []*View
}

// NewContainer creates an instance of a Container.
func NewContainer(id string, width, height float64, background colorful.Color) *Container {
	c := new(Container)
	c.View = *NewView(id, width, height)
	c.background = background
	return c
}

// Background returns the current background colour.
func (c *Container) Background() colorful.Color { return c.background }

// SetBackground sets the background colour.
func (c *Container) SetBackground(col colorful.Color) { c.background = col }

// Resize changes the container size. Children keep their layout positions.
func (c *Container) Resize(width, height float64) {
	c.Width = width
	c.Height = height
}

// AddView appends v as the top-most child. A view already in another container
// is moved.
func (c *Container) AddView(v *View) {
	if v.parent != nil {
		v.parent.RemoveView(v)
	}
	v.parent = c
	c.children = append(c.children, v)
}

// RemoveView detaches v. It reports whether v was a child.
func (c *Container) RemoveView(v *View) bool {
	for i, child := range c.children {
		if child == v {
			c.children = append(c.children[:i], c.children[i+1:]...)
			v.parent = nil
			return true
		}
	}
	return false
}

// ChildCount is the number of children.
func (c *Container) ChildCount() int { return len(c.children) }

// Children returns the children from bottom to top. The slice must not be modified.
func (c *Container) Children() []*View { return c.children }

// BackgroundColor is the background colour of c.
func BackgroundColor(c *Container) animate.Property[colorful.Color] {
	return animate.Property[colorful.Color]{Name: "backgroundColor", Get: c.Background, Set: c.SetBackground}
}
