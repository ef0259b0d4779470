package view

// A Button runs its click listener when clicked while enabled.
type Button struct {
	Label   string
	enabled bool
	onClick func()
}

// NewButton creates an instance of an enabled Button.
func NewButton(label string) *Button {
	b := new(Button)
	b.Label = label
	b.enabled = true
	return b
}

func (b *Button) SetOnClickListener(f func()) { b.onClick = f }
func (b *Button) SetEnabled(enabled bool) { b.enabled = enabled }
func (b *Button) IsEnabled() bool { return b.enabled }

// Click reports whether the click was delivered.
func (b *Button) Click() bool {
	if !b.enabled {
		return false
	}
	if b.onClick != nil {
		b.onClick()
	}
	return true
}
