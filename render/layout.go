package render

const (
	buttonColumns = 3
	buttonHeight  = 48
	buttonMargin  = 8
)

// barHeight is the height of the button area below the star's frame.
func barHeight(buttons int) int {
	rows := (buttons + buttonColumns - 1) / buttonColumns
	return rows*buttonHeight + (rows+1)*buttonMargin
}

// buttonRect returns the rectangle of button i in a window of the given size.
func buttonRect(i, buttons, width, height int) (x, y, w, h int) {
	top := height - barHeight(buttons)
	w = (width - (buttonColumns+1)*buttonMargin) / buttonColumns
	h = buttonHeight
	x = buttonMargin + (i%buttonColumns)*(w+buttonMargin)
	y = top + buttonMargin + (i/buttonColumns)*(h+buttonMargin)
	return x, y, w, h
}

// buttonAt returns the index of the button under (px, py), or -1.
func buttonAt(px, py, buttons, width, height int) int {
	for i := 0; i < buttons; i++ {
		x, y, w, h := buttonRect(i, buttons, width, height)
		if px >= x && px < x+w && py >= y && py < y+h {
			return i
		}
	}
	return -1
}
