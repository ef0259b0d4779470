package demo

// State is a snapshot of the screen that can be handed to other goroutines.
type State struct {
	Buttons      map[Action]bool `json:"buttons"`
	Rotation     float64         `json:"rotation"`
	TranslationX float64         `json:"translationX"`
	ScaleX       float64         `json:"scaleX"`
	ScaleY       float64         `json:"scaleY"`
	Alpha        float64         `json:"alpha"`
	Background   string          `json:"background"`
	ShowerCount  int             `json:"showerCount"`
	Animations   int             `json:"animations"`
}

// Snapshot captures the current state of the screen.
func (s *Screen) Snapshot() State {
	st := State{
		Buttons:      make(map[Action]bool, len(s.buttons)),
		Rotation:     s.Star.Rotation(),
		TranslationX: s.Star.TranslationX(),
		ScaleX:       s.Star.ScaleX(),
		ScaleY:       s.Star.ScaleY(),
		Alpha:        s.Star.Alpha(),
		Background:   s.Container.Background().Clamped().Hex(),
		ShowerCount:  s.ShowerCount(),
		Animations:   s.engine.Running(),
	}
	for a, b := range s.buttons {
		st.Buttons[a] = b.IsEnabled()
	}
	return st
}

// Equal compares two snapshots field by field.
func (st State) Equal(other State) bool {
	if len(st.Buttons) != len(other.Buttons) {
		return false
	}
	for a, enabled := range st.Buttons {
		if other.Buttons[a] != enabled {
			return false
		}
	}
	return st.Rotation == other.Rotation &&
		st.TranslationX == other.TranslationX &&
		st.ScaleX == other.ScaleX &&
		st.ScaleY == other.ScaleY &&
		st.Alpha == other.Alpha &&
		st.Background == other.Background &&
		st.ShowerCount == other.ShowerCount &&
		st.Animations == other.Animations
}
