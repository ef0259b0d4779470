package demo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAction is returned for names that are not in Actions.
var ErrUnknownAction = errors.New("unknown action")

// An Action is one of the six things the screen can animate.
type Action string

const (
	ActionRotate    Action = "rotate"
	ActionTranslate Action = "translate"
	ActionScale     Action = "scale"
	ActionFade      Action = "fade"
	ActionColorize  Action = "colorize"
	ActionShower    Action = "shower"
)

// Actions in button order.
var Actions = []Action{
	ActionRotate,
	ActionTranslate,
	ActionScale,
	ActionFade,
	ActionColorize,
	ActionShower,
}

// ParseAction accepts an action name in any case.
func ParseAction(name string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Actions {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// Label is the text shown on the action's button.
func (a Action) Label() string {
	if a == "" {
		return ""
	}
	return strings.ToUpper(string(a[:1])) + string(a[1:])
}
