package controller

import (
	"strings"

	"github.com/pkg/errors"
)

// Action is a user command the controller can perform.
type Action int

const (
	Render Action = iota
	AddRow
	RemoveActive
	RemoveLast
	SaveAs
	LoadSession
)

var actionNames = [...]string{
	Render:       "render",
	AddRow:       "add",
	RemoveActive: "remove-active",
	RemoveLast:   "remove-last",
	SaveAs:       "save-as",
	LoadSession:  "load-session",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

func Actions() []Action {
	return []Action{Render, AddRow, RemoveActive, RemoveLast, SaveAs, LoadSession}
}

func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, a := range Actions() {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, errors.Errorf("unknown action %q", name)
}
