package ui

import (
	"io"

	"github.com/saltydk/fplot/render"
)

// Interface is what a front-end provides to the controller.
type Interface interface {
	Type() string

	// ActiveRow is the row the user is working on, if any.
	ActiveRow() (int, bool)
	// Rows redraws the editable rows after the controller changed them.
	Rows(rows []string)

	Confirm(title, message string, fn func(bool))
	Inform(title, message string)
	ShowError(title string, err error)

	ShowFigure(res *render.Result) (FigureHandle, error)

	// ChooseSaveTarget and ChooseOpenSource call fn with a nil stream when
	// the user cancels.
	ChooseSaveTarget(fn func(io.WriteCloser, error))
	ChooseOpenSource(fn func(io.ReadCloser, error))
}

// FigureHandle is a displayed figure. Destroy removes it from the front-end.
type FigureHandle interface {
	Destroy()
}
