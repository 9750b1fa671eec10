package desktop

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// rowEntry is an expression row that reports focus so the desktop knows
// which row is active.
type rowEntry struct {
	widget.Entry
	index int
	desk  *Desktop
}

func newRowEntry(d *Desktop, index int) *rowEntry {
	e := &rowEntry{index: index, desk: d}
	e.ExtendBaseWidget(e)
	e.SetPlaceHolder("f(x), e.g. sin(x) * x")
	return e
}

func (e *rowEntry) FocusGained() {
	e.desk.active, e.desk.hasActive = e.index, true
	e.Entry.FocusGained()
}

func (e *rowEntry) TypedShortcut(s fyne.Shortcut) {
	if e.desk.dispatchShortcut(s) {
		return
	}
	e.Entry.TypedShortcut(s)
}
