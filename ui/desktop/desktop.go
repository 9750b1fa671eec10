// Package desktop is the fyne window front-end.
package desktop

import (
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	driver "fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/saltydk/fplot/controller"
	"github.com/saltydk/fplot/figure"
	"github.com/saltydk/fplot/render"
	"github.com/saltydk/fplot/session"
	"github.com/saltydk/fplot/ui"
)

type Desktop struct {
	app    fyne.App
	window fyne.Window
	ctrl   *controller.Controller
	opts   figure.Options

	rows    *fyne.Container
	entries []*rowEntry
	plot    *fyne.Container

	active    int
	hasActive bool

	shortcuts map[string]controller.Action
}

// New creates the window. Bind must be called before it is shown.
func New(a fyne.App, opts figure.Options) *Desktop {
	w := a.NewWindow("fplot")
	w.Resize(fyne.NewSize(float32(opts.Width), float32(opts.Height)+240))

	return &Desktop{
		app:    a,
		window: w,
		opts:   opts,
		rows:   container.NewVBox(),
		plot:   container.NewStack(),
	}
}

// Bind wires the widgets to ctrl.
func (d *Desktop) Bind(ctrl *controller.Controller) {
	d.ctrl = ctrl

	button := func(label string, a controller.Action) *widget.Button {
		return widget.NewButton(label, func() { ctrl.Dispatch(a) })
	}

	controls := container.NewVBox(
		container.NewVScroll(d.rows),
		button("Add function", controller.AddRow),
		button("Remove active row", controller.RemoveActive),
		button("Remove last row", controller.RemoveLast),
		button("Plot", controller.Render),
	)

	d.window.SetContent(container.NewBorder(controls, nil, nil, nil, d.plot))
	d.window.SetMainMenu(fyne.NewMainMenu(fyne.NewMenu("File",
		fyne.NewMenuItem("Save as…", func() { ctrl.Dispatch(controller.SaveAs) }),
		fyne.NewMenuItem("Load session…", func() { ctrl.Dispatch(controller.LoadSession) }),
	)))

	// Ctrl+A reaches the window as select-all, so add row is bound to that too.
	bindings := []struct {
		shortcut fyne.Shortcut
		action   controller.Action
	}{
		{&fyne.ShortcutSelectAll{}, controller.AddRow},
		{hotkey(fyne.KeyA), controller.AddRow},
		{hotkey(fyne.KeyD), controller.RemoveActive},
		{hotkey(fyne.KeyN), controller.RemoveLast},
		{hotkey(fyne.KeyS), controller.SaveAs},
		{hotkey(fyne.KeyO), controller.LoadSession},
	}
	d.shortcuts = make(map[string]controller.Action, len(bindings))
	for _, b := range bindings {
		a := b.action
		d.shortcuts[b.shortcut.ShortcutName()] = a
		d.window.Canvas().AddShortcut(b.shortcut, func(fyne.Shortcut) { ctrl.Dispatch(a) })
	}

	d.Rows(ctrl.Rows())
}

func hotkey(key fyne.KeyName) fyne.Shortcut {
	return &driver.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierShortcutDefault}
}

// dispatchShortcut runs the action bound to s. Focused rows call it since
// the window never sees shortcuts typed into a focused widget.
func (d *Desktop) dispatchShortcut(s fyne.Shortcut) bool {
	a, ok := d.shortcuts[s.ShortcutName()]
	if !ok {
		return false
	}
	d.ctrl.Dispatch(a)
	return true
}

func (d *Desktop) ShowAndRun() {
	d.window.ShowAndRun()
}

func (d *Desktop) Type() string {
	return "desktop"
}

func (d *Desktop) ActiveRow() (int, bool) {
	return d.active, d.hasActive
}

func (d *Desktop) Rows(rows []string) {
	grew := len(rows) > len(d.entries)

	d.entries = d.entries[:0]
	d.rows.RemoveAll()
	d.hasActive = false

	for i, text := range rows {
		e := newRowEntry(d, i)
		e.SetText(text)
		e.OnChanged = func(s string) { d.ctrl.Edit(i, s) }
		e.OnSubmitted = func(string) { d.ctrl.Dispatch(controller.Render) }

		d.entries = append(d.entries, e)
		d.rows.Add(e)
	}
	d.rows.Refresh()

	if grew && len(d.entries) > 0 {
		d.window.Canvas().Focus(d.entries[len(d.entries)-1])
	}
}

func (d *Desktop) Confirm(title, message string, fn func(bool)) {
	dialog.ShowConfirm(title, message, fn, d.window)
}

func (d *Desktop) Inform(title, message string) {
	dialog.ShowInformation(title, message, d.window)
}

func (d *Desktop) ShowError(title string, err error) {
	dialog.ShowError(err, d.window)
}

type figureImage struct {
	plot  *fyne.Container
	image *canvas.Image
}

func (f *figureImage) Destroy() {
	f.plot.Remove(f.image)
	f.plot.Refresh()
}

func (d *Desktop) ShowFigure(res *render.Result) (ui.FigureHandle, error) {
	img, err := figure.Image(res, d.opts)
	if err != nil {
		return nil, err
	}

	c := canvas.NewImageFromImage(img)
	c.FillMode = canvas.ImageFillContain
	c.SetMinSize(fyne.NewSize(float32(d.opts.Width)/2, float32(d.opts.Height)/2))

	d.plot.Add(c)
	return &figureImage{plot: d.plot, image: c}, nil
}

func (d *Desktop) ChooseSaveTarget(fn func(io.WriteCloser, error)) {
	fd := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			fn(nil, err)
			return
		}
		fn(wc, nil)
	}, d.window)
	fd.SetFileName("session" + session.Extension)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{session.Extension}))
	fd.Show()
}

func (d *Desktop) ChooseOpenSource(fn func(io.ReadCloser, error)) {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			fn(nil, err)
			return
		}
		fn(rc, nil)
	}, d.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{session.Extension}))
	fd.Show()
}
