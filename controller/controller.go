package controller

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/saltydk/fplot/expression"
	"github.com/saltydk/fplot/logger"
	"github.com/saltydk/fplot/render"
	"github.com/saltydk/fplot/session"
	"github.com/saltydk/fplot/ui"
)

const (
	titleBlank   = "Blank row"
	titleDelete  = "Confirm removal"
	titleRender  = "Cannot plot"
	titleSave    = "Save failed"
	titleLoad    = "Load failed"
	messageBlank = "Blank rows are skipped when plotting."
	messageDel   = "Remove the non-empty row %q?"
)

// Controller owns the expression set and runs every user action against it
// on behalf of a front-end.
type Controller struct {
	set      *session.ExpressionSet
	renderer *render.Renderer
	ui       ui.Interface
	figure   ui.FigureHandle
	log      *logrus.Entry
}

func New(set *session.ExpressionSet, renderer *render.Renderer, front ui.Interface) *Controller {
	return &Controller{
		set:      set,
		renderer: renderer,
		ui:       front,
		log:      logger.GetLogger(front.Type()),
	}
}

// Rows returns a snapshot of the current rows.
func (c *Controller) Rows() []string {
	return c.set.List()
}

// Dispatch runs the action bound to a.
func (c *Controller) Dispatch(a Action) {
	c.log.Tracef("Dispatching %s", a)

	switch a {
	case Render:
		c.Render()
	case AddRow:
		c.AddRow("")
	case RemoveActive:
		c.RemoveActive()
	case RemoveLast:
		c.RemoveLast()
	case SaveAs:
		c.SaveAs()
	case LoadSession:
		c.LoadSession()
	default:
		c.log.Warnf("Ignoring unknown action %d", int(a))
	}
}

// Render plots the current rows. The previous figure is destroyed only once
// the new one is up, so on any failure it stays.
func (c *Controller) Render() bool {
	res, err := c.renderer.Render(c.set.List())
	if err != nil {
		c.log.WithError(err).Warn("Render failed")
		c.ui.Inform(titleRender, err.Error())
		return false
	}

	if res.Blank > 0 {
		c.ui.Inform(titleBlank, messageBlank)
	}
	for _, skipped := range res.Skipped {
		c.ui.Inform(titleRender, skipped.Error())
	}

	handle, err := c.ui.ShowFigure(res)
	if err != nil {
		c.log.WithError(err).Error("Failed showing figure")
		c.ui.ShowError(titleRender, err)
		return false
	}

	c.clearFigure()
	c.figure = handle
	c.log.Debugf("Plotted %d series", len(res.Series))
	return true
}

// clearFigure destroys the figure on screen, if any.
func (c *Controller) clearFigure() {
	if c.figure != nil {
		c.figure.Destroy()
		c.figure = nil
	}
}

// AddRow appends a row. The figure is cleared since it no longer matches.
func (c *Controller) AddRow(text string) {
	c.set.Append(text)
	c.clearFigure()
	c.ui.Rows(c.set.List())
}

// Edit replaces the text of row index as typed in the front-end.
func (c *Controller) Edit(index int, text string) {
	if !c.set.Set(index, text) {
		c.log.Debugf("Ignoring edit of missing row %d", index)
	}
}

func (c *Controller) RemoveActive() {
	index, ok := c.ui.ActiveRow()
	if !ok {
		return
	}
	c.removeAt(index)
}

func (c *Controller) RemoveLast() {
	c.removeAt(c.set.Len() - 1)
}

// removeAt asks for confirmation before dropping a non-blank row.
func (c *Controller) removeAt(index int) {
	text, ok := c.set.Get(index)
	if !ok {
		return
	}

	remove := func() {
		if c.set.RemoveAt(index) {
			c.ui.Rows(c.set.List())
			c.Render()
		}
	}

	if !c.set.NeedsConfirm(index) {
		remove()
		return
	}

	c.ui.Confirm(titleDelete, fmt.Sprintf(messageDel, text), func(yes bool) {
		if !yes {
			c.log.Debugf("Kept row %d", index)
			return
		}
		// the set may have changed while the dialog was open
		if current, ok := c.set.Get(index); !ok || current != text {
			return
		}
		remove()
	})
}

func (c *Controller) SaveAs() {
	rows := c.set.List()

	c.ui.ChooseSaveTarget(func(w io.WriteCloser, err error) {
		if err != nil {
			c.ui.ShowError(titleSave, err)
			return
		}
		if w == nil {
			return
		}

		if err := save(w, rows); err != nil {
			c.log.WithError(err).Error("Failed saving session")
			c.ui.ShowError(titleSave, err)
			return
		}
		c.log.Infof("Saved %d rows", len(rows))
	})
}

func save(w io.WriteCloser, rows []string) (err error) {
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close session")
		}
	}()

	_, err = session.Write(w, rows)
	return err
}

// LoadSession replaces the rows with a session document. A malformed
// document leaves the rows untouched.
func (c *Controller) LoadSession() {
	c.ui.ChooseOpenSource(func(r io.ReadCloser, err error) {
		if err != nil {
			c.ui.ShowError(titleLoad, err)
			return
		}
		if r == nil {
			return
		}

		rows, err := load(r)
		if err != nil {
			c.log.WithError(err).Warn("Failed loading session")
			c.ui.ShowError(titleLoad, err)
			return
		}

		c.Replace(rows)
		c.log.Infof("Loaded %d rows", len(rows))
	})
}

func load(r io.ReadCloser) ([]string, error) {
	defer r.Close()
	return session.Read(r)
}

// Replace swaps in rows, refreshes the front-end and plots them.
func (c *Controller) Replace(rows []string) {
	c.set.Replace(rows)
	c.ui.Rows(c.set.List())

	if hasContent(rows) {
		c.Render()
	} else {
		c.clearFigure()
	}
}

func hasContent(rows []string) bool {
	for _, row := range rows {
		if !expression.IsBlank(row) {
			return true
		}
	}
	return false
}
