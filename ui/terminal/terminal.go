// Package terminal is a line-oriented front-end. Figures are written to an
// image file instead of a window.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/saltydk/fplot/figure"
	"github.com/saltydk/fplot/logger"
	"github.com/saltydk/fplot/render"
	"github.com/saltydk/fplot/ui"
)

var log = logger.GetLogger("terminal")

type Terminal struct {
	in  *bufio.Reader
	out io.Writer

	figurePath string
	opts       figure.Options

	active    int
	hasActive bool

	shown *figureFile

	// nextPath answers the next save/open prompt without asking.
	nextPath string
}

func New(in io.Reader, out io.Writer, figurePath string, opts figure.Options) *Terminal {
	return &Terminal{
		in:         bufio.NewReader(in),
		out:        out,
		figurePath: figurePath,
		opts:       opts,
	}
}

func (t *Terminal) Type() string {
	return "terminal"
}

func (t *Terminal) ActiveRow() (int, bool) {
	return t.active, t.hasActive
}

// Select marks row index as active.
func (t *Terminal) Select(index int) {
	t.active, t.hasActive = index, true
}

// Rows is called by the controller whenever the rows change. The selection
// is dropped since its index may now point at a different row.
func (t *Terminal) Rows(rows []string) {
	t.hasActive = false
	t.list(rows)
}

func (t *Terminal) list(rows []string) {
	if len(rows) == 0 {
		t.printf("(no rows)\n")
		return
	}

	for i, row := range rows {
		marker := " "
		if t.hasActive && i == t.active {
			marker = ">"
		}
		t.printf("%s %2d: %s\n", marker, i+1, row)
	}
}

func (t *Terminal) Confirm(title, message string, fn func(bool)) {
	answer, err := t.prompt(fmt.Sprintf("%s: %s [y/N] ", title, message))
	if err != nil {
		fn(false)
		return
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		fn(true)
	default:
		fn(false)
	}
}

func (t *Terminal) Inform(title, message string) {
	t.printf("%s: %s\n", title, message)
}

func (t *Terminal) ShowError(title string, err error) {
	t.printf("%s: %v\n", title, err)
}

type figureFile struct {
	term *Terminal
	path string
}

// Destroy removes the file so a stale figure never outlives its rows. A
// handle whose file was already overwritten by a newer figure does nothing.
func (f *figureFile) Destroy() {
	if f.term.shown != f {
		return
	}
	f.term.shown = nil

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warnf("Failed removing %s", f.path)
	}
}

func (t *Terminal) ShowFigure(res *render.Result) (ui.FigureHandle, error) {
	if err := figure.WriteFile(t.figurePath, res, t.opts); err != nil {
		return nil, err
	}

	t.printf("Plotted %d series to %s\n", len(res.Series), t.figurePath)
	t.shown = &figureFile{term: t, path: t.figurePath}
	return t.shown, nil
}

func (t *Terminal) ChooseSaveTarget(fn func(io.WriteCloser, error)) {
	path, err := t.path("Save session to: ")
	if err != nil || path == "" {
		fn(nil, err)
		return
	}

	f, err := os.Create(path)
	if err != nil {
		fn(nil, errors.Wrapf(err, "create %q", path))
		return
	}

	fn(f, nil)
}

func (t *Terminal) ChooseOpenSource(fn func(io.ReadCloser, error)) {
	path, err := t.path("Load session from: ")
	if err != nil || path == "" {
		fn(nil, err)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		fn(nil, errors.Wrapf(err, "open %q", path))
		return
	}

	fn(f, nil)
}

func (t *Terminal) path(question string) (string, error) {
	if t.nextPath != "" {
		path := t.nextPath
		t.nextPath = ""
		return path, nil
	}

	return t.prompt(question)
}

func (t *Terminal) prompt(question string) (string, error) {
	t.printf("%s", question)
	return t.readLine()
}

// readLine returns the next input line without its line ending.
// io.EOF is only returned when nothing was read.
func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (t *Terminal) printf(format string, args ...interface{}) {
	fmt.Fprintf(t.out, format, args...)
}
