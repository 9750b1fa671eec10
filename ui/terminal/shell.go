package terminal

import (
	"io"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/pkg/errors"

	"github.com/saltydk/fplot/controller"
)

const help = `Commands:
  add [text]        append a row
  set N text        replace the text of row N
  select N          make row N active
  rm                remove the active row (also remove-active)
  rmlast            remove the last row (also remove-last)
  render            plot all rows (also plot)
  save [path]       save the session
  load [path]       load a session, replacing the rows
  list              show the rows
  help              show this help
  quit              leave the shell
`

var errQuit = errors.New("quit")

// aliases maps short shell commands to controller action names.
var aliases = map[string]string{
	"rm":     controller.RemoveActive.String(),
	"rmlast": controller.RemoveLast.String(),
	"plot":   controller.Render.String(),
}

// Run reads commands until quit or end of input.
func (t *Terminal) Run(ctrl *controller.Controller) error {
	t.printf("Type \"help\" for commands.\n")

	for {
		t.printf("fplot> ")

		line, err := t.readLine()
		if err == io.EOF {
			t.printf("\n")
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "read command")
		}

		if err := t.Exec(ctrl, line); err != nil {
			if err == errQuit {
				return nil
			}
			t.printf("error: %v\n", err)
		}
	}
}

// Exec runs a single shell command line.
func (t *Terminal) Exec(ctrl *controller.Controller, line string) error {
	args, err := shlex.Split(line)
	if err != nil {
		return errors.Wrap(err, "parse command")
	}
	if len(args) == 0 {
		return nil
	}

	cmd, args := strings.ToLower(args[0]), args[1:]
	log.Tracef("Command %s %q", cmd, args)

	switch cmd {
	case "add":
		ctrl.AddRow(strings.Join(args, " "))
	case "set":
		if len(args) < 1 {
			return errors.New("usage: set N text")
		}
		index, err := t.row(ctrl, args[0])
		if err != nil {
			return err
		}
		ctrl.Edit(index, strings.Join(args[1:], " "))
		t.list(ctrl.Rows())
	case "select":
		if len(args) != 1 {
			return errors.New("usage: select N")
		}
		index, err := t.row(ctrl, args[0])
		if err != nil {
			return err
		}
		t.Select(index)
		t.list(ctrl.Rows())
	case "save":
		t.nextPath = strings.Join(args, " ")
		ctrl.Dispatch(controller.SaveAs)
	case "load":
		t.nextPath = strings.Join(args, " ")
		ctrl.Dispatch(controller.LoadSession)
	case "list", "ls":
		t.list(ctrl.Rows())
	case "help", "?":
		t.printf("%s", help)
	case "quit", "exit":
		return errQuit
	default:
		name := cmd
		if alias, ok := aliases[cmd]; ok {
			name = alias
		}
		a, err := controller.ParseAction(name)
		if err != nil {
			return errors.Errorf("unknown command %q, try help", cmd)
		}
		ctrl.Dispatch(a)
	}

	return nil
}

// row converts a 1-based row number typed by the user to an index.
func (t *Terminal) row(ctrl *controller.Controller, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Errorf("invalid row number %q", arg)
	}
	if n < 1 || n > len(ctrl.Rows()) {
		return 0, errors.Errorf("no row %d", n)
	}
	return n - 1, nil
}
