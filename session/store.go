package session

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/saltydk/fplot/logger"
)

// Key is the only recognised field of a session document.
const Key = "list_of_function"

// Extension is the conventional session file extension.
const Extension = ".json"

const fileMode = 0o644

var log = logger.GetLogger("session")

type document struct {
	Functions []string `json:"list_of_function"`
}

// Save encodes expressions as {"list_of_function": [...]}.
// A nil or empty slice is written as an empty array.
func Save(expressions []string) ([]byte, error) {
	doc := document{Functions: append(make([]string, 0, len(expressions)), expressions...)}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "marshal session")
	}

	return data, nil
}

// Load decodes a session document. Entries are not checked as expressions.
func Load(data []byte) ([]string, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, &FormatError{Reason: "not a JSON object", Err: err}
	}

	raw, ok := fields[Key]
	if !ok {
		return nil, &FormatError{Reason: "missing " + Key}
	}

	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, &FormatError{Reason: Key + " is null"}
	}

	var functions []string
	if err := json.Unmarshal(raw, &functions); err != nil {
		return nil, &FormatError{Reason: Key + " is not an array of strings", Err: err}
	}

	return functions, nil
}

// Write saves expressions to w.
func Write(w io.Writer, expressions []string) (int, error) {
	data, err := Save(expressions)
	if err != nil {
		return 0, err
	}

	n, err := w.Write(data)
	if err != nil {
		return n, errors.Wrap(err, "write session")
	}

	return n, nil
}

// Read loads expressions from r.
func Read(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read session")
	}

	return Load(data)
}

// SaveFile writes the session to path via a temporary file in the same
// directory, so a failed save leaves any existing file intact.
func SaveFile(path string, expressions []string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".fplot-*"+Extension)
	if err != nil {
		return errors.Wrapf(err, "create temp file for %q", path)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	n, err := Write(tmp, expressions)
	if err != nil {
		return err
	}

	// CreateTemp makes the file owner-only
	if err = tmp.Chmod(fileMode); err != nil {
		return errors.Wrapf(err, "chmod %q", tmp.Name())
	}

	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "close %q", tmp.Name())
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "rename to %q", path)
	}

	log.Debugf("Saved %d expressions to %s (%s)", len(expressions), path, humanize.Bytes(uint64(n)))
	return nil
}

// LoadFile reads the session at path. The file is closed on every path,
// including parse failures.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %q", path)
	}
	defer f.Close()

	functions, err := Read(f)
	if err != nil {
		return nil, err
	}

	log.Debugf("Loaded %d expressions from %s", len(functions), path)
	return functions, nil
}
