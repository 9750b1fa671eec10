package session

import "github.com/saltydk/fplot/expression"

// ExpressionSet is the ordered list of expression rows being edited.
// Blank rows are kept; the renderer skips them.
type ExpressionSet struct {
	rows []string
}

func NewExpressionSet(rows ...string) *ExpressionSet {
	s := &ExpressionSet{}
	s.Replace(rows)
	return s
}

func (s *ExpressionSet) Len() int {
	return len(s.rows)
}

// Append adds a row at the end.
func (s *ExpressionSet) Append(text string) {
	s.rows = append(s.rows, text)
}

// Get returns the row at index and whether it exists.
func (s *ExpressionSet) Get(index int) (string, bool) {
	if !s.valid(index) {
		return "", false
	}
	return s.rows[index], true
}

// Set overwrites the row at index. Out of range indexes are ignored.
func (s *ExpressionSet) Set(index int, text string) bool {
	if !s.valid(index) {
		return false
	}
	s.rows[index] = text
	return true
}

// NeedsConfirm reports whether removing the row at index must first be
// confirmed by the user, i.e. whether its trimmed text is non-empty.
func (s *ExpressionSet) NeedsConfirm(index int) bool {
	text, ok := s.Get(index)
	return ok && !expression.IsBlank(text)
}

// RemoveAt removes the row at index. It is a no-op returning false when the
// set is empty or the index is out of range.
//
// Callers must obtain user confirmation first when NeedsConfirm(index).
func (s *ExpressionSet) RemoveAt(index int) bool {
	if !s.valid(index) {
		return false
	}
	s.rows = append(s.rows[:index], s.rows[index+1:]...)
	return true
}

// RemoveLast removes the final row under the same contract as RemoveAt.
func (s *ExpressionSet) RemoveLast() bool {
	return s.RemoveAt(len(s.rows) - 1)
}

// Replace swaps the whole content for a copy of rows.
func (s *ExpressionSet) Replace(rows []string) {
	s.rows = append(make([]string, 0, len(rows)), rows...)
}

// List returns a snapshot copy of the rows.
func (s *ExpressionSet) List() []string {
	return append(make([]string, 0, len(s.rows)), s.rows...)
}

func (s *ExpressionSet) valid(index int) bool {
	return index >= 0 && index < len(s.rows)
}
