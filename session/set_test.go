package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpressionSetAppendAndList(t *testing.T) {
	s := NewExpressionSet()
	assert.Equal(t, 0, s.Len())

	s.Append("x")
	s.Append("")
	s.Append("  ")
	s.Append("sin(x)")

	assert.Equal(t, []string{"x", "", "  ", "sin(x)"}, s.List())
}

func TestExpressionSetListIsSnapshot(t *testing.T) {
	s := NewExpressionSet("x", "2*x")

	list := s.List()
	list[0] = "changed"

	assert.Equal(t, []string{"x", "2*x"}, s.List())
}

func TestExpressionSetReplaceCopies(t *testing.T) {
	rows := []string{"a", "b"}
	s := NewExpressionSet()
	s.Replace(rows)
	rows[0] = "z"

	assert.Equal(t, []string{"a", "b"}, s.List())
}

func TestExpressionSetRemoveAt(t *testing.T) {
	s := NewExpressionSet("x", "y", "z")

	assert.False(t, s.RemoveAt(-1))
	assert.False(t, s.RemoveAt(3))
	assert.Equal(t, 3, s.Len())

	assert.True(t, s.RemoveAt(1))
	assert.Equal(t, []string{"x", "z"}, s.List())
}

func TestExpressionSetRemoveLast(t *testing.T) {
	s := NewExpressionSet()
	assert.False(t, s.RemoveLast())

	s.Append("x")
	s.Append("x*x")
	assert.True(t, s.RemoveLast())
	assert.Equal(t, []string{"x"}, s.List())
}

func TestExpressionSetGetSet(t *testing.T) {
	s := NewExpressionSet("x")

	assert.True(t, s.Set(0, "cos(x)"))
	assert.False(t, s.Set(1, "nope"))

	v, ok := s.Get(0)
	assert.True(t, ok)
	assert.Equal(t, "cos(x)", v)

	_, ok = s.Get(4)
	assert.False(t, ok)
}

func TestExpressionSetNeedsConfirm(t *testing.T) {
	s := NewExpressionSet("x", "", " \t ")

	assert.True(t, s.NeedsConfirm(0))
	assert.False(t, s.NeedsConfirm(1))
	assert.False(t, s.NeedsConfirm(2))
	assert.False(t, s.NeedsConfirm(7))
}
