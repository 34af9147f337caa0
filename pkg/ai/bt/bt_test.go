package bt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type board struct {
	calls []string
}

func record(name string, status Status) *Action[*board] {
	return Do(func(bb *board) Status {
		bb.calls = append(bb.calls, name)
		return status
	})
}

func TestSelectorStopsAtFirstNonFailure(t *testing.T) {
	bb := &board{}
	tree := Select[*board](
		record("a", StatusFailure),
		record("b", StatusRunning),
		record("c", StatusSuccess),
	)
	assert.Equal(t, StatusRunning, tree.Tick(bb))
	assert.Equal(t, []string{"a", "b"}, bb.calls)
}

func TestSequenceStopsAtFirstNonSuccess(t *testing.T) {
	bb := &board{}
	tree := Seq[*board](
		record("a", StatusSuccess),
		If(func(*board) bool { return false }),
		record("c", StatusSuccess),
	)
	assert.Equal(t, StatusFailure, tree.Tick(bb))
	assert.Equal(t, []string{"a"}, bb.calls)
}

func TestEmptyNodes(t *testing.T) {
	bb := &board{}
	assert.Equal(t, StatusFailure, (&Condition[*board]{}).Tick(bb))
	assert.Equal(t, StatusFailure, (&Action[*board]{}).Tick(bb))
	assert.Equal(t, StatusSuccess, Seq[*board]().Tick(bb))
	assert.Equal(t, StatusFailure, Select[*board]().Tick(bb))
	assert.Equal(t, "running", StatusRunning.String())
}
