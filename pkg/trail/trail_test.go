package trail

import (
	"testing"

	"carrothunt/pkg/core"

	"github.com/stretchr/testify/assert"
)

func TestTrailPushPop(t *testing.T) {
	tr := New(3)
	tr.PushXY(8, 2)
	tr.Push(core.Cell(10, 2))
	assert.Equal(t, 2, tr.Size())
	assert.Equal(t, 3, tr.Cap())
	assert.Equal(t, []core.CellLocation{core.Cell(8, 2), core.Cell(10, 2)}, tr.Cells())

	assert.Equal(t, core.Cell(8, 2), tr.Peek())
	assert.Equal(t, core.Cell(8, 2), tr.Pop())
	assert.Equal(t, core.Cell(10, 2), tr.Pop())
	assert.Equal(t, core.Cell(0, 0), tr.Pop())
	assert.Equal(t, core.Cell(0, 0), tr.Peek())

	tr.PushXY(1, 1)
	tr.Clear()
	assert.Zero(t, tr.Size())
}

func TestTrailSizeMismatchPanics(t *testing.T) {
	tr := New(3)
	tr.xs.Push(4)
	assert.Panics(t, func() { tr.Size() })
}
