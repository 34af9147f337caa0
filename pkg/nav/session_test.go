package nav

import (
	"testing"

	"carrothunt/pkg/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	s := NewSession(corridor())
	assert.False(t, s.Active())
	_, ok := s.DirectionAt(core.Cell(2, 0))
	assert.False(t, ok)

	s.Activate(core.Cell(0, 0))
	require.True(t, s.Active())
	d, ok := s.DirectionAt(core.Cell(4, 0))
	require.True(t, ok)
	assert.Equal(t, core.NorthWest, d)

	count := 0
	s.ForEachResolvedCell(func(core.CellLocation, core.Direction) { count++ })
	assert.Equal(t, 2, count)

	s.Deactivate()
	assert.False(t, s.Active())
	assert.Nil(t, s.Field())
	_, ok = s.DirectionAt(core.Cell(4, 0))
	assert.False(t, ok)
	s.ForEachResolvedCell(func(core.CellLocation, core.Direction) {
		t.Fatal("停用后不应遍历")
	})
}

func TestSessionRebuildsOnEveryActivation(t *testing.T) {
	s := NewSession(corridor())

	s.SetActive(true, core.Cell(0, 0))
	d, _ := s.DirectionAt(core.Cell(2, 0))
	assert.Equal(t, core.NorthWest, d)

	// 换一个目标：之前折叠过的方向不会残留
	s.SetActive(true, core.Cell(4, 0))
	d, ok := s.DirectionAt(core.Cell(2, 0))
	require.True(t, ok)
	assert.Equal(t, core.SouthEast, d)
	d, ok = s.DirectionAt(core.Cell(0, 0))
	require.True(t, ok)
	assert.Equal(t, core.SouthEast, d)
}
