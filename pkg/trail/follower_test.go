package trail

import (
	"testing"

	"carrothunt/pkg/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowConsumesSeededTrail(t *testing.T) {
	// 弓箭手在 (12, 2)，兔子在西北方向两格外的 (8, 2)
	archer := core.NewActor(1, core.CharacterArcher, core.Cell(12, 2), core.NorthWest)
	tr := New(core.DefaultTrailCapacity)
	tr.Push(core.Cell(10, 2))
	tr.Push(core.Cell(8, 2))

	require.True(t, Follow(archer, tr, core.NorthEast))
	assert.Equal(t, core.Cell(10, 2), archer.Cell())
	assert.Equal(t, core.NorthWest, archer.Facing())

	require.True(t, Follow(archer, tr, core.NorthEast))
	assert.Equal(t, core.Cell(8, 2), archer.Cell())
	// 轨迹用完，使用缺省朝向
	assert.Equal(t, core.NorthEast, archer.Facing())

	assert.False(t, Follow(archer, tr, core.NorthEast))
	assert.Equal(t, core.Cell(8, 2), archer.Cell())
}

func TestFollowFacing(t *testing.T) {
	tests := []struct {
		name string
		next core.CellLocation
		want core.Direction
	}{
		{"east", core.Cell(6, 4), core.SouthEast},
		{"south", core.Cell(4, 6), core.SouthWest},
		{"west", core.Cell(2, 4), core.NorthWest},
		{"north", core.Cell(4, 2), core.NorthEast},
		{"same", core.Cell(4, 4), core.NorthEast},
		{"diagonal prefers x", core.Cell(6, 6), core.SouthEast},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agent := core.NewActor(1, core.CharacterArcher, core.Cell(0, 0), core.SouthWest)
			tr := New(3)
			tr.Push(core.Cell(4, 4))
			tr.Push(tt.next)

			require.True(t, Follow(agent, tr, core.NorthEast))
			assert.Equal(t, core.Cell(4, 4), agent.Cell())
			assert.Equal(t, tt.want, agent.Facing())
		})
	}
}
