package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// anchor 只实现 Relocatable，不能退场
type anchor struct {
	cell   CellLocation
	facing Direction
}

func (a *anchor) Cell() CellLocation { return a.cell }

func (a *anchor) Facing() Direction { return a.facing }

func (a *anchor) Relocate(cell CellLocation, facing Direction) {
	a.cell = cell
	a.facing = facing
}

func TestEjectAdvancesColumn(t *testing.T) {
	ctrl := NewEjectionController(DefaultRespawnConfig)
	first := NewActor(1, CharacterArcher, Cell(8, 2), NorthEast)
	second := NewActor(2, CharacterArcher, Cell(10, 4), SouthEast)

	slot, facing := ctrl.Eject(first)
	assert.Equal(t, Cell(8, -1), slot)
	assert.Equal(t, SouthWest, facing)
	assert.Equal(t, Cell(8, -1), first.Cell())
	assert.Equal(t, SouthWest, first.Facing())
	assert.True(t, first.Retired())

	slot, _ = ctrl.Eject(second)
	assert.Equal(t, Cell(9, -1), slot)
	assert.Equal(t, Cell(9, -1), second.Cell())
	assert.Equal(t, Cell(10, -1), ctrl.NextSlot())
}

func TestEjectCustomConfig(t *testing.T) {
	ctrl := NewEjectionController(RespawnConfig{Column: 2, Increment: 3, Row: -2, Facing: NorthWest})
	a := &anchor{cell: Cell(4, 4)}

	ctrl.Eject(a)
	assert.Equal(t, Cell(2, -2), a.cell)
	assert.Equal(t, NorthWest, a.facing)

	ctrl.Eject(a)
	assert.Equal(t, Cell(5, -2), a.cell)
}

func TestEjectTarget(t *testing.T) {
	ctrl := NewEjectionController(DefaultRespawnConfig)
	rabbit := NewActor(0, CharacterRabbit, Cell(10, 4), NorthWest)

	outcome := ctrl.EjectTarget(rabbit)
	assert.Equal(t, OutcomeSessionEnded, outcome)
	assert.Equal(t, Cell(8, -1), rabbit.Cell())
	assert.Equal(t, SouthWest, rabbit.Facing())
	assert.False(t, rabbit.Retired())
	// 兔子不占用弹出位置
	assert.Equal(t, Cell(8, -1), ctrl.NextSlot())

	// 已有弓箭手被弹出时，兔子落在下一个位置上
	ctrl.Eject(NewActor(1, CharacterArcher, Cell(16, 2), NorthWest))
	ctrl.EjectTarget(rabbit)
	assert.Equal(t, Cell(9, -1), rabbit.Cell())
	assert.Equal(t, Cell(9, -1), ctrl.NextSlot())
}
