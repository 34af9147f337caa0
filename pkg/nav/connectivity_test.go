package nav

import (
	"testing"

	"carrothunt/pkg/core"

	"github.com/stretchr/testify/assert"
)

func TestBuildConnectivityUnionsDuplicates(t *testing.T) {
	conn := BuildConnectivity([]core.Edge{
		{Cell: core.Cell(0, 0), Dir: core.SouthEast},
		{Cell: core.Cell(0, 0), Dir: core.NorthEast},
		{Cell: core.Cell(0, 0), Dir: core.SouthEast},
		{Cell: core.Cell(2, 0), Dir: core.NorthWest},
	})

	assert.Equal(t, 2, conn.Len())
	assert.Equal(t, []core.Direction{core.SouthEast, core.NorthEast}, conn.Directions(core.Cell(0, 0)))
	assert.True(t, conn.Has(core.Cell(2, 0), core.NorthWest))
	assert.False(t, conn.Has(core.Cell(2, 0), core.SouthEast))
	assert.False(t, conn.Has(core.Cell(4, 0), core.NorthWest))
	assert.Nil(t, conn.Directions(core.Cell(4, 0)))
}

func TestBuildConnectivityEmpty(t *testing.T) {
	conn := BuildConnectivity(nil)
	assert.Zero(t, conn.Len())
}
