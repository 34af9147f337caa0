package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTileToken(t *testing.T) {
	tests := []struct {
		token string
		dir   Direction
		ok    bool
	}{
		{"GSE", SouthEast, true},
		{"GSW", SouthWest, true},
		{"GNW", NorthWest, true},
		{"GNE", NorthEast, true},
		{"GSWNE", 0, false},
		{"GNWSE", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		dir, ok, err := ParseTileToken(tt.token)
		require.NoError(t, err, tt.token)
		assert.Equal(t, tt.ok, ok, tt.token)
		if tt.ok {
			assert.Equal(t, tt.dir, dir, tt.token)
		}
	}

	_, _, err := ParseTileToken("GXX")
	assert.True(t, errors.Is(err, ErrInvalidTile))
}

func TestNewTileDeck(t *testing.T) {
	square := [][][]string{
		{{""}, {""}, {""}},
		{{""}, {""}, {""}},
		{{"GSE"}, {""}, {""}},
		{{"GNWSE"}, {""}, {""}},
		{{"GNW", "GSW"}, {""}, {"GNE"}},
	}
	// (4, 1) 处没有连接地块，但边照样按声明加入
	deck, err := NewTileDeck(square)
	require.NoError(t, err)

	assert.True(t, deck.Has(Cell(2, 0), SouthEast))
	assert.True(t, deck.Has(Cell(4, 0), NorthWest))
	assert.True(t, deck.Has(Cell(4, 0), SouthWest))
	assert.True(t, deck.Has(Cell(4, 2), NorthEast))
	assert.False(t, deck.Has(Cell(4, 0), SouthEast))
	assert.False(t, deck.Has(Cell(3, 0), SouthEast))

	assert.Len(t, deck.Edges(), 4)
	assert.Equal(t, []Link{{Cell: Cell(3, 0), Token: TileLinkNWSE}}, deck.Links())
	assert.Equal(t, []CellLocation{Cell(2, 0), Cell(4, 0), Cell(4, 2)}, deck.Cells())

	lo, hi := deck.Bounds()
	assert.Equal(t, Cell(2, 0), lo)
	assert.Equal(t, Cell(4, 2), hi)
}

func TestTileDeckRejectsUnknownToken(t *testing.T) {
	_, err := NewTileDeck([][][]string{{{"GSE"}, {"BAD"}}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTile)
	assert.Contains(t, err.Error(), "(0, 1)")
}

func TestTileDeckDuplicateEdges(t *testing.T) {
	deck := NewEmptyDeck()
	deck.AddEdge(Cell(0, 0), SouthEast)
	deck.AddEdge(Cell(0, 0), SouthEast)
	deck.AddEdge(Cell(0, 0), SouthWest)
	assert.Len(t, deck.Edges(), 2)

	var nilDeck *TileDeck
	assert.False(t, nilDeck.Has(Cell(0, 0), SouthEast))
}
