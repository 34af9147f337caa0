package tui

import (
	"strings"
	"testing"

	"carrothunt/pkg/core"
	"carrothunt/pkg/sim"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCanvas 记录写入的字符
type fakeCanvas struct {
	cells map[[2]int]rune
}

func newFakeCanvas() *fakeCanvas {
	return &fakeCanvas{cells: make(map[[2]int]rune)}
}

func (f *fakeCanvas) SetContent(x, y int, primary rune, _ []rune, _ tcell.Style) {
	f.cells[[2]int{x, y}] = primary
}

func (f *fakeCanvas) at(x, y int) rune {
	return f.cells[[2]int{x, y}]
}

func (f *fakeCanvas) contains(r rune) bool {
	for _, v := range f.cells {
		if v == r {
			return true
		}
	}
	return false
}

func (f *fakeCanvas) line(y int) string {
	var b strings.Builder
	for x := 0; x < 120; x++ {
		if r, ok := f.cells[[2]int{x, y}]; ok {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.TrimSpace(b.String())
}

func newViewer(t *testing.T) *Viewer {
	t.Helper()
	c, err := sim.NewCampaign([]string{"level1"}, sim.Options{Seed: 7})
	require.NoError(t, err)
	return NewViewer(c)
}

func screenPos(g *core.Game, cell core.CellLocation) (int, int) {
	minCell, _ := g.Deck.Bounds()
	return boardLeft + (cell.X-minCell.X)*columnWidth, boardTop + cell.Y - minCell.Y
}

func TestDrawBoard(t *testing.T) {
	v := newViewer(t)
	g := v.campaign.Current().Game()
	canvas := newFakeCanvas()
	v.Draw(canvas)

	assert.Equal(t, 'R', canvas.at(screenPos(g, g.Rabbit.Cell())))
	assert.Equal(t, 'W', canvas.at(screenPos(g, g.Wolf)))
	for _, a := range g.Archers {
		assert.Equal(t, 'A', canvas.at(screenPos(g, a.Cell())))
	}
	for _, c := range g.Carrots() {
		assert.Equal(t, 'c', canvas.at(screenPos(g, c)))
	}

	_, maxCell := g.Deck.Bounds()
	minCell, _ := g.Deck.Bounds()
	status := canvas.line(boardTop + maxCell.Y - minCell.Y + 2)
	assert.Equal(t, "Level level1  Turn 0  Carrots 0/2", status)
}

func TestHandleKeyMovesRabbit(t *testing.T) {
	v := newViewer(t)
	g := v.campaign.Current().Game()
	start := g.Rabbit.Cell()

	keys := map[core.Direction]tcell.Key{
		core.SouthEast: tcell.KeyRight,
		core.SouthWest: tcell.KeyDown,
		core.NorthWest: tcell.KeyLeft,
		core.NorthEast: tcell.KeyUp,
	}
	var dir core.Direction
	found := false
	for _, d := range core.Directions {
		if g.Deck.Has(start, d) {
			dir, found = d, true
			break
		}
	}
	require.True(t, found)

	more, err := v.HandleKey(keys[dir], 0)
	require.NoError(t, err)
	assert.True(t, more)
	assert.Equal(t, start.Neighbor(dir), g.Rabbit.Cell())
	assert.Equal(t, 1, v.campaign.Current().Tick())

	// 重新开始后回到起点
	more, err = v.HandleKey(tcell.KeyRune, 'r')
	require.NoError(t, err)
	assert.True(t, more)
	assert.Equal(t, start, v.campaign.Current().Game().Rabbit.Cell())
	assert.Equal(t, 0, v.campaign.Current().Tick())
}

func TestFlowOverlay(t *testing.T) {
	v := newViewer(t)
	s := v.campaign.Current()
	s.Nav().Activate(s.Game().Wolf)

	canvas := newFakeCanvas()
	v.Draw(canvas)
	assert.False(t, canvas.contains('↘') || canvas.contains('↙') || canvas.contains('↖') || canvas.contains('↗'))

	_, err := v.HandleKey(tcell.KeyRune, 'v')
	require.NoError(t, err)
	canvas = newFakeCanvas()
	v.Draw(canvas)
	assert.True(t, canvas.contains('↘') || canvas.contains('↙') || canvas.contains('↖') || canvas.contains('↗'))
}

func TestHandleKeyQuit(t *testing.T) {
	v := newViewer(t)

	more, err := v.HandleKey(tcell.KeyRune, 'q')
	require.NoError(t, err)
	assert.False(t, more)

	more, err = v.HandleKey(tcell.KeyEscape, 0)
	require.NoError(t, err)
	assert.False(t, more)
}
