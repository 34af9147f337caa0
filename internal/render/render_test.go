package render

import (
	"testing"

	"carrothunt/pkg/core"
	"carrothunt/pkg/sim"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectionRoundTrip(t *testing.T) {
	p := Projection{OriginX: 100, OriginY: 40, HalfWidth: 16, HalfHeight: 8}

	assert.Equal(t, Point{100, 40}, p.ToScreen(core.Cell(0, 0)))
	assert.Equal(t, Point{116, 48}, p.ToScreen(core.Cell(1, 0)))
	assert.Equal(t, Point{84, 48}, p.ToScreen(core.Cell(0, 1)))

	for x := -2; x <= 16; x++ {
		for y := -2; y <= 8; y++ {
			c := core.Cell(x, y)
			pt := p.ToScreen(c)
			assert.Equal(t, c, p.FromScreen(pt.X, pt.Y))
			// 偏离中心不到半个单位仍落在同一个格子
			assert.Equal(t, c, p.FromScreen(pt.X+3, pt.Y+2))
		}
	}
}

func TestFitCentersBounds(t *testing.T) {
	p := Fit(core.Cell(0, 0), core.Cell(16, 8), 512, 320)

	left := p.ToScreen(core.Cell(0, 8))
	right := p.ToScreen(core.Cell(16, 0))
	top := p.ToScreen(core.Cell(0, 0))
	bottom := p.ToScreen(core.Cell(16, 8))

	assert.InDelta(t, 64, left.X, 0.001)
	assert.InDelta(t, 512-64, right.X, 0.001)
	assert.InDelta(t, top.Y, 320-bottom.Y, 0.001)
}

func TestDiamondAndArrow(t *testing.T) {
	p := Projection{HalfWidth: 16, HalfHeight: 8}

	d := p.Diamond(core.Cell(0, 0))
	assert.Equal(t, [4]Point{{0, -8}, {16, 0}, {0, 8}, {-16, 0}}, d)

	from, to := p.Arrow(core.Cell(0, 0), core.SouthEast, 0.5)
	assert.Equal(t, Point{0, 0}, from)
	assert.Equal(t, Point{8, 4}, to)

	_, to = p.Arrow(core.Cell(0, 0), core.NorthEast, 1)
	assert.Equal(t, Point{16, -8}, to)
}

func TestCharacterInfo(t *testing.T) {
	assert.Equal(t, 'R', GetCharacterInfo(core.CharacterRabbit).Glyph)
	assert.Equal(t, 'A', GetCharacterInfo(core.CharacterArcher).Glyph)
	assert.Equal(t, 'W', GetCharacterInfo(core.CharacterWolf).Glyph)
	assert.Equal(t, core.CharacterRabbit, GetCharacterInfo(core.CharacterType(99)).Type)

	assert.Equal(t, '↘', DirectionGlyph(core.SouthEast))
	assert.Equal(t, '↗', DirectionGlyph(core.NorthEast))
	assert.Equal(t, '·', DirectionGlyph(core.Direction(9)))
}

func TestStatusLines(t *testing.T) {
	lvl, err := core.LoadEmbedded("level1")
	require.NoError(t, err)
	s := sim.New(lvl, sim.Options{Seed: 1})

	lines := StatusLines(s, "level1")
	require.Len(t, lines, 1)
	assert.Equal(t, "Level level1  Turn 0  Carrots 0/2", lines[0])

	s.Nav().Activate(lvl.Wolf.Cell())
	lines = StatusLines(s, "level1")
	assert.Len(t, lines, 2)
}

func TestEventLine(t *testing.T) {
	assert.Equal(t, "No path that way", EventLine(sim.Event{Kind: sim.EventBlocked}))
	assert.Equal(t, "Archer 2 caught you", EventLine(sim.Event{Kind: sim.EventTargetCaught, ActorID: 2}))
	assert.Empty(t, EventLine(sim.Event{Kind: sim.EventPursuerMoved}))
	assert.Equal(t, "level1 likes: 3 (ACCEPTED)", LikeLine("level1", 3, "ACCEPTED"))
}

func TestSmoother(t *testing.T) {
	var s Smoother
	assert.Equal(t, Point{10, 10}, s.Update(Point{10, 10}))
	assert.False(t, s.Moving(Point{10, 10}))

	p := s.Update(Point{42, 26})
	assert.InDelta(t, 18, p.X, 0.001)
	assert.InDelta(t, 14, p.Y, 0.001)
	assert.True(t, s.Moving(Point{42, 26}))

	for i := 0; i < 100; i++ {
		p = s.Update(Point{42, 26})
	}
	assert.Equal(t, Point{42, 26}, p)

	// 远距离直接跳过去
	assert.Equal(t, Point{400, 300}, s.Update(Point{400, 300}))
}
