package client

import (
	"fmt"
	"image/color"

	"carrothunt/internal/render"
	"carrothunt/pkg/core"
	"carrothunt/pkg/nav"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MapRenderer 地图渲染器
type MapRenderer struct {
	deck *core.TileDeck
	proj render.Projection
}

// NewMapRenderer 创建地图渲染器
func NewMapRenderer(deck *core.TileDeck, proj render.Projection) *MapRenderer {
	return &MapRenderer{deck: deck, proj: proj}
}

// Draw 绘制地块、狼巢和胡萝卜
func (m *MapRenderer) Draw(screen *ebiten.Image, g *core.Game) {
	for _, l := range m.deck.Links() {
		m.drawDiamond(screen, l.Cell, render.ColorLink)
	}
	for _, c := range m.deck.Cells() {
		m.drawDiamond(screen, c, render.ColorTile)
	}

	// 每条边画一小段，表示可以离开的方向
	for _, e := range m.deck.Edges() {
		from, to := m.proj.Arrow(e.Cell, e.Dir, 0.6)
		vector.StrokeLine(screen, from.X, from.Y, to.X, to.Y, 2, render.ColorEdge, false)
	}

	// 狼巢
	den := m.proj.ToScreen(g.Wolf)
	wolf := render.GetCharacterInfo(core.CharacterWolf)
	vector.DrawFilledCircle(screen, den.X, den.Y-4, 7, wolf.BodyColor, false)
	vector.StrokeCircle(screen, den.X, den.Y-4, 7, 1, wolf.OutlineColor, false)

	// 胡萝卜
	for _, c := range g.Carrots() {
		p := m.proj.ToScreen(c)
		vector.DrawFilledCircle(screen, p.X, p.Y-3, 4, render.ColorCarrot, false)
		vector.StrokeLine(screen, p.X, p.Y-7, p.X+2, p.Y-11, 2, color.RGBA{60, 160, 60, 255}, false)
	}
}

// DrawFlow 绘制导航图的方向箭头
func (m *MapRenderer) DrawFlow(screen *ebiten.Image, session *nav.Session) {
	session.ForEachResolvedCell(func(c core.CellLocation, d core.Direction) {
		from, to := m.proj.Arrow(c, d, 1.2)
		vector.StrokeLine(screen, from.X, from.Y, to.X, to.Y, 1, render.ColorFlow, false)
		vector.DrawFilledCircle(screen, to.X, to.Y, 2, render.ColorFlow, false)
	})
}

// Hover 鼠标所在格子的导航信息
func (m *MapRenderer) Hover(x, y int, session *nav.Session) string {
	c := m.proj.FromScreen(float32(x), float32(y))
	if !session.Active() {
		return ""
	}
	layer, ok := session.Field().Layer(c)
	if !ok {
		return ""
	}
	d, _ := session.DirectionAt(c)
	return fmt.Sprintf("%v layer %d %s", c, layer, d)
}

func (m *MapRenderer) drawDiamond(screen *ebiten.Image, c core.CellLocation, clr color.Color) {
	pts := m.proj.Diamond(c)
	for i := range pts {
		next := pts[(i+1)%len(pts)]
		vector.StrokeLine(screen, pts[i].X, pts[i].Y, next.X, next.Y, 1, clr, false)
	}
	center := m.proj.ToScreen(c)
	vector.DrawFilledCircle(screen, center.X, center.Y, 2, clr, false)
}
