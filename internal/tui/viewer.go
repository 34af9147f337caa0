package tui

import (
	"log"

	"carrothunt/internal/render"
	"carrothunt/pkg/core"
	"carrothunt/pkg/sim"

	"github.com/gdamore/tcell/v2"
)

// Canvas 可以写入字符的屏幕，tcell.Screen 满足这个接口
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// 地图左上角在终端中的位置，每个逻辑单位占两列
const (
	boardLeft   = 2
	boardTop    = 1
	columnWidth = 2
)

var (
	styleTile   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleLink   = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	styleCarrot = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleWolf   = tcell.StyleDefault.Foreground(tcell.ColorGray).Bold(true)
	styleArcher = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleRabbit = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleFlow   = tcell.StyleDefault.Foreground(tcell.ColorLightBlue)
	styleText   = tcell.StyleDefault
)

// Viewer 终端版本的游戏界面
type Viewer struct {
	campaign *sim.Campaign
	showFlow bool
	log      []string
	finished bool
}

// NewViewer 创建终端界面
func NewViewer(campaign *sim.Campaign) *Viewer {
	return &Viewer{campaign: campaign}
}

// HandleKey 处理按键，返回 false 表示退出
func (v *Viewer) HandleKey(key tcell.Key, ch rune) (bool, error) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false, nil
	case tcell.KeyRight:
		v.step(core.SouthEast)
	case tcell.KeyDown:
		v.step(core.SouthWest)
	case tcell.KeyLeft:
		v.step(core.NorthWest)
	case tcell.KeyUp:
		v.step(core.NorthEast)
	case tcell.KeyEnter:
		if v.campaign.Current().Outcome() == core.OutcomeLevelCleared {
			ok, err := v.campaign.Next()
			if err != nil {
				return false, err
			}
			v.finished = !ok
			v.log = v.log[:0]
		}
	case tcell.KeyRune:
		switch ch {
		case 'q':
			return false, nil
		case 'v':
			v.showFlow = !v.showFlow
		case 'r':
			if err := v.campaign.Restart(); err != nil {
				return false, err
			}
			v.finished = false
			v.log = v.log[:0]
		}
	}
	return true, nil
}

func (v *Viewer) step(d core.Direction) {
	res := v.campaign.Current().Step(core.MoveInput(d))
	for _, ev := range res.Events {
		if line := render.EventLine(ev); line != "" {
			v.log = append(v.log, line)
		}
	}
	if len(v.log) > 3 {
		v.log = v.log[len(v.log)-3:]
	}
	if res.Outcome != core.OutcomeNone {
		log.Printf("关卡 %s 结束: %s", v.campaign.LevelName(), res.Outcome)
	}
}

// Draw 把当前关卡画到画布上
func (v *Viewer) Draw(c Canvas) {
	s := v.campaign.Current()
	g := s.Game()
	deck := g.Deck
	minCell, maxCell := deck.Bounds()

	at := func(cell core.CellLocation) (int, int, bool) {
		if cell.X < minCell.X || cell.Y < minCell.Y || cell.X > maxCell.X || cell.Y > maxCell.Y {
			return 0, 0, false
		}
		return boardLeft + (cell.X-minCell.X)*columnWidth, boardTop + cell.Y - minCell.Y, true
	}
	put := func(cell core.CellLocation, r rune, style tcell.Style) {
		if x, y, ok := at(cell); ok {
			c.SetContent(x, y, r, nil, style)
		}
	}

	for _, l := range deck.Links() {
		put(l.Cell, '+', styleLink)
	}
	for _, cell := range deck.Cells() {
		put(cell, '.', styleTile)
	}
	if v.showFlow && s.Nav().Active() {
		s.Nav().ForEachResolvedCell(func(cell core.CellLocation, d core.Direction) {
			put(cell, render.DirectionGlyph(d), styleFlow)
		})
	}
	for _, cell := range g.Carrots() {
		put(cell, 'c', styleCarrot)
	}
	put(g.Wolf, render.GetCharacterInfo(core.CharacterWolf).Glyph, styleWolf)
	for _, a := range g.Archers {
		if !a.Retired() {
			put(a.Cell(), render.GetCharacterInfo(core.CharacterArcher).Glyph, styleArcher)
		}
	}
	put(g.Rabbit.Cell(), render.GetCharacterInfo(core.CharacterRabbit).Glyph, styleRabbit)

	y := boardTop + maxCell.Y - minCell.Y + 2
	lines := render.StatusLines(s, v.campaign.LevelName())
	if v.finished {
		lines = append(lines, "You cleared every level!")
	}
	lines = append(lines, v.log...)
	lines = append(lines, "Arrows: move  v: flow  r: restart  Enter: next  q: quit")
	for _, line := range lines {
		drawString(c, boardLeft, y, line, styleText)
		y++
	}
}

func drawString(c Canvas, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		c.SetContent(x, y, r, nil, style)
		x++
	}
}

// Run 在终端中运行游戏，直到按下 q 或 Esc
func Run(screen tcell.Screen, campaign *sim.Campaign) error {
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	v := NewViewer(campaign)
	for {
		screen.Clear()
		v.Draw(screen)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			more, err := v.HandleKey(ev.Key(), ev.Rune())
			if err != nil || !more {
				return err
			}
		}
	}
}
