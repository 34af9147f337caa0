package client

import (
	"image/color"

	"carrothunt/internal/render"
	"carrothunt/pkg/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var hudFont = text.NewGoXFace(basicfont.Face7x13)

const (
	hudLineHeight = 16
	maxLogLines   = 4
)

// HUD 状态栏和事件记录
type HUD struct {
	log      []string
	likeLine string
	hover    string
}

// Record 记录一个回合中值得显示的事件
func (h *HUD) Record(res sim.Result) {
	for _, ev := range res.Events {
		if line := render.EventLine(ev); line != "" {
			h.log = append(h.log, line)
		}
	}
	if len(h.log) > maxLogLines {
		h.log = h.log[len(h.log)-maxLogLines:]
	}
}

// Reset 换关时清空事件记录
func (h *HUD) Reset() {
	h.log = h.log[:0]
}

func (h *HUD) Draw(screen *ebiten.Image, s *sim.Simulation, level string) {
	y := hudLineHeight
	for _, line := range render.StatusLines(s, level) {
		drawText(screen, 8, y, line, render.ColorText)
		y += hudLineHeight
	}
	if h.likeLine != "" {
		drawText(screen, 8, y, h.likeLine, render.ColorCarrot)
	}

	y = ScreenHeight - hudLineHeight*(len(h.log)+2)
	for _, line := range h.log {
		drawText(screen, 8, y, line, color.RGBA{180, 190, 200, 255})
		y += hudLineHeight
	}
	if h.hover != "" {
		drawText(screen, ScreenWidth-8-len(h.hover)*7, ScreenHeight-hudLineHeight*2, h.hover, render.ColorFlow)
	}
	drawText(screen, 8, ScreenHeight-hudLineHeight, render.ControlsHint, color.RGBA{140, 150, 160, 255})
}

func drawText(screen *ebiten.Image, x, y int, msg string, clr color.Color) {
	options := &text.DrawOptions{}
	options.GeoM.Translate(float64(x), float64(y-hudLineHeight+3))
	options.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, msg, hudFont, options)
}
