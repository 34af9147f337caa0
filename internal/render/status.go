package render

import (
	"fmt"

	"carrothunt/pkg/core"
	"carrothunt/pkg/sim"
)

// 键位提示（位图字体只有 ASCII 字形）
const ControlsHint = "Arrows: move  V: flow  L: like  R: restart  Enter: next"

// StatusLines 返回 HUD 显示的状态文本
func StatusLines(s *sim.Simulation, level string) []string {
	g := s.Game()
	total := g.CarrotsEaten() + g.CarrotsLeft()
	lines := []string{
		fmt.Sprintf("Level %s  Turn %d  Carrots %d/%d", level, s.Tick(), g.CarrotsEaten(), total),
	}

	if s.Nav().Active() {
		lines = append(lines, "The wolf is awake! Archers are on the hunt")
	}

	switch s.Outcome() {
	case core.OutcomeSessionEnded:
		lines = append(lines, "Caught! Press R to restart")
	case core.OutcomeLevelCleared:
		lines = append(lines, "All carrots eaten! Press Enter for the next level")
	}
	return lines
}

// EventLine 返回事件的简短描述，不需要显示的事件返回空串
func EventLine(ev sim.Event) string {
	switch ev.Kind {
	case sim.EventBlocked:
		return "No path that way"
	case sim.EventCarrotEaten:
		return fmt.Sprintf("Ate a carrot at %v", ev.Cell)
	case sim.EventPursuerEjected:
		return fmt.Sprintf("Archer %d knocked off the board", ev.ActorID)
	case sim.EventNavActivated:
		return "You woke the wolf"
	case sim.EventNavDeactivated:
		return "The hunt is over"
	case sim.EventTargetSpotted:
		return fmt.Sprintf("Archer %d spotted you", ev.ActorID)
	case sim.EventTargetCaught:
		return fmt.Sprintf("Archer %d caught you", ev.ActorID)
	}
	return ""
}

// LikeLine 点赞结果的显示文本
func LikeLine(level string, count int64, status string) string {
	return fmt.Sprintf("%s likes: %d (%s)", level, count, status)
}
