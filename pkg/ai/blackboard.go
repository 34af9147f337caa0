package ai

import (
	"math/rand"

	"carrothunt/pkg/core"
	"carrothunt/pkg/trail"
)

// NavQuery 追捕者对导航图的只读访问
type NavQuery interface {
	Active() bool
	DirectionAt(cell core.CellLocation) (core.Direction, bool)
}

// Move 追捕者本回合的动作
type Move int

const (
	MoveNone   Move = iota // 原地不动
	MoveFlow               // 沿流场前进
	MoveTrail              // 沿轨迹前进
	MoveWander             // 随机游荡
)

func (m Move) String() string {
	switch m {
	case MoveFlow:
		return "flow"
	case MoveTrail:
		return "trail"
	case MoveWander:
		return "wander"
	}
	return "none"
}

type Blackboard struct {
	Game     *core.Game
	Nav      NavQuery
	Archer   *core.Actor
	Trail    *trail.Trail
	RNG      *rand.Rand
	Config   *PursuerConfig
	Fallback core.Direction // 轨迹用完时的朝向

	Move Move // 本回合的动作结果
}

func (bb *Blackboard) ResetTurn(game *core.Game, nav NavQuery) {
	bb.Game = game
	bb.Nav = nav
	bb.Move = MoveNone
}
