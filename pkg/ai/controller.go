package ai

import (
	"math/rand"

	"carrothunt/pkg/ai/bt"
	"carrothunt/pkg/core"
	"carrothunt/pkg/trail"
)

// PursuerController 一个弓箭手的行为控制器
// 优先级：已弹出 > 流场 > 轨迹 > 随机游荡
type PursuerController struct {
	Archer *core.Actor
	config PursuerConfig
	trail  *trail.Trail

	blackboard Blackboard
	tree       bt.Node[*Blackboard]
}

// NewPursuerController 创建控制器，使用经典配置
func NewPursuerController(archer *core.Actor, rnd *rand.Rand) *PursuerController {
	return NewPursuerControllerWithConfig(archer, rnd, PursuerConfigClassic)
}

// NewPursuerControllerWithConfig 创建控制器，使用指定配置
func NewPursuerControllerWithConfig(archer *core.Actor, rnd *rand.Rand, config PursuerConfig) *PursuerController {
	config = config.withMinCapacity()

	c := &PursuerController{
		Archer: archer,
		config: config,
		trail:  trail.New(config.TrailCapacity),
	}
	c.blackboard = Blackboard{
		Archer:   archer,
		Trail:    c.trail,
		RNG:      rnd,
		Config:   &c.config,
		Fallback: core.NorthEast,
	}

	c.tree = bt.Select[*Blackboard](
		bt.Seq[*Blackboard](
			bt.If(condRetired),
			bt.Do(actIdle),
		),
		bt.Seq[*Blackboard](
			bt.If(condNavActive),
			bt.Do(actFollowFlow),
		),
		bt.Seq[*Blackboard](
			bt.If(condHasTrail),
			bt.Do(actRecordTarget),
			bt.Do(actFollowTrail),
		),
		bt.Do(actWander),
	)
	return c
}

// Act 行动一次，返回本回合的动作
func (c *PursuerController) Act(game *core.Game, nav NavQuery) Move {
	c.blackboard.ResetTurn(game, nav)
	_ = c.tree.Tick(&c.blackboard)
	return c.blackboard.Move
}

// Look 沿当前朝向扫描兔子，发现时写入轨迹
func (c *PursuerController) Look(deck EdgeChecker, target core.CellLocation) bool {
	k, found := Scan(deck, c.Archer.Cell(), c.Archer.Facing(), target, c.config.Lookahead)
	if !found {
		return false
	}
	SeedTrail(c.trail, c.Archer.Cell(), target, k)
	return true
}

// Trail 当前轨迹（只读使用）
func (c *PursuerController) Trail() *trail.Trail {
	return c.trail
}

// ClearTrail 清空轨迹
func (c *PursuerController) ClearTrail() {
	c.trail.Clear()
}

// Config 当前配置
func (c *PursuerController) Config() PursuerConfig {
	return c.config
}
