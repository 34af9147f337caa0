package sim

import (
	"log"
	"math/rand"
	"time"

	"carrothunt/pkg/ai"
	"carrothunt/pkg/core"
	"carrothunt/pkg/nav"
)

// Options 模拟参数
type Options struct {
	Seed      int64 // 随机种子，0 表示使用当前时间
	Lookahead int   // 覆盖关卡的扫描距离，0 表示不覆盖
}

// Simulation 回合制的游戏循环
// 兔子真正移动之后，弓箭手才会行动
type Simulation struct {
	level    *core.Level
	game     *core.Game
	nav      *nav.Session
	pursuers []*ai.PursuerController

	tick    int
	outcome core.Outcome
}

// New 按关卡创建模拟
func New(level *core.Level, opts Options) *Simulation {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := ai.ConfigForLevel(level.Pursuit).WithLookahead(opts.Lookahead)

	game := core.NewGame(level)
	s := &Simulation{
		level: level,
		game:  game,
		nav:   nav.NewSession(level.Deck().Edges()),
	}
	for _, archer := range game.Archers {
		rnd := rand.New(rand.NewSource(seed + int64(archer.ID)))
		s.pursuers = append(s.pursuers, ai.NewPursuerControllerWithConfig(archer, rnd, cfg))
	}
	log.Printf("关卡 %s 开始: 弓箭手 %d, 胡萝卜 %d", level.Name, len(game.Archers), game.CarrotsLeft())
	return s
}

// Step 执行一个回合
func (s *Simulation) Step(in core.Input) Result {
	res := Result{Outcome: s.outcome}
	if s.outcome != core.OutcomeNone || !in.HasDir {
		res.Idle = true
		return res
	}
	s.tick++

	g := s.game
	rabbit := g.Rabbit
	if !core.ApplyInput(g, in) {
		res.add(EventBlocked, rabbit.ID, rabbit.Cell())
		return res
	}
	res.Moved = true
	here := rabbit.Cell()
	res.add(EventTargetMoved, rabbit.ID, here)

	// 踩到弓箭手：弹出场外
	for _, archer := range g.ArchersAt(here) {
		g.Ejector.Eject(archer)
		if c := s.controllerOf(archer); c != nil {
			c.ClearTrail()
		}
		res.add(EventPursuerEjected, archer.ID, archer.Cell())
	}
	if s.nav.Active() && g.AllArchersRetired() {
		s.deactivate(&res, here)
	}

	if g.EatCarrot(here) {
		res.add(EventCarrotEaten, rabbit.ID, here)
		if g.CarrotsLeft() == 0 {
			log.Printf("关卡 %s 通关", s.level.Name)
			return s.finish(&res, core.OutcomeLevelCleared)
		}
	}

	if here == g.Wolf && !s.nav.Active() {
		s.nav.Activate(g.Wolf)
		s.clearTrails()
		res.add(EventNavActivated, rabbit.ID, here)
	}

	for _, c := range s.pursuers {
		mv := c.Act(g, s.nav)
		if mv == ai.MoveNone {
			continue
		}
		archer := c.Archer
		res.Events = append(res.Events, Event{Kind: EventPursuerMoved, ActorID: archer.ID, Cell: archer.Cell(), Move: mv})

		if archer.Cell() == rabbit.Cell() {
			res.add(EventTargetCaught, archer.ID, archer.Cell())
			return s.finish(&res, g.Ejector.EjectTarget(rabbit))
		}
		if s.nav.Active() && archer.Cell() == g.Wolf {
			s.deactivate(&res, archer.Cell())
			continue
		}
		if !s.nav.Active() && c.Trail().Size() == 0 && c.Look(g.Deck, rabbit.Cell()) {
			log.Printf("弓箭手 %d 发现了兔子: %v", archer.ID, rabbit.Cell())
			res.add(EventTargetSpotted, archer.ID, archer.Cell())
		}
	}
	return res
}

func (s *Simulation) deactivate(res *Result, cell core.CellLocation) {
	s.nav.Deactivate()
	s.clearTrails()
	res.add(EventNavDeactivated, 0, cell)
}

func (s *Simulation) controllerOf(archer *core.Actor) *ai.PursuerController {
	for _, c := range s.pursuers {
		if c.Archer == archer {
			return c
		}
	}
	return nil
}

func (s *Simulation) clearTrails() {
	for _, c := range s.pursuers {
		c.ClearTrail()
	}
}

func (s *Simulation) finish(res *Result, outcome core.Outcome) Result {
	s.outcome = outcome
	res.Outcome = outcome
	return *res
}

// Nav 导航会话（渲染时只读使用）
func (s *Simulation) Nav() *nav.Session { return s.nav }

func (s *Simulation) Game() *core.Game { return s.game }

func (s *Simulation) Level() *core.Level { return s.level }

func (s *Simulation) Pursuers() []*ai.PursuerController { return s.pursuers }

func (s *Simulation) Outcome() core.Outcome { return s.outcome }

// Tick 已执行的回合数（不含空回合）
func (s *Simulation) Tick() int { return s.tick }
