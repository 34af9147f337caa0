package core

// Game 游戏状态（纯逻辑，不包含渲染）
type Game struct {
	Level   *Level
	Deck    *TileDeck
	Rabbit  *Actor
	Archers []*Actor
	Wolf    CellLocation
	Ejector *EjectionController

	carrots []CellLocation
	eaten   map[CellLocation]bool
}

// NewGame 按关卡创建新游戏
func NewGame(level *Level) *Game {
	g := &Game{
		Level:   level,
		Deck:    level.Deck(),
		Rabbit:  NewActor(0, CharacterRabbit, level.Rabbit.Cell(), level.Rabbit.Facing),
		Archers: make([]*Actor, 0, len(level.Archers)),
		Wolf:    level.Wolf.Cell(),
		Ejector: NewEjectionController(level.Respawn),
		carrots: make([]CellLocation, 0, len(level.Carrots)),
		eaten:   make(map[CellLocation]bool),
	}
	for i, p := range level.Archers {
		g.Archers = append(g.Archers, NewActor(i+1, CharacterArcher, p.Cell(), p.Facing))
	}
	for _, p := range level.Carrots {
		g.carrots = append(g.carrots, p.Cell())
	}
	return g
}

// ArchersAt 返回在指定格子上、仍在追捕中的弓箭手
func (g *Game) ArchersAt(cell CellLocation) []*Actor {
	var found []*Actor
	for _, a := range g.Archers {
		if !a.Retired() && a.Cell() == cell {
			found = append(found, a)
		}
	}
	return found
}

// AllArchersRetired 是否所有弓箭手都已被弹出
func (g *Game) AllArchersRetired() bool {
	for _, a := range g.Archers {
		if !a.Retired() {
			return false
		}
	}
	return true
}

// CarrotAt 指定格子上是否还有胡萝卜
func (g *Game) CarrotAt(cell CellLocation) bool {
	for _, c := range g.carrots {
		if c == cell && !g.eaten[c] {
			return true
		}
	}
	return false
}

// EatCarrot 吃掉指定格子上的胡萝卜，返回是否吃到
func (g *Game) EatCarrot(cell CellLocation) bool {
	if !g.CarrotAt(cell) {
		return false
	}
	g.eaten[cell] = true
	return true
}

// Carrots 返回剩余的胡萝卜（按关卡顺序）
func (g *Game) Carrots() []CellLocation {
	left := make([]CellLocation, 0, len(g.carrots))
	for _, c := range g.carrots {
		if !g.eaten[c] {
			left = append(left, c)
		}
	}
	return left
}

// CarrotsEaten 已吃掉的胡萝卜数量
func (g *Game) CarrotsEaten() int {
	return len(g.eaten)
}

// CarrotsLeft 剩余的胡萝卜数量
func (g *Game) CarrotsLeft() int {
	return len(g.Carrots())
}
