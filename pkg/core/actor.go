package core

// Relocatable 可被重新放置的角色：有格子坐标和朝向，并提供重新放置的方法
type Relocatable interface {
	Cell() CellLocation
	Facing() Direction
	Relocate(cell CellLocation, facing Direction)
}

// Retirable 可在本轮追捕中退场的角色
type Retirable interface {
	Retire()
	Retired() bool
}

// Actor 场上角色（纯逻辑，不包含渲染）
type Actor struct {
	ID        int           // 角色ID
	Character CharacterType // 角色类型
	cell      CellLocation  // 当前格子
	facing    Direction     // 朝向
	out       bool          // 是否已被弹出场外
}

// NewActor 创建新角色
func NewActor(id int, character CharacterType, cell CellLocation, facing Direction) *Actor {
	return &Actor{
		ID:        id,
		Character: character,
		cell:      cell,
		facing:    facing,
	}
}

func (a *Actor) Cell() CellLocation { return a.cell }

func (a *Actor) Facing() Direction { return a.facing }

// Relocate 直接跳到指定格子（不经过动画）
func (a *Actor) Relocate(cell CellLocation, facing Direction) {
	a.cell = cell
	a.facing = facing
}

// Face 只改变朝向
func (a *Actor) Face(d Direction) {
	a.facing = d
}

// Advance 沿方向 d 前进一个格子
func (a *Actor) Advance(d Direction) {
	a.facing = d
	a.cell = a.cell.Neighbor(d)
}

func (a *Actor) Retire() { a.out = true }

func (a *Actor) Retired() bool { return a.out }
