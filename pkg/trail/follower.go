package trail

import "carrothunt/pkg/core"

// Follow 沿轨迹前进一步：取出最旧的格子并直接跳过去，再根据下一个格子决定朝向
// 轨迹为空时不动，返回 false
func Follow(agent core.Relocatable, t *Trail, fallback core.Direction) bool {
	if t.Size() == 0 {
		return false
	}
	cell := t.Pop()
	agent.Relocate(cell, facingToward(cell, t, fallback))
	return true
}

func facingToward(cell core.CellLocation, t *Trail, fallback core.Direction) core.Direction {
	if t.Size() == 0 {
		return fallback
	}
	next := t.Peek()
	switch {
	case next.X > cell.X:
		return core.SouthEast
	case next.Y > cell.Y:
		return core.SouthWest
	case next.X < cell.X:
		return core.NorthWest
	}
	return fallback
}
