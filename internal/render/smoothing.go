package render

import "math"

const (
	// 平滑移动：每帧向目标移动的比例
	SmoothFactor = 0.25

	// 距离超过此值时直接跳到目标（例如被弹出场外）
	SnapDistance = 160.0
)

// Smoother 让角色在格子之间平滑移动
type Smoother struct {
	pos  Point
	init bool
}

// Update 向 target 移动一帧，返回当前绘制位置
func (s *Smoother) Update(target Point) Point {
	dx := float64(target.X - s.pos.X)
	dy := float64(target.Y - s.pos.Y)
	dist := math.Hypot(dx, dy)

	if !s.init || dist > SnapDistance || dist < 0.5 {
		s.pos = target
		s.init = true
		return s.pos
	}

	s.pos.X += float32(dx * SmoothFactor)
	s.pos.Y += float32(dy * SmoothFactor)
	return s.pos
}

// Moving 是否还没到达目标
func (s *Smoother) Moving(target Point) bool {
	return s.init && s.pos != target
}
