package nav

import (
	"log"

	"carrothunt/pkg/core"
)

// Session 一次导航会话：持有地块边，激活时重新构建流场，停用时丢弃
type Session struct {
	edges  []core.Edge
	field  *FlowField
	active bool
}

// NewSession 创建导航会话（初始为停用状态）
func NewSession(edges []core.Edge) *Session {
	return &Session{edges: edges}
}

// SetActive 激活或停用导航图
// 激活时总是从头构建连通图和流场，即使已经处于激活状态
func (s *Session) SetActive(on bool, target core.CellLocation) {
	if !on {
		if s.active {
			log.Printf("导航图已停用")
		}
		s.active = false
		s.field = nil
		return
	}
	s.field = BuildFlowField(BuildConnectivity(s.edges), target)
	s.active = true
	log.Printf("导航图已激活: 目标 %v, 可达格子 %d", target, s.field.Resolved())
}

// Activate 以 target 为目标激活导航图
func (s *Session) Activate(target core.CellLocation) {
	s.SetActive(true, target)
}

// Deactivate 停用导航图
func (s *Session) Deactivate() {
	s.SetActive(false, core.CellLocation{})
}

// Active 导航图是否处于激活状态
func (s *Session) Active() bool {
	return s.active
}

// DirectionAt 查询格子上的导航方向；停用时总是返回 false
func (s *Session) DirectionAt(cell core.CellLocation) (core.Direction, bool) {
	if !s.active {
		return 0, false
	}
	return s.field.DirectionAt(cell)
}

// ForEachResolvedCell 遍历流场（供渲染使用）
func (s *Session) ForEachResolvedCell(fn func(core.CellLocation, core.Direction)) {
	if !s.active {
		return
	}
	s.field.ForEachResolvedCell(fn)
}

// Field 当前流场，停用时为 nil
func (s *Session) Field() *FlowField {
	return s.field
}
