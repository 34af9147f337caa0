package nav

import (
	"container/list"

	"carrothunt/pkg/core"
)

// FlowField 单目标流场：每个可达格子只保留一个“下一步”方向
type FlowField struct {
	conn   ConnectivityMap
	target core.CellLocation
	layer  map[core.CellLocation]int
	order  []core.CellLocation // 发现顺序
}

type flowNode struct {
	Cell  core.CellLocation
	Layer int
}

// BuildFlowField 从目标出发做反向广度优先搜索，原地折叠 conn
// 方向按 SE、SW、NW、NE 的顺序检查，先发现的方向生效
func BuildFlowField(conn ConnectivityMap, target core.CellLocation) *FlowField {
	f := &FlowField{
		conn:   conn,
		target: target,
		layer:  make(map[core.CellLocation]int),
	}
	delete(conn, target)

	queue := list.New()
	queue.PushBack(flowNode{Cell: target})

	for queue.Len() > 0 {
		n := queue.Remove(queue.Front()).(flowNode)
		for _, d := range core.Directions {
			next := n.Cell.Neighbor(d)
			if _, done := f.layer[next]; done {
				continue
			}
			back := d.Opposite()
			if !conn.Has(next, back) {
				continue
			}
			conn.collapse(next, back)
			f.layer[next] = n.Layer + 1
			f.order = append(f.order, next)
			queue.PushBack(flowNode{Cell: next, Layer: n.Layer + 1})
		}
	}
	return f
}

// DirectionAt 返回格子上朝目标前进的方向；未被搜索到的格子和目标本身返回 false
func (f *FlowField) DirectionAt(cell core.CellLocation) (core.Direction, bool) {
	if f == nil {
		return 0, false
	}
	if _, ok := f.layer[cell]; !ok {
		return 0, false
	}
	dirs := f.conn.Directions(cell)
	if len(dirs) != 1 {
		return 0, false
	}
	return dirs[0], true
}

// Layer 返回格子到目标的步数
func (f *FlowField) Layer(cell core.CellLocation) (int, bool) {
	if f == nil {
		return 0, false
	}
	l, ok := f.layer[cell]
	return l, ok
}

// ForEachResolvedCell 按发现顺序遍历已确定方向的格子
func (f *FlowField) ForEachResolvedCell(fn func(core.CellLocation, core.Direction)) {
	if f == nil {
		return
	}
	for _, c := range f.order {
		if d, ok := f.DirectionAt(c); ok {
			fn(c, d)
		}
	}
}

// Resolved 已确定方向的格子数量
func (f *FlowField) Resolved() int {
	if f == nil {
		return 0
	}
	return len(f.order)
}

// Target 流场的目标格子
func (f *FlowField) Target() core.CellLocation {
	return f.target
}
