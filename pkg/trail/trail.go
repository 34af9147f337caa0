package trail

import (
	"fmt"

	"carrothunt/pkg/core"
)

// Trail 有限长度的位置记录，x 和 y 分别存放在两个环形缓冲中
type Trail struct {
	xs *RingBuffer
	ys *RingBuffer
}

// New 创建容量为 capacity 的轨迹
func New(capacity int) *Trail {
	return &Trail{
		xs: NewRingBuffer(capacity),
		ys: NewRingBuffer(capacity),
	}
}

// Push 记录一个格子
func (t *Trail) Push(c core.CellLocation) {
	t.PushXY(c.X, c.Y)
}

// PushXY 记录一个坐标
func (t *Trail) PushXY(x, y int) {
	t.xs.Push(x)
	t.ys.Push(y)
}

// Pop 取出最旧的格子，空时返回 (0, 0)
func (t *Trail) Pop() core.CellLocation {
	return core.Cell(t.xs.Pop(), t.ys.Pop())
}

// Peek 查看最旧的格子，空时返回 (0, 0)
func (t *Trail) Peek() core.CellLocation {
	return core.Cell(t.xs.Peek(), t.ys.Peek())
}

// Size 记录的格子数；两个缓冲长度不一致说明程序有错，直接 panic
func (t *Trail) Size() int {
	if t.xs.Size() != t.ys.Size() {
		panic(fmt.Sprintf("轨迹坐标长度不一致: x=%d y=%d", t.xs.Size(), t.ys.Size()))
	}
	return t.xs.Size()
}

func (t *Trail) Cap() int { return t.xs.Cap() }

// Clear 清空轨迹
func (t *Trail) Clear() {
	t.xs.Clear()
	t.ys.Clear()
}

// Cells 按从旧到新的顺序返回记录的格子
func (t *Trail) Cells() []core.CellLocation {
	xs, ys := t.xs.Values(), t.ys.Values()
	cells := make([]core.CellLocation, 0, t.Size())
	for i := range xs {
		cells = append(cells, core.Cell(xs[i], ys[i]))
	}
	return cells
}
