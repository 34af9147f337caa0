package core

import "fmt"

// CellLocation 格子坐标（值类型，可直接作为 map 的键）
// x 轴指向东南，y 轴指向西南，与等距视角的地图一致
type CellLocation struct {
	X, Y int
}

// Cell 构造格子坐标
func Cell(x, y int) CellLocation {
	return CellLocation{X: x, Y: y}
}

// Add 返回两个坐标之和
func (c CellLocation) Add(o CellLocation) CellLocation {
	return CellLocation{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub 返回两个坐标之差
func (c CellLocation) Sub(o CellLocation) CellLocation {
	return CellLocation{X: c.X - o.X, Y: c.Y - o.Y}
}

// Step 沿方向 d 前进 n 个单位
func (c CellLocation) Step(d Direction, n int) CellLocation {
	off := d.Offset()
	return CellLocation{X: c.X + off.X*n, Y: c.Y + off.Y*n}
}

// Neighbor 返回方向 d 上相邻的可通行格子（相隔 CellStride 个单位）
func (c CellLocation) Neighbor(d Direction) CellLocation {
	return c.Step(d, CellStride)
}

func (c CellLocation) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}
