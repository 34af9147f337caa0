package render

import (
	"math"

	"carrothunt/pkg/core"
)

// 等距投影的缺省尺寸（每个逻辑单位的半宽和半高）
const (
	DefaultHalfWidth  = 16
	DefaultHalfHeight = 8
)

// Point 屏幕坐标
type Point struct {
	X, Y float32
}

// Projection 把格子坐标投影到等距屏幕坐标
// +x 向右下，+y 向左下
type Projection struct {
	OriginX    float32 // 格子 (0, 0) 的屏幕位置
	OriginY    float32
	HalfWidth  float32
	HalfHeight float32
}

// Fit 让 [minCell, maxCell] 范围在 width x height 的区域中居中
func Fit(minCell, maxCell core.CellLocation, width, height int) Projection {
	p := Projection{HalfWidth: DefaultHalfWidth, HalfHeight: DefaultHalfHeight}

	// 四个角的投影范围（原点为 0 时）
	left := p.HalfWidth * float32(minCell.X-maxCell.Y)
	right := p.HalfWidth * float32(maxCell.X-minCell.Y)
	top := p.HalfHeight * float32(minCell.X+minCell.Y)
	bottom := p.HalfHeight * float32(maxCell.X+maxCell.Y)

	p.OriginX = (float32(width)-(right-left))/2 - left
	p.OriginY = (float32(height)-(bottom-top))/2 - top
	return p
}

// ToScreen 格子中心的屏幕坐标
func (p Projection) ToScreen(c core.CellLocation) Point {
	return Point{
		X: p.OriginX + float32(c.X-c.Y)*p.HalfWidth,
		Y: p.OriginY + float32(c.X+c.Y)*p.HalfHeight,
	}
}

// FromScreen 屏幕坐标对应的格子（取最近的格子）
func (p Projection) FromScreen(x, y float32) core.CellLocation {
	u := (x - p.OriginX) / p.HalfWidth  // x - y
	v := (y - p.OriginY) / p.HalfHeight // x + y
	cx := math.Round(float64(u+v) / 2)
	cy := math.Round(float64(v-u) / 2)
	return core.Cell(int(cx), int(cy))
}

// Diamond 格子菱形的四个顶点：上、右、下、左
func (p Projection) Diamond(c core.CellLocation) [4]Point {
	center := p.ToScreen(c)
	return [4]Point{
		{center.X, center.Y - p.HalfHeight},
		{center.X + p.HalfWidth, center.Y},
		{center.X, center.Y + p.HalfHeight},
		{center.X - p.HalfWidth, center.Y},
	}
}

// Arrow 从格子中心沿方向画出的箭头（起点、终点），长度为一个逻辑单位的 scale 倍
func (p Projection) Arrow(c core.CellLocation, d core.Direction, scale float32) (Point, Point) {
	from := p.ToScreen(c)
	to := p.ToScreen(c.Step(d, 1))
	return from, Point{
		X: from.X + (to.X-from.X)*scale,
		Y: from.Y + (to.Y-from.Y)*scale,
	}
}
