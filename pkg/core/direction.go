package core

// Direction 朝向，四个值构成 90° 旋转的循环
type Direction int

const (
	SouthEast Direction = iota // +x
	SouthWest                  // +y
	NorthWest                  // -x
	NorthEast                  // -y
)

// Directions 按广度优先搜索的检查顺序列出全部方向
var Directions = [4]Direction{SouthEast, SouthWest, NorthWest, NorthEast}

var directionOffsets = [4]CellLocation{
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 0, Y: -1},
}

// Valid 是否为四个合法方向之一
func (d Direction) Valid() bool {
	return d >= SouthEast && d <= NorthEast
}

// Opposite 返回相反方向
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Offset 返回该方向的单位步长
func (d Direction) Offset() CellLocation {
	if !d.Valid() {
		return CellLocation{}
	}
	return directionOffsets[d]
}

// String 返回方向的缩写，与地块名称后缀一致
func (d Direction) String() string {
	switch d {
	case SouthEast:
		return "se"
	case SouthWest:
		return "sw"
	case NorthWest:
		return "nw"
	case NorthEast:
		return "ne"
	}
	return "none"
}
