package core

import (
	"errors"
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

var ErrInvalidTile = errors.New("无效的地块名称")

// 地块名称
const (
	TileSouthEast = "GSE"
	TileSouthWest = "GSW"
	TileNorthWest = "GNW"
	TileNorthEast = "GNE"
	TileLinkSWNE  = "GSWNE" // 连接地块，仅用于显示
	TileLinkNWSE  = "GNWSE" // 连接地块，仅用于显示
	TileEmpty     = ""
)

// Edge 一条地块边：允许从 Cell 沿 Dir 离开
type Edge struct {
	Cell CellLocation
	Dir  Direction
}

// Link 连接地块（位于两个可通行格子之间的奇数坐标上）
type Link struct {
	Cell  CellLocation
	Token string
}

// ParseTileToken 解析单个地块名称
// 返回值 ok=false 表示该地块不产生边（连接地块或空地块）
func ParseTileToken(token string) (Direction, bool, error) {
	switch token {
	case TileSouthEast:
		return SouthEast, true, nil
	case TileSouthWest:
		return SouthWest, true, nil
	case TileNorthWest:
		return NorthWest, true, nil
	case TileNorthEast:
		return NorthEast, true, nil
	case TileLinkSWNE, TileLinkNWSE, TileEmpty:
		return 0, false, nil
	}
	return 0, false, fmt.Errorf("%w: %q", ErrInvalidTile, token)
}

// TileDeck 静态地块集合（关卡加载后不再改变）
type TileDeck struct {
	edges []Edge
	set   mapset.Set[Edge]
	links []Link
}

// NewTileDeck 由地块三维数组构建，square[x][y] 为该格子上的全部地块名称
func NewTileDeck(square [][][]string) (*TileDeck, error) {
	d := NewEmptyDeck()
	for x := range square {
		for y := range square[x] {
			for _, token := range square[x][y] {
				dir, ok, err := ParseTileToken(token)
				if err != nil {
					return nil, fmt.Errorf("地块 (%d, %d): %w", x, y, err)
				}
				if ok {
					d.AddEdge(Cell(x, y), dir)
				} else if token != TileEmpty {
					d.links = append(d.links, Link{Cell: Cell(x, y), Token: token})
				}
			}
		}
	}
	return d, nil
}

// NewEmptyDeck 创建空地块集合
func NewEmptyDeck() *TileDeck {
	return &TileDeck{set: mapset.New[Edge]()}
}

// AddEdge 添加一条边（重复添加会被忽略）
func (d *TileDeck) AddEdge(cell CellLocation, dir Direction) {
	e := Edge{Cell: cell, Dir: dir}
	if d.set.Has(e) {
		return
	}
	d.set.Put(e)
	d.edges = append(d.edges, e)
}

// Has 地块是否允许从 cell 沿 dir 离开
func (d *TileDeck) Has(cell CellLocation, dir Direction) bool {
	if d == nil {
		return false
	}
	return d.set.Has(Edge{Cell: cell, Dir: dir})
}

// Edges 返回全部边（按加载顺序）
func (d *TileDeck) Edges() []Edge {
	out := make([]Edge, len(d.edges))
	copy(out, d.edges)
	return out
}

// Links 返回全部连接地块
func (d *TileDeck) Links() []Link {
	return d.links
}

// Cells 返回所有带边的格子，按坐标排序
func (d *TileDeck) Cells() []CellLocation {
	seen := make(map[CellLocation]bool)
	cells := make([]CellLocation, 0)
	for _, e := range d.edges {
		if !seen[e.Cell] {
			seen[e.Cell] = true
			cells = append(cells, e.Cell)
		}
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].X != cells[j].X {
			return cells[i].X < cells[j].X
		}
		return cells[i].Y < cells[j].Y
	})
	return cells
}

// Bounds 返回地块覆盖的坐标范围
func (d *TileDeck) Bounds() (minCell, maxCell CellLocation) {
	first := true
	visit := func(c CellLocation) {
		if first {
			minCell, maxCell = c, c
			first = false
			return
		}
		minCell.X = min(minCell.X, c.X)
		minCell.Y = min(minCell.Y, c.Y)
		maxCell.X = max(maxCell.X, c.X)
		maxCell.Y = max(maxCell.Y, c.Y)
	}
	for _, e := range d.edges {
		visit(e.Cell)
	}
	for _, l := range d.links {
		visit(l.Cell)
	}
	return minCell, maxCell
}
