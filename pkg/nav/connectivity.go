package nav

import (
	"sort"

	"carrothunt/pkg/core"

	"github.com/zyedidia/generic/mapset"
)

// ConnectivityMap 有向连通图：每个格子允许离开的方向集合
type ConnectivityMap map[core.CellLocation]mapset.Set[core.Direction]

// BuildConnectivity 由地块边构建连通图
// 同一格子的重复声明会合并，不做双向校验
func BuildConnectivity(edges []core.Edge) ConnectivityMap {
	conn := make(ConnectivityMap)
	for _, e := range edges {
		set, ok := conn[e.Cell]
		if !ok {
			set = mapset.New[core.Direction]()
			conn[e.Cell] = set
		}
		set.Put(e.Dir)
	}
	return conn
}

// Has 格子是否允许沿方向 d 离开
func (m ConnectivityMap) Has(cell core.CellLocation, d core.Direction) bool {
	set, ok := m[cell]
	if !ok {
		return false
	}
	return set.Has(d)
}

// Directions 返回格子允许的方向（按方向值排序）
func (m ConnectivityMap) Directions(cell core.CellLocation) []core.Direction {
	set, ok := m[cell]
	if !ok {
		return nil
	}
	dirs := make([]core.Direction, 0, set.Size())
	set.Each(func(d core.Direction) {
		dirs = append(dirs, d)
	})
	sort.Slice(dirs, func(i, j int) bool { return dirs[i] < dirs[j] })
	return dirs
}

// Len 格子数量
func (m ConnectivityMap) Len() int {
	return len(m)
}

// collapse 把格子的方向集合替换为单个方向
func (m ConnectivityMap) collapse(cell core.CellLocation, d core.Direction) {
	set := mapset.New[core.Direction]()
	set.Put(d)
	m[cell] = set
}
