package ai

import (
	"carrothunt/pkg/core"
	"carrothunt/pkg/trail"
)

// EdgeChecker 查询地块是否允许从格子沿某方向离开
type EdgeChecker interface {
	Has(cell core.CellLocation, d core.Direction) bool
}

// Scan 沿朝向做视线扫描
// 第 k 步要求前方 (k-1) 格处有朝向方向的边，目标恰好在前方 k 格处时命中
func Scan(deck EdgeChecker, from core.CellLocation, facing core.Direction, target core.CellLocation, lookahead int) (int, bool) {
	for k := 1; k <= lookahead; k++ {
		if !deck.Has(from.Step(facing, (k-1)*core.CellStride), facing) {
			return 0, false
		}
		if from.Step(facing, k*core.CellStride) == target {
			return k, true
		}
	}
	return 0, false
}

// SeedTrail 在 from 与 target 之间按整数插值写入 k 个路点
func SeedTrail(t *trail.Trail, from, target core.CellLocation, k int) {
	for i := 1; i <= k; i++ {
		t.PushXY(
			from.X+(target.X-from.X)*i/k,
			from.Y+(target.Y-from.Y)*i/k,
		)
	}
}
