package ai

import "carrothunt/pkg/core"

// PursuerConfig 追捕者的行为参数
type PursuerConfig struct {
	// Lookahead 视线扫描的最大格数
	Lookahead int

	// TrailCapacity 轨迹缓冲容量
	// 至少要装下 Lookahead 个路点，记录兔子位置时还要多留一格
	TrailCapacity int

	// RecordTarget 跟随轨迹前是否先记录兔子的当前位置
	RecordTarget bool

	// Wander 没有轨迹时是否随机游荡
	Wander bool
}

// 预设配置：经典（与最初的关卡一致）
var PursuerConfigClassic = PursuerConfig{
	Lookahead:     core.DefaultLookahead,     // 2 格
	TrailCapacity: core.DefaultTrailCapacity, // 3
	RecordTarget:  true,
	Wander:        true,
}

// 预设配置：敏锐（看得更远，记得更多）
var PursuerConfigKeen = PursuerConfig{
	Lookahead:     4,
	TrailCapacity: 5,
	RecordTarget:  true,
	Wander:        true,
}

// ConfigForLevel 以经典配置为基础，应用关卡中的覆盖参数
func ConfigForLevel(p core.PursuitParams) PursuerConfig {
	cfg := PursuerConfigClassic
	if p.Lookahead > 0 {
		cfg.Lookahead = p.Lookahead
		cfg.TrailCapacity = p.Lookahead + 1
	}
	if p.TrailCapacity > 0 {
		cfg.TrailCapacity = p.TrailCapacity
	}
	if p.RecordTarget != nil {
		cfg.RecordTarget = *p.RecordTarget
	}
	if p.Wander != nil {
		cfg.Wander = *p.Wander
	}
	return cfg.withMinCapacity()
}

// WithLookahead 覆盖扫描距离（命令行参数使用），n <= 0 时不变
func (c PursuerConfig) WithLookahead(n int) PursuerConfig {
	if n <= 0 {
		return c
	}
	c.Lookahead = n
	if c.TrailCapacity < n+1 {
		c.TrailCapacity = n + 1
	}
	return c
}

// MinTrailCapacity 当前配置下轨迹缓冲的最小容量
func (c PursuerConfig) MinTrailCapacity() int {
	if c.RecordTarget {
		return c.Lookahead + 1
	}
	return c.Lookahead
}

func (c PursuerConfig) withMinCapacity() PursuerConfig {
	if floor := c.MinTrailCapacity(); c.TrailCapacity < floor {
		c.TrailCapacity = floor
	}
	return c
}
