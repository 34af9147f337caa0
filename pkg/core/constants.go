package core

// 网格配置
const (
	CellStride = 2 // 相邻可通行格子之间的逻辑单位数（中间是连接地块）
)

// 追捕配置
const (
	DefaultLookahead     = 2                    // 视线扫描的最大格数
	DefaultTrailCapacity = DefaultLookahead + 1 // 轨迹缓冲容量
)

// 弹出配置（与关卡文件缺省值一致）
const (
	DefaultRespawnColumn    = 8
	DefaultRespawnIncrement = 1
	DefaultRespawnRow       = -1
	DefaultRespawnFacing    = SouthWest
)

// 关卡参数的合法范围
const (
	MinLevelParam = 1
	MaxLevelParam = 10
)
