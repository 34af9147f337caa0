package core

import "log"

// Outcome 一局游戏的结果
type Outcome int

const (
	OutcomeNone         Outcome = iota // 继续进行
	OutcomeSessionEnded                // 兔子被抓，游戏结束
	OutcomeLevelCleared                // 胡萝卜全部吃完
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "进行中"
	case OutcomeSessionEnded:
		return "游戏结束"
	case OutcomeLevelCleared:
		return "通关"
	}
	return "未知"
}

// RespawnConfig 弹出位置配置
type RespawnConfig struct {
	Column    int       `yaml:"column"`    // 第一个弹出位置的列
	Increment int       `yaml:"increment"` // 每次弹出后列的增量
	Row       int       `yaml:"row"`       // 弹出位置所在的行（场外）
	Facing    Direction `yaml:"facing"`    // 弹出后的朝向
}

// DefaultRespawnConfig 缺省弹出配置
var DefaultRespawnConfig = RespawnConfig{
	Column:    DefaultRespawnColumn,
	Increment: DefaultRespawnIncrement,
	Row:       DefaultRespawnRow,
	Facing:    DefaultRespawnFacing,
}

// EjectionController 把角色移出场外
// 只有列计数器会改变，保证先后被弹出的角色不会重叠
type EjectionController struct {
	nextColumn int
	increment  int
	row        int
	facing     Direction
}

// NewEjectionController 创建弹出控制器
func NewEjectionController(cfg RespawnConfig) *EjectionController {
	return &EjectionController{
		nextColumn: cfg.Column,
		increment:  cfg.Increment,
		row:        cfg.Row,
		facing:     cfg.Facing,
	}
}

// NextSlot 下一个弹出位置
func (e *EjectionController) NextSlot() CellLocation {
	return Cell(e.nextColumn, e.row)
}

// Eject 把追捕者弹到场外的下一个空位，并让它退出本轮追捕
// 清除轨迹和导航状态由调用方负责
func (e *EjectionController) Eject(agent Relocatable) (CellLocation, Direction) {
	slot := e.NextSlot()
	agent.Relocate(slot, e.facing)
	if r, ok := agent.(Retirable); ok {
		r.Retire()
	}
	e.nextColumn += e.increment
	log.Printf("角色被弹出: %v", slot)
	return slot, e.facing
}

// EjectTarget 兔子被抓：放到当前的弹出位置并报告游戏结束
// 列计数器不变，兔子不占用弹出位置
func (e *EjectionController) EjectTarget(agent Relocatable) Outcome {
	slot := e.NextSlot()
	agent.Relocate(slot, e.facing)
	log.Printf("兔子被抓，移出场外 %v", slot)
	return OutcomeSessionEnded
}
