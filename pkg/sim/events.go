package sim

import (
	"fmt"

	"carrothunt/pkg/ai"
	"carrothunt/pkg/core"
)

// EventKind 回合中发生的事件类型
type EventKind int

const (
	EventBlocked        EventKind = iota // 兔子被地块挡住
	EventTargetMoved                     // 兔子移动
	EventPursuerEjected                  // 弓箭手被兔子踩出场外
	EventNavDeactivated                  // 导航图停用
	EventCarrotEaten                     // 吃到胡萝卜
	EventNavActivated                    // 兔子惊动了狼，导航图激活
	EventPursuerMoved                    // 弓箭手移动
	EventTargetSpotted                   // 弓箭手看到了兔子
	EventTargetCaught                    // 兔子被抓
)

func (k EventKind) String() string {
	switch k {
	case EventBlocked:
		return "blocked"
	case EventTargetMoved:
		return "target-moved"
	case EventPursuerEjected:
		return "pursuer-ejected"
	case EventNavDeactivated:
		return "nav-deactivated"
	case EventCarrotEaten:
		return "carrot-eaten"
	case EventNavActivated:
		return "nav-activated"
	case EventPursuerMoved:
		return "pursuer-moved"
	case EventTargetSpotted:
		return "target-spotted"
	case EventTargetCaught:
		return "target-caught"
	}
	return "unknown"
}

// Event 一个事件
type Event struct {
	Kind    EventKind
	ActorID int               // 相关角色，兔子为 0
	Cell    core.CellLocation // 事件发生的格子
	Move    ai.Move           // 仅 EventPursuerMoved 使用
}

func (e Event) String() string {
	return fmt.Sprintf("%s#%d@%v", e.Kind, e.ActorID, e.Cell)
}

// Result 一个回合的结果
type Result struct {
	Idle    bool // 没有输入，什么都没发生
	Moved   bool // 兔子是否移动
	Events  []Event
	Outcome core.Outcome
}

// Has 回合中是否发生了指定类型的事件
func (r Result) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func (r *Result) add(kind EventKind, id int, cell core.CellLocation) {
	r.Events = append(r.Events, Event{Kind: kind, ActorID: id, Cell: cell})
}
