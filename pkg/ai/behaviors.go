package ai

import (
	"carrothunt/pkg/ai/bt"
	"carrothunt/pkg/core"
	"carrothunt/pkg/trail"
)

// === 条件节点 ===

func condRetired(bb *Blackboard) bool {
	return bb.Archer.Retired()
}

func condNavActive(bb *Blackboard) bool {
	return bb.Nav != nil && bb.Nav.Active()
}

func condHasTrail(bb *Blackboard) bool {
	return bb.Trail.Size() > 0
}

// === 动作节点 ===

// actIdle 已被弹出的弓箭手不再行动
func actIdle(bb *Blackboard) bt.Status {
	bb.Move = MoveNone
	return bt.StatusSuccess
}

// actFollowFlow 沿流场前进一格；没有方向时原地等待
func actFollowFlow(bb *Blackboard) bt.Status {
	d, ok := bb.Nav.DirectionAt(bb.Archer.Cell())
	if !ok {
		return bt.StatusSuccess
	}
	bb.Archer.Advance(d)
	bb.Move = MoveFlow
	return bt.StatusSuccess
}

// actRecordTarget 把兔子当前的位置追加到轨迹末尾
func actRecordTarget(bb *Blackboard) bt.Status {
	if bb.Config.RecordTarget && bb.Game != nil {
		bb.Trail.Push(bb.Game.Rabbit.Cell())
	}
	return bt.StatusSuccess
}

func actFollowTrail(bb *Blackboard) bt.Status {
	if !trail.Follow(bb.Archer, bb.Trail, bb.Fallback) {
		return bt.StatusFailure
	}
	bb.Move = MoveTrail
	return bt.StatusSuccess
}

// actWander 随机选一个方向，地块允许时才移动
func actWander(bb *Blackboard) bt.Status {
	if !bb.Config.Wander || bb.RNG == nil || bb.Game == nil {
		return bt.StatusFailure
	}
	d := core.Directions[bb.RNG.Intn(len(core.Directions))]
	if !bb.Game.Deck.Has(bb.Archer.Cell(), d) {
		return bt.StatusSuccess
	}
	bb.Archer.Advance(d)
	bb.Move = MoveWander
	return bt.StatusSuccess
}
