package core

// CharacterType 角色类型
type CharacterType int

const (
	CharacterRabbit CharacterType = iota // 兔子（玩家控制的目标）
	CharacterArcher                      // 弓箭手（追捕者）
	CharacterWolf                        // 狼（守在巢穴）
)

// String 返回角色类型的字符串表示
func (c CharacterType) String() string {
	switch c {
	case CharacterRabbit:
		return "兔子"
	case CharacterArcher:
		return "弓箭手"
	case CharacterWolf:
		return "狼"
	}
	return "未知"
}
