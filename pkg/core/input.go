package core

// Input 表示一个回合内玩家的输入
type Input struct {
	Dir    Direction
	HasDir bool // 本回合是否按下了方向键
}

// MoveInput 构造一次方向输入
func MoveInput(d Direction) Input {
	return Input{Dir: d, HasDir: true}
}

// ApplyInput 将输入应用到兔子：地块允许时转向并前进一格，否则保持不动
// 返回兔子是否真的移动了
func ApplyInput(game *Game, input Input) bool {
	if game == nil || !input.HasDir || !input.Dir.Valid() {
		return false
	}

	rabbit := game.Rabbit
	if !game.Deck.Has(rabbit.Cell(), input.Dir) {
		return false
	}
	rabbit.Advance(input.Dir)
	return true
}
