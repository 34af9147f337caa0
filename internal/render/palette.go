package render

import (
	"image/color"

	"carrothunt/pkg/core"
)

// CharacterInfo 角色信息（渲染相关）
type CharacterInfo struct {
	Type         core.CharacterType
	Name         string
	BodyColor    color.RGBA
	OutlineColor color.RGBA
	Glyph        rune // 终端中显示的字符
}

// GetCharacterInfo 获取角色信息
func GetCharacterInfo(charType core.CharacterType) CharacterInfo {
	switch charType {
	case core.CharacterArcher:
		return CharacterInfo{
			Type:         core.CharacterArcher,
			Name:         charType.String(),
			BodyColor:    color.RGBA{200, 60, 60, 255},
			OutlineColor: color.RGBA{100, 0, 0, 255},
			Glyph:        'A',
		}
	case core.CharacterWolf:
		return CharacterInfo{
			Type:         core.CharacterWolf,
			Name:         charType.String(),
			BodyColor:    color.RGBA{110, 110, 130, 255},
			OutlineColor: color.RGBA{40, 40, 50, 255},
			Glyph:        'W',
		}
	default:
		return CharacterInfo{
			Type:         core.CharacterRabbit,
			Name:         core.CharacterRabbit.String(),
			BodyColor:    color.RGBA{255, 255, 255, 255},
			OutlineColor: color.RGBA{0, 0, 0, 255},
			Glyph:        'R',
		}
	}
}

// 地图颜色
var (
	ColorBackground = color.RGBA{18, 22, 30, 255}
	ColorTile       = color.RGBA{34, 139, 34, 255}   // 草地绿
	ColorLink       = color.RGBA{60, 110, 50, 255}   // 连接地块
	ColorEdge       = color.RGBA{20, 80, 20, 255}    // 地块边
	ColorCarrot     = color.RGBA{255, 140, 0, 255}   // 胡萝卜橙
	ColorFlow       = color.RGBA{120, 180, 255, 255} // 导航箭头
	ColorText       = color.RGBA{220, 230, 240, 255}
	ColorAlert      = color.RGBA{255, 120, 120, 255}
)

// DirectionGlyph 终端中表示方向的字符
func DirectionGlyph(d core.Direction) rune {
	switch d {
	case core.SouthEast:
		return '↘'
	case core.SouthWest:
		return '↙'
	case core.NorthWest:
		return '↖'
	case core.NorthEast:
		return '↗'
	}
	return '·'
}
