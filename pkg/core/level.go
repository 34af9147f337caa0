package core

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed levels/*.yaml
var levelFS embed.FS

var (
	ErrParamRange   = errors.New("关卡参数必须在 1 到 10 之间")
	ErrUnknownLevel = errors.New("关卡不存在")
	ErrNoTiles      = errors.New("关卡没有地块")
	ErrOffDeck      = errors.New("角色不在地块上")
)

// Placement 角色在关卡中的初始位置
type Placement struct {
	X      int       `yaml:"x"`
	Y      int       `yaml:"y"`
	Facing Direction `yaml:"facing"`
}

// Cell 初始格子
func (p Placement) Cell() CellLocation {
	return Cell(p.X, p.Y)
}

// PursuitParams 关卡对追捕行为的覆盖参数，零值表示使用缺省值
type PursuitParams struct {
	Lookahead     int   `yaml:"lookahead"`
	TrailCapacity int   `yaml:"trail_capacity"`
	RecordTarget  *bool `yaml:"record_target"`
	Wander        *bool `yaml:"wander"`
}

// Level 关卡描述
type Level struct {
	Name    string        `yaml:"name"`
	Origin  Placement     `yaml:"origin"`
	Respawn RespawnConfig `yaml:"respawn"`
	Pursuit PursuitParams `yaml:"pursuit"`
	Tiles   [][][]string  `yaml:"tiles"`
	Rabbit  Placement     `yaml:"rabbit"`
	Wolf    Placement     `yaml:"wolf"`
	Archers []Placement   `yaml:"archers"`
	Carrots []Placement   `yaml:"carrots"`

	deck *TileDeck
}

// ParseLevel 解析 YAML 格式的关卡
func ParseLevel(data []byte) (*Level, error) {
	lvl := &Level{Respawn: DefaultRespawnConfig}
	if err := yaml.Unmarshal(data, lvl); err != nil {
		return nil, fmt.Errorf("解析关卡失败: %w", err)
	}
	if err := lvl.validate(); err != nil {
		return nil, fmt.Errorf("关卡 %s: %w", lvl.Name, err)
	}
	return lvl, nil
}

// LoadLevel 从文件加载关卡
func LoadLevel(file string) (*Level, error) {
	if ext := path.Ext(file); ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("不支持的关卡文件格式: %s", file)
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return ParseLevel(b)
}

// LoadEmbedded 加载内置关卡
func LoadEmbedded(name string) (*Level, error) {
	b, err := levelFS.ReadFile("levels/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLevel, name)
	}
	return ParseLevel(b)
}

// EmbeddedLevels 返回内置关卡名称（按名称排序）
func EmbeddedLevels() []string {
	entries, err := levelFS.ReadDir("levels")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Deck 返回关卡的静态地块
func (l *Level) Deck() *TileDeck {
	return l.deck
}

func (l *Level) validate() error {
	params := []struct {
		name  string
		value int
	}{
		{"origin.x", l.Origin.X},
		{"origin.y", l.Origin.Y},
		{"respawn.column", l.Respawn.Column},
		{"respawn.increment", l.Respawn.Increment},
	}
	for _, p := range params {
		if p.value < MinLevelParam || p.value > MaxLevelParam {
			return fmt.Errorf("%w: %s=%d", ErrParamRange, p.name, p.value)
		}
	}
	if !l.Respawn.Facing.Valid() {
		return fmt.Errorf("无效的弹出朝向: %d", l.Respawn.Facing)
	}
	if len(l.Tiles) == 0 {
		return ErrNoTiles
	}

	deck, err := NewTileDeck(l.Tiles)
	if err != nil {
		return err
	}
	if len(deck.Edges()) == 0 {
		return ErrNoTiles
	}
	l.deck = deck

	onDeck := make(map[CellLocation]bool)
	for _, c := range deck.Cells() {
		onDeck[c] = true
	}
	check := func(what string, p Placement) error {
		if !onDeck[p.Cell()] {
			return fmt.Errorf("%w: %s %v", ErrOffDeck, what, p.Cell())
		}
		if !p.Facing.Valid() {
			return fmt.Errorf("%s 的朝向无效: %d", what, p.Facing)
		}
		return nil
	}
	if err := check("rabbit", l.Rabbit); err != nil {
		return err
	}
	if err := check("wolf", l.Wolf); err != nil {
		return err
	}
	for i, a := range l.Archers {
		if err := check(fmt.Sprintf("archers[%d]", i), a); err != nil {
			return err
		}
	}
	for i, c := range l.Carrots {
		if err := check(fmt.Sprintf("carrots[%d]", i), c); err != nil {
			return err
		}
	}
	return nil
}
