package sim

import (
	"fmt"

	"carrothunt/pkg/core"
)

// Campaign 按顺序进行的一组关卡
type Campaign struct {
	names []string
	index int
	opts  Options
	sim   *Simulation
}

// NewCampaign 创建战役并加载第一关，names 为空时使用全部内置关卡
func NewCampaign(names []string, opts Options) (*Campaign, error) {
	if len(names) == 0 {
		names = core.EmbeddedLevels()
	}
	if len(names) == 0 {
		return nil, core.ErrUnknownLevel
	}
	c := &Campaign{names: names, opts: opts}
	if err := c.load(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Campaign) load() error {
	lvl, err := core.LoadEmbedded(c.names[c.index])
	if err != nil {
		return fmt.Errorf("加载关卡失败: %w", err)
	}
	c.sim = New(lvl, c.opts)
	return nil
}

// Current 当前关卡的模拟
func (c *Campaign) Current() *Simulation {
	return c.sim
}

// LevelName 当前关卡名称
func (c *Campaign) LevelName() string {
	return c.names[c.index]
}

// Next 进入下一关；已经是最后一关时返回 false
func (c *Campaign) Next() (bool, error) {
	if c.index+1 >= len(c.names) {
		return false, nil
	}
	c.index++
	if err := c.load(); err != nil {
		return false, err
	}
	return true, nil
}

// Restart 重新开始当前关卡
func (c *Campaign) Restart() error {
	return c.load()
}
