package sim

import (
	"testing"

	"carrothunt/pkg/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampaign(t *testing.T) {
	c, err := NewCampaign(nil, Options{Seed: 3})
	require.NoError(t, err)
	assert.Equal(t, "level1", c.LevelName())
	assert.Len(t, c.Current().Game().Archers, 1)

	c.Current().Step(core.MoveInput(core.NorthWest))
	require.NoError(t, c.Restart())
	assert.Equal(t, core.Cell(8, 2), c.Current().Game().Rabbit.Cell())

	ok, err := c.Next()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "level2", c.LevelName())
	assert.Len(t, c.Current().Game().Archers, 2)

	ok, err = c.Next()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "level2", c.LevelName())
}

func TestCampaignUnknownLevel(t *testing.T) {
	_, err := NewCampaign([]string{"level42"}, Options{})
	assert.ErrorIs(t, err, core.ErrUnknownLevel)
}
