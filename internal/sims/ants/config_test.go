package ants

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	data := []byte(`
width: 30
height: 20
home: {x: 4, y: 5}
agents: 12
seed: 9
tick_interval: 250ms
food_move_interval: 40
food:
  - {x: 1, y: 1}
  - {x: 29, y: 19}
`)
	cfg, err := ParseConfig(data)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Width:            30,
		Height:           20,
		Home:             C(4, 5),
		Agents:           12,
		Seed:             9,
		TickInterval:     250 * time.Millisecond,
		FoodMoveInterval: 40,
		Food:             []Coordinate{C(1, 1), C(29, 19)},
	}, cfg)
}

func TestParseConfigDefaultsAndErrors(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = ParseConfig([]byte("agents: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Agents)
	assert.Equal(t, 50, cfg.Width)

	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "colony: 3\n"},
		{"home off grid", "width: 5\nheight: 5\nhome: {x: 5, y: 0}\n"},
		{"negative agents", "agents: -1\n"},
		{"food off grid", "food: [{x: 50, y: 0}]\n"},
		{"negative food interval", "food_move_interval: -2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}

	_, err = ParseConfig([]byte("width: 0\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ants.yaml")
	require.NoError(t, os.WriteFile(path, []byte("agents: 7\nseed: 3\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Agents)
	assert.Equal(t, int64(3), cfg.Seed)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFromMap(t *testing.T) {
	assert.Equal(t, DefaultConfig(), FromMap(nil))

	cfg := FromMap(map[string]string{
		"w":                  "20",
		"h":                  "10",
		"home_y":             "3",
		"agents":             "6",
		"seed":               "-4",
		"tick_interval":      "50ms",
		"food_move_interval": "bogus",
	})
	assert.Equal(t, 20, cfg.Width)
	assert.Equal(t, 10, cfg.Height)
	assert.Equal(t, C(10, 3), cfg.Home)
	assert.Equal(t, 6, cfg.Agents)
	assert.Equal(t, int64(-4), cfg.Seed)
	assert.Equal(t, 50*time.Millisecond, cfg.TickInterval)
	assert.Zero(t, cfg.FoodMoveInterval)

	cfg = FromMap(map[string]string{"w": "4", "home_x": "9"})
	assert.Equal(t, C(2, 25), cfg.Home, "out-of-range home_x keeps the centre")
	assert.NoError(t, cfg.Validate())
}

func TestParametersAndSetters(t *testing.T) {
	s := newTestSim(t, 10, 10, C(5, 5), 4)

	p, ok := s.Parameters().Lookup("agents")
	require.True(t, ok)
	assert.Equal(t, "4", p.Value)

	assert.True(t, s.SetIntParameter("agents", 9))
	assert.Len(t, s.Agents(), 4, "agent count applies on reset")
	s.Reset(0)
	assert.Len(t, s.Agents(), 9)

	assert.True(t, s.SetIntParameter("food_move_interval", 3))
	assert.Equal(t, 3, s.Config().FoodMoveInterval)
	assert.True(t, s.SetIntParameter("tick_interval_ms", 30))
	p, _ = s.Parameters().Lookup("tick_interval")
	assert.Equal(t, "30ms", p.Value)

	assert.False(t, s.SetIntParameter("agents", -1))
	assert.False(t, s.SetIntParameter("home_x", 10))
	assert.True(t, s.SetIntParameter("home_x", 1))
	assert.False(t, s.SetIntParameter("nope", 1))

	p, ok = s.Parameters().Lookup("tick")
	require.True(t, ok)
	assert.Equal(t, "0", p.Value)
}
