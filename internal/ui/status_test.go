package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"antfarm/internal/core"
)

func TestTitle(t *testing.T) {
	assert.Equal(t, "Ants - Stopped 1t/100ms", Title("ants", Status{Interval: 100 * time.Millisecond}))
	assert.Equal(t, "Simulation - Running 1t/10ms", Title("", Status{Running: true, Interval: 10 * time.Millisecond}))
}

func TestStatusLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:   "Colony",
		Params: []core.Parameter{{Key: "agents", Label: "Agents", Value: "100"}},
	}}}
	lines := statusLines(Status{Running: true, Interval: 50 * time.Millisecond, ShowPaths: true}, snap)
	assert.Equal(t, "running, 1 tick / 50ms", lines[0])
	assert.Equal(t, "paths shown", lines[1])
	assert.Contains(t, lines, "[Colony]")
	assert.Contains(t, lines, "  Agents: 100")
}
