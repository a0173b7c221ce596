package ants

import (
	"strconv"
	"time"

	"antfarm/internal/core"
)

// Parameters reports the tunables and run counters for the HUD and CLI.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", s.cfg.Width),
				intParam("h", "Height", s.cfg.Height),
				int64Param("seed", "Seed", s.seed),
			},
		},
		{
			Name: "Colony",
			Params: []core.Parameter{
				intParam("agents", "Agents", s.cfg.Agents),
				intParam("home_x", "Home X", s.cfg.Home.X),
				intParam("home_y", "Home Y", s.cfg.Home.Y),
			},
		},
		{
			Name: "Timing",
			Params: []core.Parameter{
				durationParam("tick_interval", "Tick interval", s.cfg.TickInterval),
				intParam("food_move_interval", "Food move interval", s.cfg.FoodMoveInterval),
			},
		},
		{
			Name:    "Run",
			Summary: s.runID.String(),
			Params: []core.Parameter{
				int64Param("tick", "Tick", int64(s.stats.Ticks)),
				intParam("paths", "Known paths", s.paths.Len()),
				intParam("food", "Food cells", len(s.grid.FoodCoordinates())),
				int64Param("invalidations", "Invalidated paths", int64(s.stats.Invalidations)),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// SetIntParameter updates a tunable by key. Colony geometry changes take
// effect on the next Reset; the food move interval applies immediately.
func (s *Simulation) SetIntParameter(key string, value int) bool {
	switch key {
	case "agents":
		if value < 0 {
			return false
		}
		s.cfg.Agents = value
	case "home_x":
		if value < 0 || value >= s.cfg.Width {
			return false
		}
		s.cfg.Home.X = value
	case "home_y":
		if value < 0 || value >= s.cfg.Height {
			return false
		}
		s.cfg.Home.Y = value
	case "food_move_interval":
		if value < 0 {
			return false
		}
		s.cfg.FoodMoveInterval = value
	case "tick_interval_ms":
		if value < 0 {
			return false
		}
		s.cfg.TickInterval = time.Duration(value) * time.Millisecond
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func durationParam(key, label string, value time.Duration) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeDuration,
		Value: value.String(),
	}
}
