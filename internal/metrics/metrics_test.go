package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"antfarm/internal/sims/ants"
)

func newSim(t *testing.T) *ants.Simulation {
	t.Helper()
	logrus.SetLevel(logrus.WarnLevel)
	cfg := ants.DefaultConfig()
	cfg.Width, cfg.Height = 5, 5
	cfg.Home = ants.C(2, 2)
	cfg.Agents = 3
	cfg.Food = []ants.Coordinate{ants.C(3, 3)}
	return ants.NewWithConfig(cfg)
}

func TestRecorderReflectsObservedStats(t *testing.T) {
	s := newSim(t)
	r := NewRecorder()

	assert.Zero(t, testutil.ToFloat64(r.ticks))

	s.AdvanceTick()
	r.Observe(s)

	// Home is beside the food, so every agent publishes on the first tick.
	assert.Equal(t, 1.0, testutil.ToFloat64(r.ticks))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.published))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.knownPaths))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.foodCells))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.agents[ants.FollowPathHome]))
	assert.Zero(t, testutil.ToFloat64(r.agents[ants.FoodHunt]))
	assert.Zero(t, testutil.ToFloat64(r.invalid))
}

func TestRegisterAndServe(t *testing.T) {
	s := newSim(t)
	r := NewRecorder()
	reg := prometheus.NewRegistry()
	require.NoError(t, r.Register(reg))
	assert.Error(t, r.Register(reg), "double registration is rejected")

	s.AdvanceTick()
	r.Observe(s)

	count, err := testutil.GatherAndCount(reg, "antfarm_agents")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()
	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `antfarm_agents{state="follow_path_home"} 3`)
	assert.Contains(t, string(body), "antfarm_ticks_total 1")
}

func TestCountersSurviveReset(t *testing.T) {
	s := newSim(t)
	r := NewRecorder()

	s.AdvanceTick()
	s.AdvanceTick()
	r.Observe(s)
	require.Equal(t, 2.0, testutil.ToFloat64(r.ticks))
	require.Equal(t, 3.0, testutil.ToFloat64(r.published))

	s.Reset(5)
	r.Observe(s)
	assert.Equal(t, 2.0, testutil.ToFloat64(r.ticks), "a reset does not wind counters back")
	assert.Equal(t, 3.0, testutil.ToFloat64(r.published))
	assert.Zero(t, testutil.ToFloat64(r.knownPaths), "gauges follow the current run")

	s.AdvanceTick()
	r.Observe(s)
	assert.Equal(t, 3.0, testutil.ToFloat64(r.ticks))
	assert.Equal(t, 6.0, testutil.ToFloat64(r.published))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.knownPaths))
}
