package ui

import (
	"fmt"
	"strings"
	"time"

	"antfarm/internal/core"
)

// Status is the front-end state the HUD shows next to the sim's own numbers.
type Status struct {
	Running   bool
	Interval  time.Duration
	ShowPaths bool
}

// Title renders the window caption for the current status.
func Title(name string, st Status) string {
	state := "Stopped"
	if st.Running {
		state = "Running"
	}
	return fmt.Sprintf("%s - %s 1t/%dms", displayName(name), state, st.Interval.Milliseconds())
}

func displayName(name string) string {
	if name == "" {
		return "Simulation"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// statusLines lays out the HUD text: run state first, then every parameter
// group the sim reports.
func statusLines(st Status, snap core.ParameterSnapshot) []string {
	run := "stopped"
	if st.Running {
		run = "running"
	}
	paths := "hidden"
	if st.ShowPaths {
		paths = "shown"
	}
	lines := []string{
		fmt.Sprintf("%s, 1 tick / %v", run, st.Interval),
		"paths " + paths,
		"",
	}
	for _, group := range snap.Groups {
		lines = append(lines, "["+group.Name+"]")
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	lines = append(lines, "", "space run  n step  tab paths", "up/down speed  r reset  s reseed", "click toggles food")
	return lines
}
