package sim

import (
	"strconv"

	"conways-life/internal/config"
	"conways-life/internal/core"
)

// Parameter keys understood by SetIntParameter and ToggleParameter.
const (
	KeyCellSize      = "cell_size"
	KeyIntervalMs    = "interval_ms"
	KeyRadius        = "influence_radius"
	KeyShowGrid      = "show_grid"
	KeyShowInfluence = "show_influence"
)

var (
	_ core.ParameterControlsProvider = (*Controller)(nil)
	_ core.IntParameterSetter        = (*Controller)(nil)
	_ core.BoolParameterToggler      = (*Controller)(nil)
)

// ParameterControls implements core.ParameterControlsProvider.
func (c *Controller) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: KeyCellSize, Label: "Cell size", Type: core.ParamTypeInt, Choices: config.CellSizes},
		{Key: KeyIntervalMs, Label: "Interval", Type: core.ParamTypeInt, Step: 10, Min: config.MinIntervalMs, Max: config.MaxIntervalMs},
		{Key: KeyRadius, Label: "Influence radius", Type: core.ParamTypeInt, Step: 5, Min: config.MinRadius, Max: config.MaxRadius},
		{Key: KeyShowInfluence, Label: "Influence", Type: core.ParamTypeBool},
		{Key: KeyShowGrid, Label: "Grid", Type: core.ParamTypeBool},
	}
}

// SetIntParameter implements core.IntParameterSetter by dispatching the
// matching command.
func (c *Controller) SetIntParameter(key string, value int) bool {
	var cmd Command
	switch key {
	case KeyCellSize:
		cmd = Resize{CellSize: value}
	case KeyIntervalMs:
		cmd = SetInterval{Ms: value}
	case KeyRadius:
		cmd = SetInfluenceRadius{Px: value}
	default:
		return false
	}
	return c.Dispatch(cmd) == nil
}

// ToggleParameter implements core.BoolParameterToggler.
func (c *Controller) ToggleParameter(key string) bool {
	switch key {
	case KeyShowGrid:
		return c.Dispatch(ToggleGridLines{}) == nil
	case KeyShowInfluence:
		return c.Dispatch(ToggleInfluenceMode{}) == nil
	}
	return false
}

// Parameters returns the current settings for display.
func (c *Controller) Parameters() core.ParameterSnapshot {
	state := "paused"
	if c.running {
		state = "running"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Field",
			Params: []core.Parameter{
				intParam("cols", "Columns", c.Cols(), ""),
				intParam("rows", "Rows", c.Rows(), ""),
				intParam(KeyCellSize, "Cell size", c.cellSize, "px"),
				boolParam(KeyShowGrid, "Grid", c.showGrid),
			},
		},
		{
			Name: "Timing",
			Params: []core.Parameter{
				{Key: "state", Label: "State", Value: state},
				intParam(KeyIntervalMs, "Interval", c.intervalMs, "ms"),
			},
		},
		{
			Name: "Influence",
			Params: []core.Parameter{
				boolParam(KeyShowInfluence, "Influence", c.showInfluence),
				intParam(KeyRadius, "Influence radius", c.radius, "px"),
			},
		},
		{
			Name: "Stats",
			Params: []core.Parameter{
				intParam("generation", "Generation", c.stats.Generation, ""),
				intParam("population", "Population", c.stats.Population, ""),
			},
		},
	}}
}

func intParam(key, label string, value int, unit string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
		Unit:  unit,
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
