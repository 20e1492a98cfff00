package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	ParamTypeInt  ParamType = "int"
	ParamTypeBool ParamType = "bool"
)

// Parameter is a single tunable value as shown to the user.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
	Unit  string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of tunables.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup returns the parameter with the given key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterControl describes an adjustable parameter exposed on the HUD.
// Integer controls step through Choices when set, otherwise by Step within
// [Min, Max]. Boolean controls flip on every adjustment.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step    int
	Min     int
	Max     int
	Choices []int
}

// Adjust returns the value one step away from current in direction dir
// (-1 or +1), clamped to the control's range.
func (c ParameterControl) Adjust(current, dir int) int {
	if len(c.Choices) > 0 {
		pos := -1
		for i, v := range c.Choices {
			if v <= current {
				pos = i
			}
		}
		if exact := pos >= 0 && c.Choices[pos] == current; !exact && dir < 0 {
			pos++
		}
		pos += dir
		if pos < 0 {
			pos = 0
		}
		if pos >= len(c.Choices) {
			pos = len(c.Choices) - 1
		}
		return c.Choices[pos]
	}
	step := c.Step
	if step <= 0 {
		step = 1
	}
	next := current + dir*step
	if next < c.Min {
		next = c.Min
	}
	if c.Max > c.Min && next > c.Max {
		next = c.Max
	}
	return next
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter allows HUD interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// BoolParameterToggler allows HUD interactions to flip boolean parameters.
type BoolParameterToggler interface {
	ToggleParameter(key string) bool
}
