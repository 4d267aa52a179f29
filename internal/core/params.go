package core

import "log/slog"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
)

// Parameter describes a single configuration value exposed by a simulation.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of parameters exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// LogValue renders the snapshot as nested slog groups keyed by parameter key.
func (s ParameterSnapshot) LogValue() slog.Value {
	groups := make([]slog.Attr, 0, len(s.Groups))
	for _, g := range s.Groups {
		attrs := make([]any, 0, len(g.Params))
		for _, p := range g.Params {
			attrs = append(attrs, slog.String(p.Key, p.Value))
		}
		groups = append(groups, slog.Group(g.Name, attrs...))
	}
	return slog.GroupValue(groups...)
}

// ParametersProvider is implemented by sims that can describe their
// configuration.
type ParametersProvider interface {
	Parameters() ParameterSnapshot
}
