package snake

import (
	"strconv"

	"snake/internal/core"
)

// Parameters describes the active configuration.
func (s *State) Parameters() core.ParameterSnapshot {
	cfg := s.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("area_size", "Area size", cfg.AreaSize),
				intParam("min_tail", "Minimum tail length", cfg.MinimumTailLength),
				int64Param("seed", "Seed", cfg.Seed),
			},
		},
		{
			Name:    "Policy",
			Summary: "Collision and trimming rules",
			Params: []core.Parameter{
				boolParam("freeze_on_collision", "Freeze on collision", cfg.Policy.FreezeOnCollision),
				intParam("trim_cap", "Trim cap (0 = unbounded)", cfg.Policy.TrimCap),
			},
		},
	}}
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

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
