package filter

import (
	"github.com/phrazzld/coursedir-api/internal/domain"
)

// Engine runs catalog queries. It holds only the state/district table used
// to validate location criteria and is safe for concurrent use.
type Engine struct {
	states []domain.State
}

// NewEngine creates an Engine that validates districts against states.
func NewEngine(states []domain.State) *Engine {
	copied := make([]domain.State, len(states))
	copy(copied, states)
	return &Engine{states: copied}
}

// Normalize resolves criteria to the canonical form every predicate
// assumes:
//   - empty and unrecognized values become the "all" sentinel
//   - a field that is not offered for the selected level resets to "all"
//   - a district requires a state and must be one of that state's districts
//   - the region defaults to global
//
// Normalize is idempotent.
func (e *Engine) Normalize(c domain.Criteria) domain.Criteria {
	out := c

	if !out.Level.Valid() {
		out.Level = domain.LevelAll
	}

	if domain.IsAll(string(out.Field)) || !FieldAllowed(out.Level, out.Field) {
		out.Field = domain.FieldAll
	}

	if domain.IsAll(out.State) {
		out.State = domain.All
	}
	if domain.IsAll(out.District) || out.State == domain.All || !e.hasDistrict(out.State, out.District) {
		out.District = domain.All
	}

	if !validStatus(out.CollegeStatus) {
		out.CollegeStatus = domain.StatusAll
	}

	if out.Region != domain.RegionIndia {
		out.Region = domain.RegionGlobal
	}

	return out
}

// WithLevel selects level and applies the level/field coupling: a field not
// offered for the new level is reset to "all".
func (e *Engine) WithLevel(c domain.Criteria, level domain.Level) domain.Criteria {
	c.Level = level
	return e.Normalize(c)
}

// WithState selects state and always clears the district.
func (e *Engine) WithState(c domain.Criteria, state string) domain.Criteria {
	c.State = state
	c.District = domain.All
	return e.Normalize(c)
}

// WithDistrict selects district. It is dropped when no state is selected or
// the district is not part of the selected state.
func (e *Engine) WithDistrict(c domain.Criteria, district string) domain.Criteria {
	c.District = district
	return e.Normalize(c)
}

// StateOptions returns the selectable state names in table order.
func (e *Engine) StateOptions() []string {
	names := make([]string, 0, len(e.states))
	for _, s := range e.states {
		names = append(names, s.Name)
	}
	return names
}

// DistrictOptions returns the districts of state. The sentinel and unknown
// states have none.
func (e *Engine) DistrictOptions(state string) []string {
	for _, s := range e.states {
		if s.Name == state {
			districts := make([]string, len(s.Districts))
			copy(districts, s.Districts)
			return districts
		}
	}
	return []string{}
}

func (e *Engine) hasDistrict(state, district string) bool {
	for _, s := range e.states {
		if s.Name != state {
			continue
		}
		for _, d := range s.Districts {
			if d == district {
				return true
			}
		}
	}
	return false
}

func validStatus(s domain.CollegeStatus) bool {
	for _, known := range domain.CollegeStatuses {
		if s == known {
			return true
		}
	}
	return false
}
