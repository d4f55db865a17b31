package domain

// All is the criteria sentinel meaning "this dimension imposes no
// constraint".
const All = "all"

// CollegeStatus is the ownership/autonomy class used to filter colleges.
type CollegeStatus string

const (
	StatusAll           CollegeStatus = All
	StatusGovernment    CollegeStatus = "government"
	StatusPrivate       CollegeStatus = "private"
	StatusAutonomous    CollegeStatus = "autonomous"
	StatusNonAutonomous CollegeStatus = "non-autonomous"
)

// CollegeStatuses lists the selectable statuses in display order.
var CollegeStatuses = []CollegeStatus{
	StatusGovernment,
	StatusPrivate,
	StatusAutonomous,
	StatusNonAutonomous,
}

// Criteria is the full set of selections for one catalog query. It is
// caller-owned state; the filter engine never keeps it.
//
// Zero and unrecognized values mean "all". Callers should pass criteria
// through filter.Normalize before querying; the engine does this itself.
type Criteria struct {
	SearchTerm    string        `json:"search_term"`
	Level         Level         `json:"level"`
	Field         Field         `json:"field"`
	State         string        `json:"state"`
	District      string        `json:"district"`
	CollegeStatus CollegeStatus `json:"college_status"`
	Region        Region        `json:"region"`
}

// DefaultCriteria returns criteria with every dimension unconstrained and
// the global region selected.
func DefaultCriteria() Criteria {
	return Criteria{
		Level:         LevelAll,
		Field:         FieldAll,
		State:         All,
		District:      All,
		CollegeStatus: StatusAll,
		Region:        RegionGlobal,
	}
}

// IsAll reports whether v is the sentinel or empty.
func IsAll(v string) bool {
	return v == "" || v == All
}
