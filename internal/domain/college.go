package domain

// College is an institution offering one or more courses.
//
// Colleges carry no identifier of their own: the exact, case-sensitive name
// is the identity. Two real institutions sharing a name collapse into one
// record.
type College struct {
	Name     string `json:"name"             yaml:"name"     validate:"required"`
	Location string `json:"location"         yaml:"location"`

	// Field is contextual. The catalog index sets it to the field of the first
	// course referencing the college; a query narrowed by field reports that
	// field instead.
	Field Field `json:"field,omitempty" yaml:"-"`

	// Rating is derived from the name, see filter.CollegeRating.
	Rating float64 `json:"rating,omitempty" yaml:"-"`
}

// ID returns the de-duplication key for the college.
func (c College) ID() string {
	return c.Name
}

// State is a state together with the districts offered as location filters.
type State struct {
	Name      string   `json:"name"      yaml:"name"      validate:"required"`
	Districts []string `json:"districts" yaml:"districts"`
}
