package filter

import (
	"strings"

	"github.com/phrazzld/coursedir-api/internal/domain"
)

// CollegeIndex is the view of the catalog the college filter needs.
type CollegeIndex interface {
	// Colleges returns the de-duplicated colleges in catalog order, each
	// tagged with the field of the first course that references it.
	Colleges() []domain.College

	// CollegeHasField reports whether any course referencing the college
	// name belongs to field.
	CollegeHasField(name string, field domain.Field) bool
}

// Colleges returns the colleges matching c in catalog order.
//
// A college matches when the search term is empty or a case-insensitive
// substring of its name, some course offering it has the selected field,
// its name satisfies the status heuristic, and its location contains the
// selected state and district. When a field is selected, the returned
// records report that field instead of the first-course field.
func (e *Engine) Colleges(idx CollegeIndex, c domain.Criteria) []domain.College {
	c = e.Normalize(c)
	term := strings.ToLower(c.SearchTerm)

	all := idx.Colleges()
	out := make([]domain.College, 0, len(all))
	for _, college := range all {
		if term != "" && !strings.Contains(strings.ToLower(college.Name), term) {
			continue
		}
		if c.Field != domain.FieldAll && !idx.CollegeHasField(college.Name, c.Field) {
			continue
		}
		if !MatchesStatus(college.Name, c.CollegeStatus) {
			continue
		}
		if !LocationContains(college.Location, c.State) || !LocationContains(college.Location, c.District) {
			continue
		}
		if c.Field != domain.FieldAll {
			college.Field = c.Field
		}
		out = append(out, college)
	}
	return out
}
