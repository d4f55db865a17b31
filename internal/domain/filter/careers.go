package filter

import (
	"github.com/phrazzld/coursedir-api/internal/domain"
)

// Careers flattens courses into one row per career prospect and returns the
// rows matching c, in course order then prospect order.
//
// The field criterion applies to the owning course. The search term is a
// picked career name, so it must equal the prospect exactly; substring
// matches do not count. Salary is left empty for the caller to fill.
func (e *Engine) Careers(courses []domain.Course, c domain.Criteria) []domain.CareerRow {
	c = e.Normalize(c)

	out := make([]domain.CareerRow, 0)
	for _, course := range courses {
		if c.Field != domain.FieldAll && course.Field != c.Field {
			continue
		}
		for _, career := range course.CareerProspects {
			if c.SearchTerm != "" && career != c.SearchTerm {
				continue
			}
			out = append(out, domain.CareerRow{
				Career:   career,
				CourseID: course.ID,
				Course:   course.Name,
				Field:    course.Field,
			})
		}
	}
	return out
}
