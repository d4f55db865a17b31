package filter

import (
	"strings"

	"github.com/phrazzld/coursedir-api/internal/domain"
)

// Courses returns the courses matching c in catalog order.
//
// A course matches when the search term is empty or is a case-insensitive
// substring of its name or description, and its level and field equal the
// selected ones (or the selection is "all").
func (e *Engine) Courses(courses []domain.Course, c domain.Criteria) []domain.Course {
	c = e.Normalize(c)
	term := strings.ToLower(c.SearchTerm)

	out := make([]domain.Course, 0, len(courses))
	for _, course := range courses {
		if term != "" && !matchesText(course, term) {
			continue
		}
		if c.Level != domain.LevelAll && course.Level != c.Level {
			continue
		}
		if c.Field != domain.FieldAll && course.Field != c.Field {
			continue
		}
		out = append(out, course)
	}
	return out
}

// matchesText expects lowerTerm to already be lower-cased.
func matchesText(course domain.Course, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(course.Name), lowerTerm) ||
		strings.Contains(strings.ToLower(course.Description), lowerTerm)
}
