package catalog

import (
	"github.com/phrazzld/coursedir-api/internal/domain"
	"github.com/phrazzld/coursedir-api/internal/domain/filter"
)

// index holds the lookup tables derived from the course list. It is built
// in a single pass and never changes afterwards.
type index struct {
	courseByID map[string]int

	// colleges is de-duplicated by exact name, in first-occurrence order.
	colleges      []domain.College
	collegeByName map[string]int

	// collegeCourses maps a college name to the courses that list it.
	collegeCourses map[string][]string
	collegeFields  map[string]map[domain.Field]bool

	// careerNames holds each distinct career prospect once, in
	// first-occurrence order.
	careerNames   []string
	careerCourses map[string][]string
}

func buildIndex(courses []domain.Course) *index {
	idx := &index{
		courseByID:     make(map[string]int, len(courses)),
		collegeByName:  make(map[string]int),
		collegeCourses: make(map[string][]string),
		collegeFields:  make(map[string]map[domain.Field]bool),
		careerCourses:  make(map[string][]string),
	}

	for i, course := range courses {
		idx.courseByID[course.ID] = i

		for _, college := range course.Colleges {
			name := college.ID()
			if _, seen := idx.collegeByName[name]; !seen {
				college.Field = course.Field
				college.Rating = filter.CollegeRating(name)
				idx.collegeByName[name] = len(idx.colleges)
				idx.colleges = append(idx.colleges, college)
				idx.collegeFields[name] = make(map[domain.Field]bool)
			}
			idx.collegeFields[name][course.Field] = true
			idx.collegeCourses[name] = appendUnique(idx.collegeCourses[name], course.ID)
		}

		for _, career := range course.CareerProspects {
			if _, seen := idx.careerCourses[career]; !seen {
				idx.careerNames = append(idx.careerNames, career)
			}
			idx.careerCourses[career] = appendUnique(idx.careerCourses[career], course.ID)
		}
	}

	return idx
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

// CourseByID returns a copy of the course with the given identifier.
func (c *Catalog) CourseByID(id string) (domain.Course, bool) {
	i, ok := c.idx.courseByID[id]
	if !ok {
		return domain.Course{}, false
	}
	return c.courses[i].Clone(), true
}

// CollegesByIDs resolves college identifiers to their de-duplicated records,
// in first-occurrence order. Repeated identifiers and identifiers with no
// matching college are skipped.
func (c *Catalog) CollegesByIDs(ids []string) []domain.College {
	out := make([]domain.College, 0, len(ids))
	emitted := make(map[int]bool, len(ids))
	for _, id := range ids {
		i, ok := c.idx.collegeByName[id]
		if !ok || emitted[i] {
			continue
		}
		emitted[i] = true
		out = append(out, c.idx.colleges[i])
	}
	return out
}

// Colleges returns a copy of the de-duplicated college list in catalog order.
// Each college carries the field of the first course that lists it.
func (c *Catalog) Colleges() []domain.College {
	out := make([]domain.College, len(c.idx.colleges))
	copy(out, c.idx.colleges)
	return out
}

// CollegeHasField reports whether any course listing the named college
// belongs to field.
func (c *Catalog) CollegeHasField(name string, field domain.Field) bool {
	return c.idx.collegeFields[name][field]
}

// CollegeCourseIDs returns the identifiers of the courses listing the named
// college, in catalog order.
func (c *Catalog) CollegeCourseIDs(name string) []string {
	return append([]string{}, c.idx.collegeCourses[name]...)
}

// CareerNames returns each distinct career prospect once, in the order it
// first appears in the catalog.
func (c *Catalog) CareerNames() []string {
	return append([]string{}, c.idx.careerNames...)
}

// CareerCourseIDs returns the identifiers of the courses whose prospects
// include name exactly, in catalog order.
func (c *Catalog) CareerCourseIDs(name string) []string {
	return append([]string{}, c.idx.careerCourses[name]...)
}
