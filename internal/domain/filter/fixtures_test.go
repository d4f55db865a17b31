package filter

import (
	"github.com/phrazzld/coursedir-api/internal/domain"
)

var testStates = []domain.State{
	{Name: "Karnataka", Districts: []string{"Bangalore", "Mysore", "Belgaum", "Mangalore"}},
	{Name: "Delhi", Districts: []string{"New Delhi", "North Delhi", "South Delhi", "East Delhi"}},
	{Name: "Tamil Nadu", Districts: []string{"Chennai", "Coimbatore", "Madurai", "Salem"}},
}

func testCourses() []domain.Course {
	return []domain.Course{
		{
			ID:          "comp-science",
			Name:        "Computer Science",
			Field:       domain.FieldEngineering,
			Level:       domain.LevelUndergraduate,
			Description: "Study of algorithms, programming and software systems.",
			Colleges: []domain.College{
				{Name: "Indian Institute of Technology Delhi", Location: "New Delhi, Delhi"},
				{Name: "RV College of Engineering", Location: "Bangalore, Karnataka"},
			},
			CareerProspects: []string{"Software Engineer", "Data Scientist"},
		},
		{
			ID:          "mbbs",
			Name:        "MBBS",
			Field:       domain.FieldMedicine,
			Level:       domain.LevelProfessional,
			Description: "Bachelor of Medicine and Bachelor of Surgery.",
			Colleges: []domain.College{
				{Name: "Apollo Hospitals", Location: "Chennai, Tamil Nadu"},
				{Name: "Madras Medical College", Location: "Chennai, Tamil Nadu"},
			},
			CareerProspects: []string{"Doctor"},
		},
		{
			ID:          "nursing",
			Name:        "B.Sc Nursing",
			Field:       domain.FieldMedicine,
			Level:       domain.LevelUndergraduate,
			Description: "Clinical nursing practice and patient care.",
			Colleges: []domain.College{
				{Name: "Apollo Hospitals", Location: "Chennai, Tamil Nadu"},
				{Name: "Bangalore University", Location: "Bangalore, Karnataka"},
			},
			CareerProspects: []string{"Nurse", "Doctor"},
		},
		{
			ID:              "dip-mech",
			Name:            "Diploma in Mechanical Engineering",
			Field:           domain.FieldEngineering,
			Level:           domain.LevelDiploma,
			Description:     "Hands-on training in machines and manufacturing.",
			CareerProspects: []string{"Mechanical Technician"},
		},
	}
}

// fakeCollegeIndex de-duplicates by name and keeps the first course's field,
// mirroring the catalog index.
type fakeCollegeIndex struct {
	colleges []domain.College
	fields   map[string]map[domain.Field]bool
}

func newFakeCollegeIndex(courses []domain.Course) *fakeCollegeIndex {
	idx := &fakeCollegeIndex{fields: make(map[string]map[domain.Field]bool)}
	for _, course := range courses {
		for _, college := range course.Colleges {
			if _, seen := idx.fields[college.Name]; !seen {
				idx.fields[college.Name] = make(map[domain.Field]bool)
				college.Field = course.Field
				idx.colleges = append(idx.colleges, college)
			}
			idx.fields[college.Name][course.Field] = true
		}
	}
	return idx
}

func (f *fakeCollegeIndex) Colleges() []domain.College {
	out := make([]domain.College, len(f.colleges))
	copy(out, f.colleges)
	return out
}

func (f *fakeCollegeIndex) CollegeHasField(name string, field domain.Field) bool {
	return f.fields[name][field]
}

func courseNames(courses []domain.Course) []string {
	names := make([]string, 0, len(courses))
	for _, c := range courses {
		names = append(names, c.Name)
	}
	return names
}

func collegeNames(colleges []domain.College) []string {
	names := make([]string, 0, len(colleges))
	for _, c := range colleges {
		names = append(names, c.Name)
	}
	return names
}
