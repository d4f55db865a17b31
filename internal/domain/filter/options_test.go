package filter

import (
	"testing"

	"github.com/phrazzld/coursedir-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func optionValues(opts []Option) []string {
	values := make([]string, 0, len(opts))
	for _, o := range opts {
		values = append(values, o.Value)
	}
	return values
}

func TestFieldOptions(t *testing.T) {
	t.Parallel()

	for _, level := range append([]domain.Level{domain.LevelAll}, domain.Levels...) {
		opts := FieldOptions(level)
		if assert.NotEmpty(t, opts) {
			assert.Equal(t, Option{Value: domain.All, Label: "All Fields"}, opts[0], "level %s", level)
		}
	}

	diploma := optionValues(FieldOptions(domain.LevelDiploma))
	assert.Contains(t, diploma, "paramedical")
	assert.NotContains(t, diploma, "medicine")

	integrated := optionValues(FieldOptions(domain.LevelIntegrated))
	assert.Equal(t, []string{
		"all", "integrated-law", "integrated-science", "integrated-management",
		"integrated-technology", "integrated-education", "others",
	}, integrated)

	assert.Equal(t, FieldOptions(domain.LevelAll), FieldOptions("unknown"))
}

func TestFieldAllowed(t *testing.T) {
	t.Parallel()

	assert.True(t, FieldAllowed(domain.LevelDiploma, domain.FieldAll))
	assert.True(t, FieldAllowed(domain.LevelDiploma, domain.FieldAgriculture))
	assert.False(t, FieldAllowed(domain.LevelDiploma, domain.FieldMedicine))
	assert.True(t, FieldAllowed(domain.LevelProfessional, domain.FieldMedicine))
	assert.True(t, FieldAllowed(domain.LevelAll, domain.FieldVeterinary))
	assert.False(t, FieldAllowed(domain.LevelAll, "alchemy"))
}

func TestCareerOptions(t *testing.T) {
	t.Parallel()

	courses := []domain.Course{
		{ID: "a", CareerProspects: []string{"Software Engineer", "Data Scientist"}},
		{ID: "b", CareerProspects: []string{"Doctor", "accountant", "Data Scientist"}},
	}

	got := CareerOptions(courses)
	assert.Equal(t, []string{"accountant", "Data Scientist", "Doctor", "Software Engineer"}, optionValues(got),
		"options are de-duplicated and collated case-insensitively")
	for _, o := range got {
		assert.Equal(t, o.Value, o.Label)
	}

	assert.Empty(t, CareerOptions(nil))
}

func TestCourseOptions(t *testing.T) {
	t.Parallel()

	courses := testCourses()
	assert.Equal(t, []Option{
		{Value: "mbbs", Label: "MBBS"},
		{Value: "nursing", Label: "B.Sc Nursing"},
	}, CourseOptions(courses, domain.FieldMedicine))
	assert.Len(t, CourseOptions(courses, domain.FieldAll), len(courses))
}

func TestCollegeTypeOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Option{
		{Value: "engineering", Label: "Engineering"},
		{Value: "medicine", Label: "Medicine"},
	}, CollegeTypeOptions(testCourses()))
}

func TestCourseSuggestions(t *testing.T) {
	t.Parallel()

	courses := testCourses()
	assert.Empty(t, CourseSuggestions(courses, "e"), "single characters give no suggestions")
	assert.Equal(t, []string{"MBBS"}, CourseSuggestions(courses, "surgery"))
	assert.Equal(t, []string{"Computer Science", "B.Sc Nursing", "Diploma in Mechanical Engineering"},
		CourseSuggestions(courses, "ing"))

	many := make([]domain.Course, 0, 8)
	for i := 0; i < 8; i++ {
		many = append(many, domain.Course{Name: "Engineering " + string(rune('A'+i))})
	}
	assert.Len(t, CourseSuggestions(many, "engineering"), SuggestionLimit)
}
