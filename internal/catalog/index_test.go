package catalog

import (
	"testing"

	"github.com/phrazzld/coursedir-api/internal/domain"
	"github.com/phrazzld/coursedir-api/internal/domain/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseByID(t *testing.T) {
	t.Parallel()
	c := newTestCatalog(t)

	course, ok := c.CourseByID("mbbs")
	require.True(t, ok)
	assert.Equal(t, "MBBS", course.Name)

	course, ok = c.CourseByID("astrophysics")
	assert.False(t, ok)
	assert.Equal(t, domain.Course{}, course)
}

func TestCollegesDeduplicatedInFirstOccurrenceOrder(t *testing.T) {
	t.Parallel()
	c := newTestCatalog(t)

	colleges := c.Colleges()
	require.Len(t, colleges, 3)
	assert.Equal(t, "IIT Delhi", colleges[0].Name)
	assert.Equal(t, "AIIMS", colleges[1].Name)
	assert.Equal(t, "Apollo Hospitals", colleges[2].Name)

	assert.Equal(t, domain.FieldEngineering, colleges[0].Field, "first listing course decides the field")
	assert.Equal(t, domain.FieldMedicine, colleges[2].Field)
	for _, college := range colleges {
		assert.Equal(t, filter.CollegeRating(college.Name), college.Rating)
	}

	colleges[0].Name = "mutated"
	assert.Equal(t, "IIT Delhi", c.Colleges()[0].Name, "Colleges returns a copy")
}

func TestCollegesByIDs(t *testing.T) {
	t.Parallel()
	c := newTestCatalog(t)

	got := c.CollegesByIDs([]string{"Apollo Hospitals", "Unknown College", "IIT Delhi"})
	require.Len(t, got, 2)
	assert.Equal(t, "Apollo Hospitals", got[0].Name)
	assert.Equal(t, "IIT Delhi", got[1].Name)

	mbbs, _ := c.CourseByID("mbbs")
	assert.Equal(t, []string{"AIIMS", "Apollo Hospitals"}, collegeNamesOf(c.CollegesByIDs(mbbs.CollegeIDs())))

	assert.Empty(t, c.CollegesByIDs(nil))
}

func TestCollegesByIDsSkipsRepeatedNames(t *testing.T) {
	t.Parallel()

	data := testData()
	for i := range data.Courses {
		if data.Courses[i].ID == "mbbs" {
			data.Courses[i].Colleges = append(data.Courses[i].Colleges, domain.College{Name: "Apollo Hospitals"})
		}
	}
	c, err := New(data)
	require.NoError(t, err)

	mbbs, ok := c.CourseByID("mbbs")
	require.True(t, ok)
	require.Len(t, mbbs.CollegeIDs(), 3)

	assert.Equal(t, []string{"AIIMS", "Apollo Hospitals"}, collegeNamesOf(c.CollegesByIDs(mbbs.CollegeIDs())))
	assert.Equal(t, []string{"IIT Delhi", "AIIMS", "Apollo Hospitals"}, collegeNamesOf(c.Colleges()))
	assert.Equal(t,
		[]string{"Apollo Hospitals", "IIT Delhi"},
		collegeNamesOf(c.CollegesByIDs([]string{"Apollo Hospitals", "IIT Delhi", "Apollo Hospitals"})))
}

func TestCollegeReverseLookups(t *testing.T) {
	t.Parallel()
	c := newTestCatalog(t)

	assert.Equal(t, []string{"mbbs", "nursing", "pharmacy"}, c.CollegeCourseIDs("Apollo Hospitals"))
	assert.Empty(t, c.CollegeCourseIDs("Unknown College"))

	assert.True(t, c.CollegeHasField("Apollo Hospitals", domain.FieldMedicine))
	assert.True(t, c.CollegeHasField("Apollo Hospitals", domain.FieldPharmacy))
	assert.False(t, c.CollegeHasField("Apollo Hospitals", domain.FieldEngineering))
	assert.True(t, c.CollegeHasField("IIT Delhi", domain.FieldPharmacy))
	assert.False(t, c.CollegeHasField("Unknown College", domain.FieldMedicine))
}

func TestCareerIndex(t *testing.T) {
	t.Parallel()
	c := newTestCatalog(t)

	assert.Equal(t,
		[]string{"Software Engineer", "Data Scientist", "Doctor", "Surgeon", "Nurse", "Pharmacist"},
		c.CareerNames())
	assert.Equal(t, []string{"mbbs", "nursing"}, c.CareerCourseIDs("Doctor"))
	assert.Empty(t, c.CareerCourseIDs("doctor"), "career names are exact keys")
}

func TestIndexIsDeterministic(t *testing.T) {
	t.Parallel()

	first := newTestCatalog(t)
	second := newTestCatalog(t)
	assert.Equal(t, first.Colleges(), second.Colleges())
	assert.Equal(t, first.CareerNames(), second.CareerNames())
}

func collegeNamesOf(colleges []domain.College) []string {
	names := make([]string, 0, len(colleges))
	for _, c := range colleges {
		names = append(names, c.Name)
	}
	return names
}
