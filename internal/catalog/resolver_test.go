package catalog

import (
	"testing"

	"github.com/phrazzld/coursedir-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCareersForCourse(t *testing.T) {
	t.Parallel()
	c := newTestCatalog(t)

	got := c.CareersForCourse("mbbs")
	require.Len(t, got, 2)

	assert.Equal(t, domain.CareerSummary{
		Title:   "Doctor",
		Field:   domain.FieldMedicine,
		Salary:  domain.SalaryRange{India: "₹6 - 12 LPA", Global: "$180K - 230K"},
		Growth:  "Growing demand for telemedicine",
		Curated: true,
	}, got[0])

	assert.Equal(t, domain.CareerSummary{
		Title:  "Surgeon",
		Field:  domain.FieldMedicine,
		Salary: domain.SalaryRange{India: "₹20-80 LPA", Global: "$200K-500K/year"},
		Growth: DefaultGrowth,
	}, got[1])
}

func TestCareersForCourseFollowsProspectOrder(t *testing.T) {
	t.Parallel()
	c := newTestCatalog(t)

	got := c.CareersForCourse("nursing")
	require.Len(t, got, 2)
	assert.Equal(t, "Nurse", got[0].Title)
	assert.Equal(t, DefaultSalary, got[0].Salary, "careers missing from the salary table get the default")
	assert.Equal(t, "Doctor", got[1].Title)
}

func TestCareersForUnknownCourse(t *testing.T) {
	t.Parallel()
	c := newTestCatalog(t)

	got := c.CareersForCourse("astrophysics")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCareerDetailsCurated(t *testing.T) {
	t.Parallel()
	c := newTestCatalog(t)

	got := c.CareerDetails("Doctor")
	assert.True(t, got.Curated)
	assert.Equal(t, "Doctors diagnose and treat illnesses.", got.Description)
	assert.Equal(t, []domain.CourseRef{{ID: "mbbs", Name: "MBBS", Field: domain.FieldMedicine}}, got.Courses)
}

func TestCareerDetailsFallback(t *testing.T) {
	t.Parallel()
	c := newTestCatalog(t)

	got := c.CareerDetails("Nonexistent Career Name")
	assert.False(t, got.Curated)
	assert.Equal(t, "Nonexistent Career Name", got.Career)
	assert.Equal(t,
		"Nonexistent Career Name is a professional role that requires specialized education and skills.",
		got.Description)
	assert.Empty(t, got.Courses)
	assert.NotNil(t, got.Courses)

	for _, region := range []domain.Region{domain.RegionIndia, domain.RegionGlobal} {
		market := got.JobMarket.For(region)
		assert.Equal(t, "Medium", market.Demand)
		assert.NotEmpty(t, market.SalaryRange.Entry)
		assert.NotEmpty(t, market.SalaryRange.Mid)
		assert.NotEmpty(t, market.SalaryRange.Senior)
	}
	assert.Equal(t, "₹4 - 8 LPA", got.JobMarket.India.SalaryRange.Entry)
	assert.Equal(t, "$120K - 200K+", got.JobMarket.Global.SalaryRange.Senior)
	assert.NotEmpty(t, got.Education.RequiredDegrees)
	assert.NotEmpty(t, got.Skills)
}

func TestCareerDetailsFallbackListsRelatedCourses(t *testing.T) {
	t.Parallel()
	c := newTestCatalog(t)

	got := c.CareerDetails("Surgeon")
	assert.False(t, got.Curated)
	assert.Equal(t, []domain.CourseRef{{ID: "mbbs", Name: "MBBS", Field: domain.FieldMedicine}}, got.Courses)

	// Records are built per call; callers may not see each other's edits.
	got.Skills[0] = "changed"
	assert.Equal(t, "Technical Skills", c.CareerDetails("Surgeon").Skills[0])
}

func TestSalary(t *testing.T) {
	t.Parallel()

	data := testData()
	data.DefaultSalary = domain.SalaryRange{India: "₹1 LPA"}
	c, err := New(data)
	require.NoError(t, err)

	assert.Equal(t, "$200K-500K/year", c.Salary("Surgeon").For(domain.RegionGlobal))
	assert.Equal(t, "₹1 LPA", c.Salary("Nurse").India)
	assert.Equal(t, DefaultSalary.Global, c.Salary("Nurse").Global, "missing default halves fall back")
}
