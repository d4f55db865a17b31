package catalog

import (
	"testing"

	"github.com/phrazzld/coursedir-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInvalidData(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mutate  func(d *Data)
		wantErr error
	}{
		{
			name: "duplicate course id",
			mutate: func(d *Data) {
				d.Courses = append(d.Courses, d.Courses[0])
			},
			wantErr: ErrDuplicateCourseID,
		},
		{
			name: "missing course name",
			mutate: func(d *Data) {
				d.Courses[0].Name = ""
			},
			wantErr: ErrInvalidCatalog,
		},
		{
			name: "unknown level",
			mutate: func(d *Data) {
				d.Courses[1].Level = "bootcamp"
			},
			wantErr: ErrInvalidCatalog,
		},
		{
			name: "unknown field",
			mutate: func(d *Data) {
				d.Courses[1].Field = "nursing"
			},
			wantErr: domain.ErrInvalidField,
		},
		{
			name: "unnamed college",
			mutate: func(d *Data) {
				d.Courses[1].Colleges[0].Name = ""
			},
			wantErr: ErrInvalidCatalog,
		},
		{
			name: "empty career prospect",
			mutate: func(d *Data) {
				d.Courses[0].CareerProspects = []string{""}
			},
			wantErr: ErrInvalidCatalog,
		},
		{
			name: "duplicate curated career",
			mutate: func(d *Data) {
				d.Careers = append(d.Careers, d.Careers[0])
			},
			wantErr: ErrDuplicateCareer,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data := testData()
			tc.mutate(&data)

			c, err := New(data)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	t.Parallel()

	data := testData()
	c, err := New(data)
	require.NoError(t, err)

	data.Courses[0] = domain.Course{ID: "replaced"}
	data.Salaries["Surgeon"] = domain.SalaryRange{}

	_, ok := c.CourseByID("comp-science")
	assert.True(t, ok)
	assert.Equal(t, "₹20-80 LPA", c.Salary("Surgeon").India)
}

func TestQueryResultsAreCopies(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)

	courses := c.Courses()
	courses[0].Name = "mutated"
	courses[0].CareerProspects[0] = "mutated"

	course, ok := c.CourseByID("mbbs")
	require.True(t, ok)
	course.Colleges[0].Name = "mutated"

	doctor := c.CareerDetails("Doctor")
	doctor.Courses[0].ID = "mutated"

	states := c.States()
	states[0].Districts[0] = "mutated"

	fresh := newTestCatalog(t)
	assert.Equal(t, fresh.Courses(), c.Courses())
	assert.Equal(t, fresh.CareerDetails("Doctor"), c.CareerDetails("Doctor"))
	assert.Equal(t, fresh.States(), c.States())
	assert.Equal(t, fresh.Colleges(), c.Colleges())
}

func TestNewCopiesNestedInput(t *testing.T) {
	t.Parallel()

	data := testData()
	c, err := New(data)
	require.NoError(t, err)

	data.Courses[0].CareerProspects[0] = "mutated"
	data.Careers[0].Courses[0].ID = "mutated"

	course, _ := c.CourseByID("comp-science")
	assert.Equal(t, "Software Engineer", course.CareerProspects[0])
	assert.Equal(t, "mbbs", c.CareerDetails("Doctor").Courses[0].ID)
}

func TestStats(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)
	assert.Equal(t, Stats{Courses: 4, Colleges: 3, Careers: 6, Curated: 1, News: 0}, c.Stats())
}
