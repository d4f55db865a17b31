package filter

import (
	"testing"

	"github.com/phrazzld/coursedir-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCollegesApolloDeduplicated(t *testing.T) {
	t.Parallel()
	engine := NewEngine(testStates)
	idx := newFakeCollegeIndex(testCourses())

	got := engine.Colleges(idx, domain.Criteria{Field: domain.FieldMedicine})

	apollo := 0
	for _, college := range got {
		if college.Name == "Apollo Hospitals" {
			apollo++
			assert.Equal(t, domain.FieldMedicine, college.Field)
		}
	}
	assert.Equal(t, 1, apollo, "Apollo Hospitals must appear exactly once")
}

func TestColleges(t *testing.T) {
	t.Parallel()
	engine := NewEngine(testStates)
	idx := newFakeCollegeIndex(testCourses())

	testCases := []struct {
		name     string
		criteria domain.Criteria
		want     []string
	}{
		{
			name:     "all colleges once each in catalog order",
			criteria: domain.Criteria{},
			want: []string{
				"Indian Institute of Technology Delhi",
				"RV College of Engineering",
				"Apollo Hospitals",
				"Madras Medical College",
				"Bangalore University",
			},
		},
		{
			name:     "search on name ignores case",
			criteria: domain.Criteria{SearchTerm: "college"},
			want:     []string{"RV College of Engineering", "Madras Medical College"},
		},
		{
			name:     "type matches any referencing course",
			criteria: domain.Criteria{Field: domain.FieldMedicine},
			want:     []string{"Apollo Hospitals", "Madras Medical College", "Bangalore University"},
		},
		{
			name:     "government heuristic",
			criteria: domain.Criteria{CollegeStatus: domain.StatusGovernment},
			want:     []string{"Indian Institute of Technology Delhi"},
		},
		{
			name:     "autonomous heuristic",
			criteria: domain.Criteria{CollegeStatus: domain.StatusAutonomous},
			want:     []string{"Indian Institute of Technology Delhi", "Bangalore University"},
		},
		{
			name:     "non-autonomous heuristic",
			criteria: domain.Criteria{CollegeStatus: domain.StatusNonAutonomous},
			want:     []string{"RV College of Engineering", "Apollo Hospitals", "Madras Medical College"},
		},
		{
			name:     "state matches location substring",
			criteria: domain.Criteria{State: "Karnataka"},
			want:     []string{"RV College of Engineering", "Bangalore University"},
		},
		{
			name:     "district narrows within state",
			criteria: domain.Criteria{State: "Tamil Nadu", District: "Chennai"},
			want:     []string{"Apollo Hospitals", "Madras Medical College"},
		},
		{
			name:     "district without state is ignored",
			criteria: domain.Criteria{District: "Bangalore"},
			want: []string{
				"Indian Institute of Technology Delhi",
				"RV College of Engineering",
				"Apollo Hospitals",
				"Madras Medical College",
				"Bangalore University",
			},
		},
		{
			name:     "everything composes with AND",
			criteria: domain.Criteria{Field: domain.FieldMedicine, State: "Karnataka", CollegeStatus: domain.StatusPrivate},
			want:     []string{"Bangalore University"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, collegeNames(engine.Colleges(idx, tc.criteria)))
		})
	}
}

func TestCollegesFieldLabel(t *testing.T) {
	t.Parallel()
	engine := NewEngine(testStates)
	idx := newFakeCollegeIndex(testCourses())

	unfiltered := engine.Colleges(idx, domain.Criteria{})
	for _, college := range unfiltered {
		if college.Name == "Bangalore University" {
			assert.Equal(t, domain.FieldMedicine, college.Field, "first referencing course decides the field")
		}
	}

	// Engineering narrows to colleges with an engineering course; the label
	// follows the filter.
	narrowed := engine.Colleges(idx, domain.Criteria{Field: domain.FieldEngineering})
	for _, college := range narrowed {
		assert.Equal(t, domain.FieldEngineering, college.Field)
	}

	again := engine.Colleges(idx, domain.Criteria{})
	assert.Equal(t, unfiltered, again, "narrowing must not mutate the index")
}
