package catalog

import (
	"testing"

	"github.com/phrazzld/coursedir-api/internal/domain"
	"github.com/stretchr/testify/require"
)

func testData() Data {
	return Data{
		Courses: []domain.Course{
			{
				ID:    "comp-science",
				Name:  "Computer Science",
				Field: domain.FieldEngineering,
				Level: domain.LevelUndergraduate,
				Colleges: []domain.College{
					{Name: "IIT Delhi", Location: "New Delhi, Delhi"},
				},
				CareerProspects: []string{"Software Engineer", "Data Scientist"},
			},
			{
				ID:    "mbbs",
				Name:  "MBBS",
				Field: domain.FieldMedicine,
				Level: domain.LevelProfessional,
				Colleges: []domain.College{
					{Name: "AIIMS", Location: "New Delhi, Delhi"},
					{Name: "Apollo Hospitals", Location: "Chennai, Tamil Nadu"},
				},
				CareerProspects: []string{"Doctor", "Surgeon"},
			},
			{
				ID:    "nursing",
				Name:  "B.Sc Nursing",
				Field: domain.FieldMedicine,
				Level: domain.LevelUndergraduate,
				Colleges: []domain.College{
					{Name: "Apollo Hospitals", Location: "Chennai, Tamil Nadu"},
				},
				CareerProspects: []string{"Nurse", "Doctor"},
			},
			{
				ID:    "pharmacy",
				Name:  "Bachelor of Pharmacy",
				Field: domain.FieldPharmacy,
				Level: domain.LevelProfessional,
				Colleges: []domain.College{
					{Name: "Apollo Hospitals", Location: "Chennai, Tamil Nadu"},
					{Name: "IIT Delhi", Location: "New Delhi, Delhi"},
				},
				CareerProspects: []string{"Pharmacist"},
			},
		},
		States: []domain.State{
			{Name: "Delhi", Districts: []string{"New Delhi"}},
			{Name: "Tamil Nadu", Districts: []string{"Chennai"}},
		},
		Careers: []domain.CareerDetails{
			{
				Career:      "Doctor",
				Courses:     []domain.CourseRef{{ID: "mbbs", Name: "MBBS", Field: domain.FieldMedicine}},
				Description: "Doctors diagnose and treat illnesses.",
				JobMarket: domain.JobMarket{
					India:  domain.MarketOutlook{Demand: "High", SalaryRange: domain.SalaryBands{Entry: "₹6 - 12 LPA"}},
					Global: domain.MarketOutlook{Demand: "High", SalaryRange: domain.SalaryBands{Entry: "$180K - 230K"}},
				},
				FutureOutlook: domain.FutureOutlook{ShortTerm: "Growing demand for telemedicine"},
			},
		},
		Salaries: map[string]domain.SalaryRange{
			"Surgeon": {India: "₹20-80 LPA", Global: "$200K-500K/year"},
		},
	}
}

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New(testData())
	require.NoError(t, err)
	return c
}
