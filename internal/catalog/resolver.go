package catalog

import (
	"github.com/phrazzld/coursedir-api/internal/domain"
)

// DefaultSalary is reported for careers missing from the salary table.
var DefaultSalary = domain.SalaryRange{India: "₹5-15 LPA", Global: "$60K-120K/year"}

// DefaultGrowth is the growth line for careers without a curated record.
const DefaultGrowth = "Steady growth in opportunities"

// CareersForCourse returns one summary per career prospect of the course, in
// the course's own order. An unknown course yields an empty slice.
//
// Curated careers report their entry-level salaries and short-term outlook;
// every other career takes its salary from the salary table and a generic
// growth line.
func (c *Catalog) CareersForCourse(courseID string) []domain.CareerSummary {
	course, ok := c.CourseByID(courseID)
	if !ok {
		return []domain.CareerSummary{}
	}

	out := make([]domain.CareerSummary, 0, len(course.CareerProspects))
	for _, name := range course.CareerProspects {
		summary := domain.CareerSummary{
			Title:  name,
			Field:  course.Field,
			Salary: c.Salary(name),
			Growth: DefaultGrowth,
		}
		if curated, ok := c.curated[name]; ok {
			summary.Salary = domain.SalaryRange{
				India:  curated.JobMarket.India.SalaryRange.Entry,
				Global: curated.JobMarket.Global.SalaryRange.Entry,
			}
			summary.Growth = curated.FutureOutlook.ShortTerm
			summary.Curated = true
		}
		out = append(out, summary)
	}
	return out
}

// CareerDetails returns the curated record for name, matched exactly, or a
// generic record built for it. It never fails: the generic record lists
// every course whose prospects include name, in catalog order.
func (c *Catalog) CareerDetails(name string) domain.CareerDetails {
	if curated, ok := c.curated[name]; ok {
		return curated.Clone()
	}
	return c.fallbackCareer(name)
}

// Salary returns the salary table entry for the career, or DefaultSalary.
func (c *Catalog) Salary(name string) domain.SalaryRange {
	if salary, ok := c.salaries[name]; ok {
		return salary
	}
	return c.defaultSalary
}

func (c *Catalog) fallbackCareer(name string) domain.CareerDetails {
	courses := make([]domain.CourseRef, 0)
	for _, id := range c.idx.careerCourses[name] {
		course, _ := c.CourseByID(id)
		courses = append(courses, domain.CourseRef{ID: course.ID, Name: course.Name, Field: course.Field})
	}

	return domain.CareerDetails{
		Career:      name,
		Courses:     courses,
		Description: name + " is a professional role that requires specialized education and skills.",
		Skills:      []string{"Technical Skills", "Communication", "Problem Solving", "Teamwork"},
		JobMarket: domain.JobMarket{
			India: domain.MarketOutlook{
				Demand:          "Medium",
				Locations:       []string{"Major Metropolitan Cities", "Tier-II Cities"},
				CompaniesHiring: []string{"Various Organizations"},
				SalaryRange: domain.SalaryBands{
					Entry:  "₹4 - 8 LPA",
					Mid:    "₹8 - 15 LPA",
					Senior: "₹15 - 30+ LPA",
				},
			},
			Global: domain.MarketOutlook{
				Demand:          "Medium",
				Locations:       []string{"Various Global Markets"},
				CompaniesHiring: []string{"International Organizations"},
				SalaryRange: domain.SalaryBands{
					Entry:  "$50K - 80K",
					Mid:    "$80K - 120K",
					Senior: "$120K - 200K+",
				},
			},
		},
		FutureOutlook: domain.FutureOutlook{
			ShortTerm:      DefaultGrowth,
			LongTerm:       "Potential evolution with technological advancements",
			EmergingTrends: []string{"Digital Transformation", "Remote Work", "Specialized Skills"},
		},
		Education: domain.EducationPath{
			RequiredDegrees:     []string{"Bachelor's Degree", "Master's Degree (for advancement)"},
			Certifications:      []string{"Professional Certifications"},
			ContinuingEducation: []string{"Specialized Training", "Professional Development"},
		},
	}
}
