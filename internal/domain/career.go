package domain

import "slices"

// Region selects which job market salary and outlook figures are reported.
type Region string

const (
	RegionIndia  Region = "india"
	RegionGlobal Region = "global"
)

// SalaryRange is a one-line salary figure per region.
type SalaryRange struct {
	India  string `json:"india"  yaml:"india"`
	Global string `json:"global" yaml:"global"`
}

// For returns the figure for region r. Anything other than RegionIndia
// reports the global figure.
func (s SalaryRange) For(r Region) string {
	if r == RegionIndia {
		return s.India
	}
	return s.Global
}

// SalaryBands breaks a salary down by seniority.
type SalaryBands struct {
	Entry  string `json:"entry"  yaml:"entry"`
	Mid    string `json:"mid"    yaml:"mid"`
	Senior string `json:"senior" yaml:"senior"`
}

// MarketOutlook describes demand for a career in one region.
type MarketOutlook struct {
	Demand          string      `json:"demand"           yaml:"demand"`
	Locations       []string    `json:"locations"        yaml:"locations"`
	CompaniesHiring []string    `json:"companies_hiring" yaml:"companies_hiring"`
	SalaryRange     SalaryBands `json:"salary_range"     yaml:"salary_range"`
}

// JobMarket holds the India and global outlooks for a career.
type JobMarket struct {
	India  MarketOutlook `json:"india"  yaml:"india"`
	Global MarketOutlook `json:"global" yaml:"global"`
}

// For returns the outlook for region r, defaulting to global.
func (j JobMarket) For(r Region) MarketOutlook {
	if r == RegionIndia {
		return j.India
	}
	return j.Global
}

// FutureOutlook summarises where a career is heading.
type FutureOutlook struct {
	ShortTerm      string   `json:"short_term"      yaml:"short_term"`
	LongTerm       string   `json:"long_term"       yaml:"long_term"`
	EmergingTrends []string `json:"emerging_trends" yaml:"emerging_trends"`
}

// EducationPath lists the qualifications that lead into a career.
type EducationPath struct {
	RequiredDegrees     []string `json:"required_degrees"     yaml:"required_degrees"`
	Certifications      []string `json:"certifications"       yaml:"certifications"`
	ContinuingEducation []string `json:"continuing_education" yaml:"continuing_education"`
}

// CourseRef is the short form of a course used inside career records.
type CourseRef struct {
	ID    string `json:"id"    yaml:"id"`
	Name  string `json:"name"  yaml:"name"`
	Field Field  `json:"field" yaml:"field"`
}

// CareerDetails is the full description of a career. Curated records come
// from the catalog; every other name gets a synthesized record with Curated
// unset.
type CareerDetails struct {
	Career        string        `json:"career"         yaml:"career"         validate:"required"`
	Courses       []CourseRef   `json:"courses"        yaml:"courses"`
	Description   string        `json:"description"    yaml:"description"`
	Skills        []string      `json:"skills"         yaml:"skills"`
	JobMarket     JobMarket     `json:"job_market"     yaml:"job_market"`
	FutureOutlook FutureOutlook `json:"future_outlook" yaml:"future_outlook"`
	Education     EducationPath `json:"education"      yaml:"education"`
	Curated       bool          `json:"curated"        yaml:"-"`
}

// Clone returns a copy of d that shares no slices with it.
func (d CareerDetails) Clone() CareerDetails {
	d.Courses = slices.Clone(d.Courses)
	d.Skills = slices.Clone(d.Skills)
	d.JobMarket.India = d.JobMarket.India.clone()
	d.JobMarket.Global = d.JobMarket.Global.clone()
	d.FutureOutlook.EmergingTrends = slices.Clone(d.FutureOutlook.EmergingTrends)
	d.Education.RequiredDegrees = slices.Clone(d.Education.RequiredDegrees)
	d.Education.Certifications = slices.Clone(d.Education.Certifications)
	d.Education.ContinuingEducation = slices.Clone(d.Education.ContinuingEducation)
	return d
}

func (m MarketOutlook) clone() MarketOutlook {
	m.Locations = slices.Clone(m.Locations)
	m.CompaniesHiring = slices.Clone(m.CompaniesHiring)
	return m
}

// CareerSummary is the card shown for each career a course leads to.
type CareerSummary struct {
	Title   string      `json:"title"`
	Field   Field       `json:"field"`
	Salary  SalaryRange `json:"salary"`
	Growth  string      `json:"growth"`
	Curated bool        `json:"curated"`
}

// CareerRow is one (course, career prospect) pair from the flattened
// career listing.
type CareerRow struct {
	Career   string `json:"career"`
	CourseID string `json:"course_id"`
	Course   string `json:"course"`
	Field    Field  `json:"field"`
	Salary   string `json:"salary,omitempty"`
}
