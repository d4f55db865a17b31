package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/coursedir-api/internal/domain"
)

var validate = validator.New()

// Data is the raw content of a catalog, as decoded from the catalog
// document plus the news feed.
type Data struct {
	Courses       []domain.Course               `yaml:"courses"        validate:"dive"`
	States        []domain.State                `yaml:"states"         validate:"dive"`
	Careers       []domain.CareerDetails        `yaml:"careers"        validate:"dive"`
	Salaries      map[string]domain.SalaryRange `yaml:"salaries"`
	DefaultSalary domain.SalaryRange            `yaml:"default_salary"`
	News          []domain.NewsItem             `yaml:"-"`
}

// Catalog is the immutable, indexed course directory.
//
// Catalog methods return copies, so callers may modify results without
// affecting the catalog.
type Catalog struct {
	courses       []domain.Course
	states        []domain.State
	news          []domain.NewsItem
	curated       map[string]domain.CareerDetails
	salaries      map[string]domain.SalaryRange
	defaultSalary domain.SalaryRange

	idx *index
}

// New validates data and builds a catalog from it. Course identifiers must be
// unique and curated careers may appear only once.
func New(data Data) (*Catalog, error) {
	if err := validate.Struct(data); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return nil, fmt.Errorf("%w: %s failed on %q", ErrInvalidCatalog, first.Namespace(), first.Tag())
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	seen := make(map[string]bool, len(data.Courses))
	for i, course := range data.Courses {
		if err := course.Validate(); err != nil {
			return nil, fmt.Errorf("%w: course %d: %w", ErrInvalidCatalog, i, err)
		}
		if seen[course.ID] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCourseID, course.ID)
		}
		seen[course.ID] = true
	}

	curated := make(map[string]domain.CareerDetails, len(data.Careers))
	for _, career := range data.Careers {
		if _, dup := curated[career.Career]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCareer, career.Career)
		}
		career = career.Clone()
		career.Curated = true
		curated[career.Career] = career
	}

	salaries := make(map[string]domain.SalaryRange, len(data.Salaries))
	for name, salary := range data.Salaries {
		salaries[name] = salary
	}

	defaultSalary := data.DefaultSalary
	if defaultSalary.India == "" {
		defaultSalary.India = DefaultSalary.India
	}
	if defaultSalary.Global == "" {
		defaultSalary.Global = DefaultSalary.Global
	}

	courses := make([]domain.Course, 0, len(data.Courses))
	for _, course := range data.Courses {
		courses = append(courses, course.Clone())
	}

	c := &Catalog{
		courses:       courses,
		states:        append([]domain.State(nil), data.States...),
		news:          append([]domain.NewsItem(nil), data.News...),
		curated:       curated,
		salaries:      salaries,
		defaultSalary: defaultSalary,
	}
	c.idx = buildIndex(c.courses)
	return c, nil
}

// Courses returns a copy of every course in catalog order.
func (c *Catalog) Courses() []domain.Course {
	out := make([]domain.Course, 0, len(c.courses))
	for _, course := range c.courses {
		out = append(out, course.Clone())
	}
	return out
}

// States returns a copy of the state/district table in display order.
func (c *Catalog) States() []domain.State {
	out := make([]domain.State, 0, len(c.states))
	for _, state := range c.states {
		state.Districts = slices.Clone(state.Districts)
		out = append(out, state)
	}
	return out
}

// News returns a copy of every news item in feed order.
func (c *Catalog) News() []domain.NewsItem {
	return slices.Clone(c.news)
}

// Stats summarises the catalog size for startup logging.
type Stats struct {
	Courses  int
	Colleges int
	Careers  int
	Curated  int
	News     int
}

// Stats reports how many records of each kind the catalog holds.
func (c *Catalog) Stats() Stats {
	return Stats{
		Courses:  len(c.courses),
		Colleges: len(c.idx.colleges),
		Careers:  len(c.idx.careerNames),
		Curated:  len(c.curated),
		News:     len(c.news),
	}
}
