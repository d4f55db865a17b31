package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/coursedir-api/internal/domain"
	"github.com/phrazzld/coursedir-api/internal/domain/filter"
	"github.com/phrazzld/coursedir-api/internal/platform/logger"
)

// CatalogReader is the read-only view of the catalog the service needs.
// *catalog.Catalog implements it.
type CatalogReader interface {
	filter.CollegeIndex

	Courses() []domain.Course
	States() []domain.State
	News() []domain.NewsItem

	// CourseByID returns the course with the given identifier.
	CourseByID(id string) (domain.Course, bool)

	// CollegesByIDs resolves college identifiers, skipping unknown ones.
	CollegesByIDs(ids []string) []domain.College

	// CareersForCourse returns one summary per career prospect of the course.
	CareersForCourse(courseID string) []domain.CareerSummary

	// CareerDetails returns the curated or synthesized record for a career.
	CareerDetails(name string) domain.CareerDetails

	// Salary returns the one-line salary figures for a career.
	Salary(name string) domain.SalaryRange
}

// CatalogService answers course directory queries.
type CatalogService interface {
	// FilterCourses returns the courses matching the criteria, in catalog order.
	FilterCourses(ctx context.Context, criteria domain.Criteria) []domain.Course

	// FilterColleges returns the de-duplicated colleges matching the criteria.
	FilterColleges(ctx context.Context, criteria domain.Criteria) []domain.College

	// FilterCareers returns one row per (course, career prospect) pair
	// matching the criteria, with the salary for the selected region.
	FilterCareers(ctx context.Context, criteria domain.Criteria) []domain.CareerRow

	// FilterNews returns the news items with the given tag, or all of them.
	FilterNews(ctx context.Context, tag string) []domain.NewsItem

	// GetCourse retrieves a course by its ID.
	GetCourse(ctx context.Context, id string) (*domain.Course, error)

	// GetCollegesByIDs resolves college identifiers in input order.
	GetCollegesByIDs(ctx context.Context, ids []string) []domain.College

	// GetCareersForCourse returns the career summaries for a course.
	GetCareersForCourse(ctx context.Context, courseID string) []domain.CareerSummary

	// GetCareerDetails returns the full record for a career name.
	GetCareerDetails(ctx context.Context, name string) domain.CareerDetails

	// NormalizeCriteria resolves criteria to the form every query uses.
	NormalizeCriteria(criteria domain.Criteria) domain.Criteria

	LevelOptions() []filter.Option
	FieldOptions(level domain.Level) []filter.Option
	SubjectAreaOptions() []filter.Option
	CareerOptions() []filter.Option
	CourseOptions(field domain.Field) []filter.Option
	CollegeTypeOptions() []filter.Option
	StateOptions() []string
	DistrictOptions(state string) []string
	CourseSuggestions(ctx context.Context, term string) []string
}

// catalogServiceImpl implements the CatalogService interface
type catalogServiceImpl struct {
	catalog CatalogReader
	engine  *filter.Engine
	logger  *slog.Logger
}

// NewCatalogService creates a new CatalogService.
// It returns an error if the catalog is nil.
func NewCatalogService(catalog CatalogReader, logger *slog.Logger) (CatalogService, error) {
	if catalog == nil {
		return nil, domain.NewValidationError("catalog", "cannot be nil", ErrNilCatalog)
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &catalogServiceImpl{
		catalog: catalog,
		engine:  filter.NewEngine(catalog.States()),
		logger:  logger.With(slog.String("component", "catalog_service")),
	}, nil
}

// FilterCourses implements CatalogService.FilterCourses
func (s *catalogServiceImpl) FilterCourses(ctx context.Context, criteria domain.Criteria) []domain.Course {
	courses := s.engine.Courses(s.catalog.Courses(), criteria)
	s.logQuery(ctx, "courses", criteria, len(courses))
	return courses
}

// FilterColleges implements CatalogService.FilterColleges
func (s *catalogServiceImpl) FilterColleges(ctx context.Context, criteria domain.Criteria) []domain.College {
	colleges := s.engine.Colleges(s.catalog, criteria)
	s.logQuery(ctx, "colleges", criteria, len(colleges))
	return colleges
}

// FilterCareers implements CatalogService.FilterCareers
func (s *catalogServiceImpl) FilterCareers(ctx context.Context, criteria domain.Criteria) []domain.CareerRow {
	region := s.engine.Normalize(criteria).Region
	rows := s.engine.Careers(s.catalog.Courses(), criteria)
	for i := range rows {
		rows[i].Salary = s.catalog.Salary(rows[i].Career).For(region)
	}
	s.logQuery(ctx, "careers", criteria, len(rows))
	return rows
}

// FilterNews implements CatalogService.FilterNews
func (s *catalogServiceImpl) FilterNews(ctx context.Context, tag string) []domain.NewsItem {
	items := filter.News(s.catalog.News(), tag)
	logger.FromContextOrDefault(ctx, s.logger).DebugContext(ctx, "filtered news",
		slog.String("tag", tag),
		slog.Int("results", len(items)))
	return items
}

// GetCourse implements CatalogService.GetCourse
func (s *catalogServiceImpl) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if id == "" {
		return nil, domain.NewValidationError("id", "cannot be empty", domain.ErrEmptyID)
	}

	course, ok := s.catalog.CourseByID(id)
	if !ok {
		log.DebugContext(ctx, "course not found", slog.String("course_id", id))
		return nil, NewCatalogServiceError("get_course", fmt.Sprintf("course %q", id), domain.ErrCourseNotFound)
	}

	return &course, nil
}

// GetCollegesByIDs implements CatalogService.GetCollegesByIDs
func (s *catalogServiceImpl) GetCollegesByIDs(ctx context.Context, ids []string) []domain.College {
	colleges := s.catalog.CollegesByIDs(ids)
	if skipped := len(ids) - len(colleges); skipped > 0 {
		logger.FromContextOrDefault(ctx, s.logger).DebugContext(ctx, "skipped unknown college ids",
			slog.Int("requested", len(ids)),
			slog.Int("skipped", skipped))
	}
	return colleges
}

// GetCareersForCourse implements CatalogService.GetCareersForCourse
func (s *catalogServiceImpl) GetCareersForCourse(ctx context.Context, courseID string) []domain.CareerSummary {
	return s.catalog.CareersForCourse(courseID)
}

// GetCareerDetails implements CatalogService.GetCareerDetails
func (s *catalogServiceImpl) GetCareerDetails(ctx context.Context, name string) domain.CareerDetails {
	details := s.catalog.CareerDetails(name)
	if !details.Curated {
		logger.FromContextOrDefault(ctx, s.logger).DebugContext(ctx, "synthesized career details",
			slog.String("career", name),
			slog.Int("related_courses", len(details.Courses)))
	}
	return details
}

// NormalizeCriteria implements CatalogService.NormalizeCriteria
func (s *catalogServiceImpl) NormalizeCriteria(criteria domain.Criteria) domain.Criteria {
	return s.engine.Normalize(criteria)
}

// LevelOptions implements CatalogService.LevelOptions
func (s *catalogServiceImpl) LevelOptions() []filter.Option {
	return append([]filter.Option(nil), filter.LevelOptions...)
}

// FieldOptions implements CatalogService.FieldOptions
func (s *catalogServiceImpl) FieldOptions(level domain.Level) []filter.Option {
	return filter.FieldOptions(level)
}

// SubjectAreaOptions implements CatalogService.SubjectAreaOptions
func (s *catalogServiceImpl) SubjectAreaOptions() []filter.Option {
	return append([]filter.Option(nil), filter.SubjectAreaOptions...)
}

// CareerOptions implements CatalogService.CareerOptions
func (s *catalogServiceImpl) CareerOptions() []filter.Option {
	return filter.CareerOptions(s.catalog.Courses())
}

// CourseOptions implements CatalogService.CourseOptions
func (s *catalogServiceImpl) CourseOptions(field domain.Field) []filter.Option {
	return filter.CourseOptions(s.catalog.Courses(), field)
}

// CollegeTypeOptions implements CatalogService.CollegeTypeOptions
func (s *catalogServiceImpl) CollegeTypeOptions() []filter.Option {
	return filter.CollegeTypeOptions(s.catalog.Courses())
}

// StateOptions implements CatalogService.StateOptions
func (s *catalogServiceImpl) StateOptions() []string {
	return s.engine.StateOptions()
}

// DistrictOptions implements CatalogService.DistrictOptions
func (s *catalogServiceImpl) DistrictOptions(state string) []string {
	return s.engine.DistrictOptions(state)
}

// CourseSuggestions implements CatalogService.CourseSuggestions
func (s *catalogServiceImpl) CourseSuggestions(ctx context.Context, term string) []string {
	return filter.CourseSuggestions(s.catalog.Courses(), term)
}

func (s *catalogServiceImpl) logQuery(ctx context.Context, kind string, criteria domain.Criteria, results int) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if !log.Enabled(ctx, slog.LevelDebug) {
		return
	}
	normalized := s.engine.Normalize(criteria)
	log.DebugContext(ctx, "filtered "+kind,
		slog.String("search_term", normalized.SearchTerm),
		slog.String("course_level", string(normalized.Level)),
		slog.String("field", string(normalized.Field)),
		slog.String("state", normalized.State),
		slog.String("district", normalized.District),
		slog.String("college_status", string(normalized.CollegeStatus)),
		slog.Int("results", results))
}
