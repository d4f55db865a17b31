package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/coursedir-api/internal/api/shared"
	"github.com/phrazzld/coursedir-api/internal/domain"
	"github.com/phrazzld/coursedir-api/internal/platform/logger"
	"github.com/phrazzld/coursedir-api/internal/service"
)

// suggestionQuery bounds the search term for course suggestions.
type suggestionQuery struct {
	Term string `validate:"max=100"`
}

// CourseHandler handles course-related HTTP requests
type CourseHandler struct {
	catalogService service.CatalogService
	logger         *slog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(catalogService service.CatalogService, logger *slog.Logger) *CourseHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CourseHandler")
	}

	return &CourseHandler{
		catalogService: catalogService,
		logger:         logger.With(slog.String("component", "course_handler")),
	}
}

// ListCourses handles GET /api/courses requests.
// Supported query parameters: q, level, field.
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseCriteria(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	normalized := h.catalogService.NormalizeCriteria(criteria)
	courses := h.catalogService.FilterCourses(r.Context(), criteria)

	shared.RespondWithJSON(w, r, http.StatusOK, newListResponse(courses, &normalized))
}

// Suggestions handles GET /api/courses/suggestions requests.
func (h *CourseHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	q := suggestionQuery{Term: strings.TrimSpace(r.URL.Query().Get(paramSearch))}
	if err := shared.ValidateRequest(q); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	suggestions := h.catalogService.CourseSuggestions(r.Context(), q.Term)
	shared.RespondWithJSON(w, r, http.StatusOK, newListResponse(suggestions, nil))
}

// GetCourse handles GET /api/courses/{id} requests.
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	course, ok := h.lookupCourse(w, r)
	if !ok {
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, course)
}

// GetCourseColleges handles GET /api/courses/{id}/colleges requests.
// Colleges are resolved in the order the course lists them.
func (h *CourseHandler) GetCourseColleges(w http.ResponseWriter, r *http.Request) {
	course, ok := h.lookupCourse(w, r)
	if !ok {
		return
	}

	colleges := h.catalogService.GetCollegesByIDs(r.Context(), course.CollegeIDs())
	shared.RespondWithJSON(w, r, http.StatusOK, newListResponse(colleges, nil))
}

// GetCourseCareers handles GET /api/courses/{id}/careers requests.
func (h *CourseHandler) GetCourseCareers(w http.ResponseWriter, r *http.Request) {
	course, ok := h.lookupCourse(w, r)
	if !ok {
		return
	}

	careers := h.catalogService.GetCareersForCourse(r.Context(), course.ID)
	shared.RespondWithJSON(w, r, http.StatusOK, newListResponse(careers, nil))
}

// lookupCourse resolves the {id} path parameter, writing the error response
// when the course cannot be found.
func (h *CourseHandler) lookupCourse(w http.ResponseWriter, r *http.Request) (*domain.Course, bool) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathParam(r, "id")
	if err != nil {
		log.Debug("invalid course id", slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "")
		return nil, false
	}

	course, err := h.catalogService.GetCourse(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get course")
		return nil, false
	}

	return course, true
}
