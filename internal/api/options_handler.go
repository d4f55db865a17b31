package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/coursedir-api/internal/api/shared"
	"github.com/phrazzld/coursedir-api/internal/domain"
	"github.com/phrazzld/coursedir-api/internal/service"
)

// OptionsHandler serves the picker option sets used to build filter forms.
type OptionsHandler struct {
	catalogService service.CatalogService
	logger         *slog.Logger
}

// NewOptionsHandler creates a new OptionsHandler
func NewOptionsHandler(catalogService service.CatalogService, logger *slog.Logger) *OptionsHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for OptionsHandler")
	}

	return &OptionsHandler{
		catalogService: catalogService,
		logger:         logger.With(slog.String("component", "options_handler")),
	}
}

// Levels handles GET /api/options/levels requests.
func (h *OptionsHandler) Levels(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, newListResponse(h.catalogService.LevelOptions(), nil))
}

// Fields handles GET /api/options/fields?level= requests.
func (h *OptionsHandler) Fields(w http.ResponseWriter, r *http.Request) {
	level := domain.Level(r.URL.Query().Get(paramLevel))
	shared.RespondWithJSON(w, r, http.StatusOK, newListResponse(h.catalogService.FieldOptions(level), nil))
}

// SubjectAreas handles GET /api/options/subject-areas requests.
func (h *OptionsHandler) SubjectAreas(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, newListResponse(h.catalogService.SubjectAreaOptions(), nil))
}

// Careers handles GET /api/options/careers requests.
func (h *OptionsHandler) Careers(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, newListResponse(h.catalogService.CareerOptions(), nil))
}

// Courses handles GET /api/options/courses?field= requests.
func (h *OptionsHandler) Courses(w http.ResponseWriter, r *http.Request) {
	field := domain.Field(r.URL.Query().Get(paramField))
	shared.RespondWithJSON(w, r, http.StatusOK, newListResponse(h.catalogService.CourseOptions(field), nil))
}

// CollegeTypes handles GET /api/options/college-types requests.
func (h *OptionsHandler) CollegeTypes(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, newListResponse(h.catalogService.CollegeTypeOptions(), nil))
}

// States handles GET /api/options/states requests.
func (h *OptionsHandler) States(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, newListResponse(h.catalogService.StateOptions(), nil))
}

// Districts handles GET /api/options/districts?state= requests.
func (h *OptionsHandler) Districts(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get(paramState)
	shared.RespondWithJSON(w, r, http.StatusOK, newListResponse(h.catalogService.DistrictOptions(state), nil))
}
