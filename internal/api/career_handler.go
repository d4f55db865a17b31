package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/coursedir-api/internal/api/shared"
	"github.com/phrazzld/coursedir-api/internal/platform/logger"
	"github.com/phrazzld/coursedir-api/internal/service"
)

// newsQuery bounds the tag filter for the news endpoint.
type newsQuery struct {
	Tag string `validate:"max=64"`
}

// CareerHandler handles career and career news HTTP requests
type CareerHandler struct {
	catalogService service.CatalogService
	logger         *slog.Logger
}

// NewCareerHandler creates a new CareerHandler
func NewCareerHandler(catalogService service.CatalogService, logger *slog.Logger) *CareerHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CareerHandler")
	}

	return &CareerHandler{
		catalogService: catalogService,
		logger:         logger.With(slog.String("component", "career_handler")),
	}
}

// ListCareers handles GET /api/careers requests.
// Supported query parameters: q (exact career name), field, region.
func (h *CareerHandler) ListCareers(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseCriteria(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	normalized := h.catalogService.NormalizeCriteria(criteria)
	rows := h.catalogService.FilterCareers(r.Context(), criteria)

	shared.RespondWithJSON(w, r, http.StatusOK, newListResponse(rows, &normalized))
}

// GetCareer handles GET /api/careers/{name} requests.
// Unknown names get a synthesized record rather than a 404.
func (h *CareerHandler) GetCareer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	name, err := getPathParam(r, "name")
	if err != nil {
		log.Debug("invalid career name", slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "")
		return
	}

	details := h.catalogService.GetCareerDetails(r.Context(), name)
	shared.RespondWithJSON(w, r, http.StatusOK, details)
}

// ListNews handles GET /api/news requests, optionally filtered by tag.
func (h *CareerHandler) ListNews(w http.ResponseWriter, r *http.Request) {
	q := newsQuery{Tag: r.URL.Query().Get(paramTag)}
	if err := shared.ValidateRequest(q); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	items := h.catalogService.FilterNews(r.Context(), q.Tag)
	shared.RespondWithJSON(w, r, http.StatusOK, newListResponse(items, nil))
}
