package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/coursedir-api/internal/api/shared"
	"github.com/phrazzld/coursedir-api/internal/service"
)

// CollegeHandler handles college-related HTTP requests
type CollegeHandler struct {
	catalogService service.CatalogService
	logger         *slog.Logger
}

// NewCollegeHandler creates a new CollegeHandler
func NewCollegeHandler(catalogService service.CatalogService, logger *slog.Logger) *CollegeHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CollegeHandler")
	}

	return &CollegeHandler{
		catalogService: catalogService,
		logger:         logger.With(slog.String("component", "college_handler")),
	}
}

// ListColleges handles GET /api/colleges requests.
// Supported query parameters: q, field, status, state, district.
func (h *CollegeHandler) ListColleges(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseCriteria(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	normalized := h.catalogService.NormalizeCriteria(criteria)
	colleges := h.catalogService.FilterColleges(r.Context(), criteria)

	shared.RespondWithJSON(w, r, http.StatusOK, newListResponse(colleges, &normalized))
}
