package api

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/coursedir-api/internal/api/shared"
	"github.com/phrazzld/coursedir-api/internal/domain"
)

// Query parameter names shared by the list endpoints.
const (
	paramSearch   = "q"
	paramLevel    = "level"
	paramField    = "field"
	paramState    = "state"
	paramDistrict = "district"
	paramStatus   = "status"
	paramRegion   = "region"
	paramTag      = "tag"
)

// criteriaQuery is the raw query string form of domain.Criteria. Values are
// only bounded here; unknown values are normalized to "all" downstream.
type criteriaQuery struct {
	Search   string `validate:"max=100"`
	Level    string `validate:"max=64"`
	Field    string `validate:"max=64"`
	State    string `validate:"max=64"`
	District string `validate:"max=64"`
	Status   string `validate:"max=64"`
	Region   string `validate:"max=16"`
}

func (q criteriaQuery) criteria() domain.Criteria {
	return domain.Criteria{
		SearchTerm:    q.Search,
		Level:         domain.Level(q.Level),
		Field:         domain.Field(q.Field),
		State:         q.State,
		District:      q.District,
		CollegeStatus: domain.CollegeStatus(q.Status),
		Region:        domain.Region(q.Region),
	}
}

// parseCriteria reads the filter criteria from the request query string.
func parseCriteria(r *http.Request) (domain.Criteria, error) {
	values := r.URL.Query()
	q := criteriaQuery{
		Search:   strings.TrimSpace(values.Get(paramSearch)),
		Level:    values.Get(paramLevel),
		Field:    values.Get(paramField),
		State:    values.Get(paramState),
		District: values.Get(paramDistrict),
		Status:   values.Get(paramStatus),
		Region:   values.Get(paramRegion),
	}

	if err := shared.ValidateRequest(q); err != nil {
		return domain.Criteria{}, err
	}
	return q.criteria(), nil
}

// getPathParam extracts a URL path parameter. chi matches on the raw path
// when the request carries one, so the parameter is unescaped only then.
func getPathParam(r *http.Request, paramName string) (string, error) {
	value := chi.URLParam(r, paramName)
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(value)
		if err != nil {
			return "", domain.NewValidationError(paramName, "has invalid encoding", domain.ErrValidation)
		}
		value = unescaped
	}
	if strings.TrimSpace(value) == "" {
		return "", domain.NewValidationError(paramName, "is required", domain.ErrEmptyID)
	}
	return value, nil
}
