package api

import (
	"github.com/phrazzld/coursedir-api/internal/domain"
)

// ListResponse wraps a result set. Criteria echoes the normalized selection
// that produced the items; it is omitted for endpoints that take none.
type ListResponse[T any] struct {
	Items    []T              `json:"items"`
	Count    int              `json:"count"`
	Criteria *domain.Criteria `json:"criteria,omitempty"`
}

func newListResponse[T any](items []T, criteria *domain.Criteria) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{
		Items:    items,
		Count:    len(items),
		Criteria: criteria,
	}
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
