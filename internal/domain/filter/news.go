package filter

import (
	"github.com/phrazzld/coursedir-api/internal/domain"
)

// News returns the items tagged tag, or every item for the sentinel, in
// catalog order.
func News(items []domain.NewsItem, tag string) []domain.NewsItem {
	out := make([]domain.NewsItem, 0, len(items))
	for _, item := range items {
		if domain.IsAll(tag) || item.Tag == tag {
			out = append(out, item)
		}
	}
	return out
}
