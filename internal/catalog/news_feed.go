package catalog

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mmcdole/gofeed"
	"github.com/phrazzld/coursedir-api/internal/domain"
)

const newsDateLayout = "2006-01-02"

// ParseNews decodes an RSS or Atom document into news items, in document
// order. The item GUID must be the numeric item id, the first category is the
// tag and the author names the source.
func ParseNews(r io.Reader) ([]domain.NewsItem, error) {
	feed, err := gofeed.NewParser().Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNewsFeed, err)
	}

	items := make([]domain.NewsItem, 0, len(feed.Items))
	for i, item := range feed.Items {
		id, err := strconv.Atoi(strings.TrimSpace(item.GUID))
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: guid %q is not numeric", ErrInvalidNewsFeed, i, item.GUID)
		}

		news := domain.NewsItem{
			ID:      id,
			Title:   strings.TrimSpace(item.Title),
			Date:    item.Published,
			Snippet: strings.TrimSpace(item.Description),
		}
		if item.PublishedParsed != nil {
			news.Date = item.PublishedParsed.UTC().Format(newsDateLayout)
		}
		if len(item.Categories) > 0 {
			news.Tag = strings.TrimSpace(item.Categories[0])
		}
		if len(item.Authors) > 0 && item.Authors[0] != nil {
			news.Source = item.Authors[0].Name
		}

		items = append(items, news)
	}
	return items, nil
}
