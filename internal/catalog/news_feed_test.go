package catalog

import (
	"strings"
	"testing"

	"github.com/phrazzld/coursedir-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNewsEmbeddedFeed(t *testing.T) {
	t.Parallel()

	raw, err := dataFS.ReadFile(embeddedNews)
	require.NoError(t, err)

	items, err := ParseNews(strings.NewReader(string(raw)))
	require.NoError(t, err)
	require.Len(t, items, 5)

	assert.Equal(t, domain.NewsItem{
		ID:      1,
		Title:   "New Tech Jobs Surge in AI and Machine Learning Sectors",
		Date:    "2023-10-15",
		Source:  "Tech Career Daily",
		Snippet: "Companies worldwide are investing heavily in AI talent with salaries increasing by 25% on average.",
		Tag:     "technology",
	}, items[0])

	tags := make([]string, 0, len(items))
	for _, item := range items {
		tags = append(tags, item.Tag)
	}
	assert.Equal(t, []string{"technology", "healthcare", "engineering", "business", "arts"}, tags)
	assert.Equal(t, "2023-09-20", items[4].Date)
}

func TestParseNewsErrors(t *testing.T) {
	t.Parallel()

	_, err := ParseNews(strings.NewReader("not a feed"))
	assert.ErrorIs(t, err, ErrInvalidNewsFeed)

	doc := strings.Replace(minimalNews, "<guid>7</guid>", "<guid>seven</guid>", 1)
	_, err = ParseNews(strings.NewReader(doc))
	assert.ErrorIs(t, err, ErrInvalidNewsFeed)
	assert.Contains(t, err.Error(), "seven")
}
