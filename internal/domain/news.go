package domain

// NewsItem is a static career news headline, filtered by tag only.
type NewsItem struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Source  string `json:"source"`
	Snippet string `json:"snippet"`
	Tag     string `json:"tag"`
}
