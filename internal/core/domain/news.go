package domain

// NewsSource is the opaque provenance object attached to every upstream article.
type NewsSource struct {
	ID   *string `json:"id"`
	Name string  `json:"name"`
}

// NewsArticle is one item as returned by the news API, passed through to
// clients unmodified.
type NewsArticle struct {
	Source      NewsSource `json:"source"`
	Author      string     `json:"author"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	URLToImage  string     `json:"urlToImage"`
	PublishedAt string     `json:"publishedAt"`
	Content     string     `json:"content"`
}

// NewsResponse mirrors the news API envelope.
type NewsResponse struct {
	Status       string        `json:"status"`
	TotalResults int           `json:"totalResults"`
	Articles     []NewsArticle `json:"articles"`
}
