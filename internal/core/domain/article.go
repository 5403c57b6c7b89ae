package domain

import "time"

// ArticleCategory selects which of a user's two history collections an
// operation targets.
type ArticleCategory string

const (
	CategoryHeadlines  ArticleCategory = "headlines"
	CategoryEverything ArticleCategory = "everything"
)

// Valid reports whether the category names a known collection.
func (c ArticleCategory) Valid() bool {
	return c == CategoryHeadlines || c == CategoryEverything
}

// SavedArticle is one news item persisted to a user's history collection.
//
// Articles are exclusively owned by one user, appended in save order, and
// never updated in place. PublishedAt is kept as the upstream string since
// the news API does not guarantee a parseable format.
type SavedArticle struct {
	ArticleID   string          `json:"articleID"`
	UserID      string          `json:"-"`
	Category    ArticleCategory `json:"-"`
	Tag         string          `json:"category"` // capitalized search query/category
	Title       string          `json:"title"`
	Content     string          `json:"content"`
	Description string          `json:"description"`
	URL         string          `json:"url"`
	URLToImage  string          `json:"urlToImage"`
	Author      string          `json:"author"`
	PublishedAt string          `json:"publishedAt"`
	Source      NewsSource      `json:"source"`
	SavedAt     time.Time       `json:"savedAt"`
}
