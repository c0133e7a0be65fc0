package domain

import "time"

// Category classifies a news article.
type Category string

const (
	CategoryAI            Category = "AI"
	CategoryWebDev        Category = "Web Development"
	CategoryCybersecurity Category = "Cybersecurity"
	CategoryDataScience   Category = "Data Science"
	CategoryGeneralTech   Category = "General Tech"
)

var validCategories = map[Category]struct{}{
	CategoryAI:            {},
	CategoryWebDev:        {},
	CategoryCybersecurity: {},
	CategoryDataScience:   {},
	CategoryGeneralTech:   {},
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	_, ok := validCategories[c]
	return ok
}

// NewsArticle is an admin-published tech-news post. Likes and SavedBy hold
// user IDs with at-most-one membership per user.
type NewsArticle struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ExternalLink string    `json:"external_link,omitempty"`
	Category     Category  `json:"category"`
	AuthorID     string    `json:"author_id"`
	Likes        []string  `json:"likes"`
	SavedBy      []string  `json:"saved_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
