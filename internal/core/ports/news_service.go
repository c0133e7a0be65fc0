package ports

import (
	"context"
	"time"

	"github.com/techconnect/techconnect-api/internal/core/domain"
)

// ArticleView is the full news article representation returned to callers.
type ArticleView struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ExternalLink string    `json:"external_link,omitempty"`
	Category     string    `json:"category"`
	Author       UserRef   `json:"author"`
	Likes        []string  `json:"likes"`
	SavedBy      []string  `json:"saved_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateArticleInput carries the caller-supplied fields for a new article.
type CreateArticleInput struct {
	Title        string
	Description  string
	ExternalLink string
	Category     string
}

// UpdateArticleInput is a partial update with merge-if-truthy semantics.
type UpdateArticleInput struct {
	Title        string
	Description  string
	ExternalLink string
	Category     string
}

// NewsService defines use-case operations for news articles. Create, update
// and delete are admin-only; likes and saves require authentication only.
type NewsService interface {
	Create(ctx context.Context, principal domain.Principal, input CreateArticleInput) (*ArticleView, error)
	Get(ctx context.Context, id string) (*ArticleView, error)
	List(ctx context.Context) ([]*ArticleView, error)
	ListSavedBy(ctx context.Context, principal domain.Principal) ([]*ArticleView, error)
	Update(ctx context.Context, principal domain.Principal, id string, input UpdateArticleInput) (*ArticleView, error)
	Delete(ctx context.Context, principal domain.Principal, id string) error
	ToggleLike(ctx context.Context, principal domain.Principal, id string) ([]string, error)
	ToggleSave(ctx context.Context, principal domain.Principal, id string) ([]string, error)
}
