package ports

import (
	"context"

	"github.com/techconnect/techconnect-api/internal/core/domain"
)

// ListArticlesFilter carries the query parameters for listing news articles.
type ListArticlesFilter struct {
	SavedBy string // non-empty = only articles whose saved_by set contains this user
}

// NewsRepository defines persistence operations for news articles.
type NewsRepository interface {
	Create(ctx context.Context, a *domain.NewsArticle) (*domain.NewsArticle, error)
	FindByID(ctx context.Context, id string) (*domain.NewsArticle, error)
	// List returns articles matching filter, newest first.
	List(ctx context.Context, filter ListArticlesFilter) ([]*domain.NewsArticle, error)
	Update(ctx context.Context, a *domain.NewsArticle) error
	Delete(ctx context.Context, id string) error
}
