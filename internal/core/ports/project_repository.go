package ports

import (
	"context"

	"github.com/techconnect/techconnect-api/internal/core/domain"
)

// ListProjectsFilter carries the query parameters for listing projects.
type ListProjectsFilter struct {
	AuthorID string // non-empty = only projects authored by this user
}

// ProjectRepository defines persistence operations for projects.
// Update replaces the whole document; concurrent writers race with
// last-write-wins semantics, which is acceptable for engagement toggles.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	// List returns projects matching filter, newest first.
	List(ctx context.Context, filter ListProjectsFilter) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}
