package ports

import (
	"context"

	"github.com/techconnect/techconnect-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// UserDirectory resolves stored user references to display names. It backs
// the read-side population of author fields; implementations may cache.
type UserDirectory interface {
	// DisplayNames returns a map from user ID to name for every id that
	// resolves to a known user. Unknown ids are simply absent from the map.
	DisplayNames(ctx context.Context, ids []string) (map[string]string, error)
}
