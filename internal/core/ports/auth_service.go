package ports

import (
	"context"

	"github.com/techconnect/techconnect-api/internal/core/domain"
)

// RegisterInput carries the fields collected at registration.
type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	College        string
	GithubUsername string
	Role           string // defaults to member when empty
}

// AuthService defines registration and login use cases.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns a signed token and the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
