package ports

import (
	"context"
	"time"

	"github.com/techconnect/techconnect-api/internal/core/domain"
)

// UserRef is a populated user reference: the stored ID plus the display name
// resolved through the UserDirectory at read time.
type UserRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CommentView is a comment with its author populated.
type CommentView struct {
	Text      string    `json:"text"`
	Author    UserRef   `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// ProjectView is the full project representation returned to callers.
type ProjectView struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	GithubLink   string        `json:"github_link,omitempty"`
	LinkedinLink string        `json:"linkedin_link,omitempty"`
	Tags         []string      `json:"tags"`
	Author       UserRef       `json:"author"`
	Likes        []string      `json:"likes"`
	Comments     []CommentView `json:"comments"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// CreateProjectInput carries the caller-supplied fields for a new project.
type CreateProjectInput struct {
	Title        string
	Description  string
	GithubLink   string
	LinkedinLink string
	Tags         []string
}

// UpdateProjectInput is a partial update. Empty fields leave the stored
// value unchanged (merge-if-truthy; there is no way to clear a field).
type UpdateProjectInput struct {
	Title        string
	Description  string
	GithubLink   string
	LinkedinLink string
	Tags         []string
}

// ProjectService defines use-case operations for projects. Mutations take
// the authenticated principal; update and delete are author-only.
type ProjectService interface {
	Create(ctx context.Context, principal domain.Principal, input CreateProjectInput) (*ProjectView, error)
	Get(ctx context.Context, id string) (*ProjectView, error)
	List(ctx context.Context) ([]*ProjectView, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*ProjectView, error)
	Update(ctx context.Context, principal domain.Principal, id string, input UpdateProjectInput) (*ProjectView, error)
	Delete(ctx context.Context, principal domain.Principal, id string) error
	// ToggleLike flips the principal's membership in the project's like set
	// and returns the updated set of user IDs.
	ToggleLike(ctx context.Context, principal domain.Principal, id string) ([]string, error)
	// AddComment prepends a comment by the principal and returns the full
	// populated comment list, newest first.
	AddComment(ctx context.Context, principal domain.Principal, id, text string) ([]CommentView, error)
}
