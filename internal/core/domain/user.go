package domain

import "time"

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// User models a registered student or professor.
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	College        string    `json:"college,omitempty"`
	GithubUsername string    `json:"github_username,omitempty"`
	PasswordHash   string    `json:"-"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Principal is the authenticated caller identity resolved by the auth layer.
type Principal struct {
	ID   string
	Name string
	Role string
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
