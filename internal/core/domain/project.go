package domain

import "time"

// Comment lives embedded in its parent project. It has no identity of its
// own; deleting the project deletes its comments with it.
type Comment struct {
	Text      string    `json:"text" bson:"text"`
	AuthorID  string    `json:"author_id" bson:"author_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Project is a student/professor project post. Likes holds user IDs with
// at-most-one membership per user; Comments are ordered newest first.
type Project struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	GithubLink   string    `json:"github_link,omitempty"`
	LinkedinLink string    `json:"linkedin_link,omitempty"`
	Tags         []string  `json:"tags"`
	AuthorID     string    `json:"author_id"`
	Likes        []string  `json:"likes"`
	Comments     []Comment `json:"comments"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PrependComment inserts a comment at the head of the list (newest first).
func (p *Project) PrependComment(c Comment) {
	p.Comments = append([]Comment{c}, p.Comments...)
}
