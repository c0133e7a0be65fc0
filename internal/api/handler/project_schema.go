package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createProjectRequest struct {
	Title        string   `json:"title"        validate:"required"`
	Description  string   `json:"description"  validate:"required"`
	GithubLink   string   `json:"githubLink"   validate:"omitempty,url"`
	LinkedinLink string   `json:"linkedinLink" validate:"omitempty,url"`
	Tags         []string `json:"tags"`
}

// updateProjectRequest carries a partial update: every field is optional and
// empty values leave the stored field untouched.
type updateProjectRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	GithubLink   string   `json:"githubLink"   validate:"omitempty,url"`
	LinkedinLink string   `json:"linkedinLink" validate:"omitempty,url"`
	Tags         []string `json:"tags"`
}

type addCommentRequest struct {
	Text string `json:"text" validate:"required"`
}
