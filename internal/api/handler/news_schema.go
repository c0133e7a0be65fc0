package handler

// Category membership is validated in the domain (values contain spaces,
// which rules out a oneof tag).

type createArticleRequest struct {
	Title        string `json:"title"        validate:"required"`
	Description  string `json:"description"  validate:"required"`
	ExternalLink string `json:"externalLink" validate:"omitempty,url"`
	Category     string `json:"category"     validate:"required"`
}

// updateArticleRequest carries a partial update with merge-if-set semantics.
type updateArticleRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ExternalLink string `json:"externalLink" validate:"omitempty,url"`
	Category     string `json:"category"`
}
