package service

import (
	"context"

	"github.com/techconnect/techconnect-api/internal/core/domain"
	"github.com/techconnect/techconnect-api/internal/core/ports"
)

// resolveNames looks up display names for a set of user IDs through the
// directory, deduplicating first. Returned map may miss ids whose user no
// longer exists; callers render those with an empty name.
func resolveNames(ctx context.Context, dir ports.UserDirectory, ids []string) (map[string]string, error) {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	if len(unique) == 0 {
		return map[string]string{}, nil
	}
	return dir.DisplayNames(ctx, unique)
}

// projectRefIDs collects every user reference a project view needs resolved:
// the author plus each comment's author.
func projectRefIDs(projects ...*domain.Project) []string {
	var ids []string
	for _, p := range projects {
		ids = append(ids, p.AuthorID)
		for _, c := range p.Comments {
			ids = append(ids, c.AuthorID)
		}
	}
	return ids
}

func toCommentViews(comments []domain.Comment, names map[string]string) []ports.CommentView {
	out := make([]ports.CommentView, len(comments))
	for i, c := range comments {
		out[i] = ports.CommentView{
			Text:      c.Text,
			Author:    ports.UserRef{ID: c.AuthorID, Name: names[c.AuthorID]},
			CreatedAt: c.CreatedAt,
		}
	}
	return out
}

func toProjectView(p *domain.Project, names map[string]string) *ports.ProjectView {
	return &ports.ProjectView{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		GithubLink:   p.GithubLink,
		LinkedinLink: p.LinkedinLink,
		Tags:         p.Tags,
		Author:       ports.UserRef{ID: p.AuthorID, Name: names[p.AuthorID]},
		Likes:        p.Likes,
		Comments:     toCommentViews(p.Comments, names),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toArticleView(a *domain.NewsArticle, names map[string]string) *ports.ArticleView {
	return &ports.ArticleView{
		ID:           a.ID,
		Title:        a.Title,
		Description:  a.Description,
		ExternalLink: a.ExternalLink,
		Category:     string(a.Category),
		Author:       ports.UserRef{ID: a.AuthorID, Name: names[a.AuthorID]},
		Likes:        a.Likes,
		SavedBy:      a.SavedBy,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
