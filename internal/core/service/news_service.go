package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/techconnect/techconnect-api/internal/api/metrics"
	"github.com/techconnect/techconnect-api/internal/core/domain"
	"github.com/techconnect/techconnect-api/internal/core/ports"
)

type NewsService struct {
	repo   ports.NewsRepository
	users  ports.UserDirectory
	logger zerolog.Logger
}

func NewNewsService(repo ports.NewsRepository, users ports.UserDirectory, logger zerolog.Logger) *NewsService {
	return &NewsService{repo: repo, users: users, logger: logger}
}

// Create publishes a news article. Admin only.
func (s *NewsService) Create(ctx context.Context, principal domain.Principal, input ports.CreateArticleInput) (*ports.ArticleView, error) {
	if !principal.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Description == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	category := domain.Category(input.Category)
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, input.Category)
	}

	now := time.Now().UTC()
	article := &domain.NewsArticle{
		Title:        input.Title,
		Description:  input.Description,
		ExternalLink: input.ExternalLink,
		Category:     category,
		AuthorID:     principal.ID,
		Likes:        []string{},
		SavedBy:      []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, article)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create article")
		return nil, err
	}

	metrics.ArticlesPublishedTotal.WithLabelValues(string(created.Category)).Inc()
	s.logger.Info().Str("article_id", created.ID).Str("category", string(created.Category)).Msg("article published")

	return s.populate(ctx, created)
}

// Get returns a single article with its author populated.
func (s *NewsService) Get(ctx context.Context, id string) (*ports.ArticleView, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, article)
}

// List returns all articles, newest first.
func (s *NewsService) List(ctx context.Context) ([]*ports.ArticleView, error) {
	return s.list(ctx, ports.ListArticlesFilter{})
}

// ListSavedBy returns the articles the principal has saved, newest first.
func (s *NewsService) ListSavedBy(ctx context.Context, principal domain.Principal) ([]*ports.ArticleView, error) {
	return s.list(ctx, ports.ListArticlesFilter{SavedBy: principal.ID})
}

func (s *NewsService) list(ctx context.Context, filter ports.ListArticlesFilter) ([]*ports.ArticleView, error) {
	articles, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(articles))
	for i, a := range articles {
		ids[i] = a.AuthorID
	}
	names, err := resolveNames(ctx, s.users, ids)
	if err != nil {
		return nil, err
	}

	views := make([]*ports.ArticleView, len(articles))
	for i, a := range articles {
		views[i] = toArticleView(a, names)
	}
	return views, nil
}

// Update applies a partial update to an article. Admin only; the existence
// check runs first so a missing article reports not-found to everyone.
func (s *NewsService) Update(ctx context.Context, principal domain.Principal, id string, input ports.UpdateArticleInput) (*ports.ArticleView, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !principal.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	if input.Title != "" {
		article.Title = input.Title
	}
	if input.Description != "" {
		article.Description = input.Description
	}
	if input.ExternalLink != "" {
		article.ExternalLink = input.ExternalLink
	}
	if input.Category != "" {
		category := domain.Category(input.Category)
		if !category.IsValid() {
			return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, input.Category)
		}
		article.Category = category
	}
	article.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, article); err != nil {
		s.logger.Error().Err(err).Str("article_id", id).Msg("failed to update article")
		return nil, err
	}

	return s.populate(ctx, article)
}

// Delete removes an article. Admin only.
func (s *NewsService) Delete(ctx context.Context, principal domain.Principal, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if !principal.IsAdmin() {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("article_id", id).Msg("article deleted")
	return nil
}

// ToggleLike flips the principal's like on the article and returns the
// updated like set.
func (s *NewsService) ToggleLike(ctx context.Context, principal domain.Principal, id string) ([]string, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	liked := domain.Contains(article.Likes, principal.ID)
	article.Likes = domain.ToggleMembership(article.Likes, principal.ID)
	article.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, article); err != nil {
		return nil, err
	}

	result := "added"
	if liked {
		result = "removed"
	}
	metrics.EngagementTogglesTotal.WithLabelValues("article", "like", result).Inc()

	return article.Likes, nil
}

// ToggleSave flips the principal's membership in the article's saved_by set
// and returns the updated set.
func (s *NewsService) ToggleSave(ctx context.Context, principal domain.Principal, id string) ([]string, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	saved := domain.Contains(article.SavedBy, principal.ID)
	article.SavedBy = domain.ToggleMembership(article.SavedBy, principal.ID)
	article.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, article); err != nil {
		return nil, err
	}

	result := "added"
	if saved {
		result = "removed"
	}
	metrics.EngagementTogglesTotal.WithLabelValues("article", "save", result).Inc()

	return article.SavedBy, nil
}

func (s *NewsService) populate(ctx context.Context, a *domain.NewsArticle) (*ports.ArticleView, error) {
	names, err := resolveNames(ctx, s.users, []string{a.AuthorID})
	if err != nil {
		return nil, err
	}
	return toArticleView(a, names), nil
}
