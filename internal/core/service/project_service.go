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

type ProjectService struct {
	repo   ports.ProjectRepository
	users  ports.UserDirectory
	logger zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, users ports.UserDirectory, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, users: users, logger: logger}
}

// Create posts a new project authored by the principal.
func (s *ProjectService) Create(ctx context.Context, principal domain.Principal, input ports.CreateProjectInput) (*ports.ProjectView, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Description == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	project := &domain.Project{
		Title:        input.Title,
		Description:  input.Description,
		GithubLink:   input.GithubLink,
		LinkedinLink: input.LinkedinLink,
		Tags:         input.Tags,
		AuthorID:     principal.ID,
		Likes:        []string{},
		Comments:     []domain.Comment{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, project)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create project")
		return nil, err
	}

	metrics.ProjectsCreatedTotal.Inc()
	s.logger.Info().Str("project_id", created.ID).Str("author_id", principal.ID).Msg("project created")

	return s.populate(ctx, created)
}

// Get returns a single project with author and comment authors populated.
func (s *ProjectService) Get(ctx context.Context, id string) (*ports.ProjectView, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, project)
}

// List returns all projects, newest first.
func (s *ProjectService) List(ctx context.Context) ([]*ports.ProjectView, error) {
	return s.list(ctx, ports.ListProjectsFilter{})
}

// ListByAuthor returns the projects authored by the given user, newest first.
func (s *ProjectService) ListByAuthor(ctx context.Context, authorID string) ([]*ports.ProjectView, error) {
	return s.list(ctx, ports.ListProjectsFilter{AuthorID: authorID})
}

func (s *ProjectService) list(ctx context.Context, filter ports.ListProjectsFilter) ([]*ports.ProjectView, error) {
	projects, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	names, err := resolveNames(ctx, s.users, projectRefIDs(projects...))
	if err != nil {
		return nil, err
	}

	views := make([]*ports.ProjectView, len(projects))
	for i, p := range projects {
		views[i] = toProjectView(p, names)
	}
	return views, nil
}

// Update applies a partial update to the principal's own project. Empty
// fields in input leave the stored values untouched.
func (s *ProjectService) Update(ctx context.Context, principal domain.Principal, id string, input ports.UpdateProjectInput) (*ports.ProjectView, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project.AuthorID != principal.ID {
		return nil, domain.ErrForbidden
	}

	if input.Title != "" {
		project.Title = input.Title
	}
	if input.Description != "" {
		project.Description = input.Description
	}
	if input.GithubLink != "" {
		project.GithubLink = input.GithubLink
	}
	if input.LinkedinLink != "" {
		project.LinkedinLink = input.LinkedinLink
	}
	if len(input.Tags) > 0 {
		project.Tags = input.Tags
	}
	project.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, project); err != nil {
		s.logger.Error().Err(err).Str("project_id", id).Msg("failed to update project")
		return nil, err
	}

	return s.populate(ctx, project)
}

// Delete removes the principal's own project and its embedded comments.
func (s *ProjectService) Delete(ctx context.Context, principal domain.Principal, id string) error {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if project.AuthorID != principal.ID {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("project_id", id).Str("author_id", principal.ID).Msg("project deleted")
	return nil
}

// ToggleLike flips the principal's like on the project and returns the
// updated like set. Any authenticated user may like any project.
func (s *ProjectService) ToggleLike(ctx context.Context, principal domain.Principal, id string) ([]string, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	liked := domain.Contains(project.Likes, principal.ID)
	project.Likes = domain.ToggleMembership(project.Likes, principal.ID)
	project.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}

	result := "added"
	if liked {
		result = "removed"
	}
	metrics.EngagementTogglesTotal.WithLabelValues("project", "like", result).Inc()

	return project.Likes, nil
}

// AddComment prepends a comment by the principal and returns the populated
// comment list, newest first.
func (s *ProjectService) AddComment(ctx context.Context, principal domain.Principal, id, text string) ([]ports.CommentView, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	project.PrependComment(domain.Comment{
		Text:      text,
		AuthorID:  principal.ID,
		CreatedAt: time.Now().UTC(),
	})
	project.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, project); err != nil {
		s.logger.Error().Err(err).Str("project_id", id).Msg("failed to add comment")
		return nil, err
	}

	metrics.CommentsAddedTotal.Inc()

	names, err := resolveNames(ctx, s.users, projectRefIDs(project))
	if err != nil {
		return nil, err
	}
	return toCommentViews(project.Comments, names), nil
}

func (s *ProjectService) populate(ctx context.Context, p *domain.Project) (*ports.ProjectView, error) {
	names, err := resolveNames(ctx, s.users, projectRefIDs(p))
	if err != nil {
		return nil, err
	}
	return toProjectView(p, names), nil
}
