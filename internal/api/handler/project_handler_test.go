package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/techconnect/techconnect-api/internal/core/domain"
	"github.com/techconnect/techconnect-api/internal/core/ports"
)

type stubProjectService struct {
	createFn       func(ctx context.Context, principal domain.Principal, input ports.CreateProjectInput) (*ports.ProjectView, error)
	getFn          func(ctx context.Context, id string) (*ports.ProjectView, error)
	listFn         func(ctx context.Context) ([]*ports.ProjectView, error)
	listByAuthorFn func(ctx context.Context, authorID string) ([]*ports.ProjectView, error)
	updateFn       func(ctx context.Context, principal domain.Principal, id string, input ports.UpdateProjectInput) (*ports.ProjectView, error)
	deleteFn       func(ctx context.Context, principal domain.Principal, id string) error
	toggleLikeFn   func(ctx context.Context, principal domain.Principal, id string) ([]string, error)
	addCommentFn   func(ctx context.Context, principal domain.Principal, id, text string) ([]ports.CommentView, error)
}

func (s *stubProjectService) Create(ctx context.Context, principal domain.Principal, input ports.CreateProjectInput) (*ports.ProjectView, error) {
	return s.createFn(ctx, principal, input)
}

func (s *stubProjectService) Get(ctx context.Context, id string) (*ports.ProjectView, error) {
	return s.getFn(ctx, id)
}

func (s *stubProjectService) List(ctx context.Context) ([]*ports.ProjectView, error) {
	return s.listFn(ctx)
}

func (s *stubProjectService) ListByAuthor(ctx context.Context, authorID string) ([]*ports.ProjectView, error) {
	return s.listByAuthorFn(ctx, authorID)
}

func (s *stubProjectService) Update(ctx context.Context, principal domain.Principal, id string, input ports.UpdateProjectInput) (*ports.ProjectView, error) {
	return s.updateFn(ctx, principal, id, input)
}

func (s *stubProjectService) Delete(ctx context.Context, principal domain.Principal, id string) error {
	return s.deleteFn(ctx, principal, id)
}

func (s *stubProjectService) ToggleLike(ctx context.Context, principal domain.Principal, id string) ([]string, error) {
	return s.toggleLikeFn(ctx, principal, id)
}

func (s *stubProjectService) AddComment(ctx context.Context, principal domain.Principal, id, text string) ([]ports.CommentView, error) {
	return s.addCommentFn(ctx, principal, id, text)
}

func newTestContext(e *echo.Echo, method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func asAlice(c echo.Context) {
	c.Set("user_id", "u1")
	c.Set("name", "Alice")
	c.Set("role", domain.RoleMember)
}

func TestProjectHandler_Create_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubProjectService{
		createFn: func(ctx context.Context, principal domain.Principal, input ports.CreateProjectInput) (*ports.ProjectView, error) {
			if principal.ID != "u1" {
				t.Fatalf("expected principal u1, got %s", principal.ID)
			}
			if input.Title != "Compiler" {
				t.Fatalf("unexpected title %q", input.Title)
			}
			return &ports.ProjectView{ID: "p1", Title: input.Title, Author: ports.UserRef{ID: "u1", Name: "Alice"}}, nil
		},
	}
	handler := NewProjectHandler(stub)

	c, rec := newTestContext(e, http.MethodPost, "/api/projects", `{"title":"Compiler","description":"A toy compiler","tags":["go"]}`)
	asAlice(c)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var view ports.ProjectView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if view.ID != "p1" || view.Author.Name != "Alice" {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestProjectHandler_Create_MissingPrincipal(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := NewProjectHandler(&stubProjectService{})

	c, _ := newTestContext(e, http.MethodPost, "/api/projects", `{"title":"Compiler","description":"x"}`)

	err := handler.Create(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestProjectHandler_Create_ValidationFailure(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := NewProjectHandler(&stubProjectService{
		createFn: func(ctx context.Context, principal domain.Principal, input ports.CreateProjectInput) (*ports.ProjectView, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	c, _ := newTestContext(e, http.MethodPost, "/api/projects", `{"description":"no title"}`)
	asAlice(c)

	err := handler.Create(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestProjectHandler_Update_ForbiddenPassesThrough(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := NewProjectHandler(&stubProjectService{
		updateFn: func(ctx context.Context, principal domain.Principal, id string, input ports.UpdateProjectInput) (*ports.ProjectView, error) {
			return nil, domain.ErrForbidden
		},
	})

	c, _ := newTestContext(e, http.MethodPut, "/api/projects/p1", `{"title":"New"}`)
	c.SetParamNames("id")
	c.SetParamValues("p1")
	asAlice(c)

	err := handler.Update(c)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden to pass through, got %v", err)
	}
}

func TestProjectHandler_ToggleLike_ReturnsSet(t *testing.T) {
	e := echo.New()
	handler := NewProjectHandler(&stubProjectService{
		toggleLikeFn: func(ctx context.Context, principal domain.Principal, id string) ([]string, error) {
			if id != "p1" || principal.ID != "u1" {
				t.Fatalf("unexpected args: %s %s", id, principal.ID)
			}
			return []string{"u1", "u2"}, nil
		},
	})

	c, rec := newTestContext(e, http.MethodPut, "/api/projects/p1/like", "")
	c.SetParamNames("id")
	c.SetParamValues("p1")
	asAlice(c)

	if err := handler.ToggleLike(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var likes []string
	if err := json.Unmarshal(rec.Body.Bytes(), &likes); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(likes) != 2 || likes[0] != "u1" {
		t.Fatalf("unexpected likes: %v", likes)
	}
}

func TestProjectHandler_ToggleLike_NotFoundPassesThrough(t *testing.T) {
	e := echo.New()
	handler := NewProjectHandler(&stubProjectService{
		toggleLikeFn: func(ctx context.Context, principal domain.Principal, id string) ([]string, error) {
			return nil, domain.ErrProjectNotFound
		},
	})

	c, _ := newTestContext(e, http.MethodPut, "/api/projects/ghost/like", "")
	c.SetParamNames("id")
	c.SetParamValues("ghost")
	asAlice(c)

	if err := handler.ToggleLike(c); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectHandler_AddComment_ReturnsPopulatedList(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := NewProjectHandler(&stubProjectService{
		addCommentFn: func(ctx context.Context, principal domain.Principal, id, text string) ([]ports.CommentView, error) {
			if text != "great work" {
				t.Fatalf("unexpected text %q", text)
			}
			return []ports.CommentView{
				{Text: text, Author: ports.UserRef{ID: principal.ID, Name: "Alice"}},
			}, nil
		},
	})

	c, rec := newTestContext(e, http.MethodPost, "/api/projects/p1/comments", `{"text":"great work"}`)
	c.SetParamNames("id")
	c.SetParamValues("p1")
	asAlice(c)

	if err := handler.AddComment(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var comments []ports.CommentView
	if err := json.Unmarshal(rec.Body.Bytes(), &comments); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(comments) != 1 || comments[0].Author.Name != "Alice" {
		t.Fatalf("unexpected comments: %+v", comments)
	}
}

func TestProjectHandler_AddComment_EmptyTextRejected(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := NewProjectHandler(&stubProjectService{
		addCommentFn: func(ctx context.Context, principal domain.Principal, id, text string) ([]ports.CommentView, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	c, _ := newTestContext(e, http.MethodPost, "/api/projects/p1/comments", `{"text":""}`)
	c.SetParamNames("id")
	c.SetParamValues("p1")
	asAlice(c)

	err := handler.AddComment(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestProjectHandler_ListByAuthor_ForwardsParam(t *testing.T) {
	e := echo.New()
	handler := NewProjectHandler(&stubProjectService{
		listByAuthorFn: func(ctx context.Context, authorID string) ([]*ports.ProjectView, error) {
			if authorID != "u7" {
				t.Fatalf("expected u7, got %s", authorID)
			}
			return []*ports.ProjectView{}, nil
		},
	})

	c, rec := newTestContext(e, http.MethodGet, "/api/projects/user/u7", "")
	c.SetParamNames("userId")
	c.SetParamValues("u7")
	asAlice(c)

	if err := handler.ListByAuthor(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
