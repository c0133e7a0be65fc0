package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/techconnect/techconnect-api/internal/core/domain"
	"github.com/techconnect/techconnect-api/internal/core/ports"
)

type stubNewsService struct {
	createFn      func(ctx context.Context, principal domain.Principal, input ports.CreateArticleInput) (*ports.ArticleView, error)
	getFn         func(ctx context.Context, id string) (*ports.ArticleView, error)
	listFn        func(ctx context.Context) ([]*ports.ArticleView, error)
	listSavedByFn func(ctx context.Context, principal domain.Principal) ([]*ports.ArticleView, error)
	updateFn      func(ctx context.Context, principal domain.Principal, id string, input ports.UpdateArticleInput) (*ports.ArticleView, error)
	deleteFn      func(ctx context.Context, principal domain.Principal, id string) error
	toggleLikeFn  func(ctx context.Context, principal domain.Principal, id string) ([]string, error)
	toggleSaveFn  func(ctx context.Context, principal domain.Principal, id string) ([]string, error)
}

func (s *stubNewsService) Create(ctx context.Context, principal domain.Principal, input ports.CreateArticleInput) (*ports.ArticleView, error) {
	return s.createFn(ctx, principal, input)
}

func (s *stubNewsService) Get(ctx context.Context, id string) (*ports.ArticleView, error) {
	return s.getFn(ctx, id)
}

func (s *stubNewsService) List(ctx context.Context) ([]*ports.ArticleView, error) {
	return s.listFn(ctx)
}

func (s *stubNewsService) ListSavedBy(ctx context.Context, principal domain.Principal) ([]*ports.ArticleView, error) {
	return s.listSavedByFn(ctx, principal)
}

func (s *stubNewsService) Update(ctx context.Context, principal domain.Principal, id string, input ports.UpdateArticleInput) (*ports.ArticleView, error) {
	return s.updateFn(ctx, principal, id, input)
}

func (s *stubNewsService) Delete(ctx context.Context, principal domain.Principal, id string) error {
	return s.deleteFn(ctx, principal, id)
}

func (s *stubNewsService) ToggleLike(ctx context.Context, principal domain.Principal, id string) ([]string, error) {
	return s.toggleLikeFn(ctx, principal, id)
}

func (s *stubNewsService) ToggleSave(ctx context.Context, principal domain.Principal, id string) ([]string, error) {
	return s.toggleSaveFn(ctx, principal, id)
}

func asAdmin(c echo.Context) {
	c.Set("user_id", "u9")
	c.Set("name", "Root")
	c.Set("role", domain.RoleAdmin)
}

func TestNewsHandler_Create_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubNewsService{
		createFn: func(ctx context.Context, principal domain.Principal, input ports.CreateArticleInput) (*ports.ArticleView, error) {
			if principal.Role != domain.RoleAdmin {
				t.Fatalf("expected admin principal, got %s", principal.Role)
			}
			if input.Category != "Data Science" {
				t.Fatalf("unexpected category %q", input.Category)
			}
			return &ports.ArticleView{ID: "n1", Title: input.Title, Category: input.Category}, nil
		},
	}
	handler := NewNewsHandler(stub)

	c, rec := newTestContext(e, http.MethodPost, "/api/news", `{"title":"Go 2 released","description":"Finally.","category":"Data Science"}`)
	asAdmin(c)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var view ports.ArticleView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if view.ID != "n1" || view.Category != "Data Science" {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestNewsHandler_Update_NotFoundBeforeForbidden(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	// A non-admin updating a missing article must surface not-found, not
	// forbidden. The service owns that ordering; the handler passes it on.
	handler := NewNewsHandler(&stubNewsService{
		updateFn: func(ctx context.Context, principal domain.Principal, id string, input ports.UpdateArticleInput) (*ports.ArticleView, error) {
			return nil, domain.ErrArticleNotFound
		},
	})

	c, _ := newTestContext(e, http.MethodPut, "/api/news/ghost", `{"title":"New"}`)
	c.SetParamNames("id")
	c.SetParamValues("ghost")
	asAlice(c)

	if err := handler.Update(c); !errors.Is(err, domain.ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestNewsHandler_Delete_ForbiddenPassesThrough(t *testing.T) {
	e := echo.New()
	handler := NewNewsHandler(&stubNewsService{
		deleteFn: func(ctx context.Context, principal domain.Principal, id string) error {
			return domain.ErrForbidden
		},
	})

	c, _ := newTestContext(e, http.MethodDelete, "/api/news/n1", "")
	c.SetParamNames("id")
	c.SetParamValues("n1")
	asAlice(c)

	if err := handler.Delete(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestNewsHandler_ToggleSave_ReturnsSet(t *testing.T) {
	e := echo.New()
	handler := NewNewsHandler(&stubNewsService{
		toggleSaveFn: func(ctx context.Context, principal domain.Principal, id string) ([]string, error) {
			return []string{"u1"}, nil
		},
	})

	c, rec := newTestContext(e, http.MethodPut, "/api/news/n1/save", "")
	c.SetParamNames("id")
	c.SetParamValues("n1")
	asAlice(c)

	if err := handler.ToggleSave(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var saved []string
	if err := json.Unmarshal(rec.Body.Bytes(), &saved); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(saved) != 1 || saved[0] != "u1" {
		t.Fatalf("unexpected saved set: %v", saved)
	}
}

func TestNewsHandler_ToggleLike_MissingPrincipal(t *testing.T) {
	e := echo.New()
	handler := NewNewsHandler(&stubNewsService{})

	c, _ := newTestContext(e, http.MethodPut, "/api/news/n1/like", "")
	c.SetParamNames("id")
	c.SetParamValues("n1")

	err := handler.ToggleLike(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestNewsHandler_ListSaved_UsesPrincipal(t *testing.T) {
	e := echo.New()
	handler := NewNewsHandler(&stubNewsService{
		listSavedByFn: func(ctx context.Context, principal domain.Principal) ([]*ports.ArticleView, error) {
			if principal.ID != "u1" {
				t.Fatalf("expected u1, got %s", principal.ID)
			}
			return []*ports.ArticleView{{ID: "n1"}}, nil
		},
	})

	c, rec := newTestContext(e, http.MethodGet, "/api/news/saved", "")
	asAlice(c)

	if err := handler.ListSaved(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
