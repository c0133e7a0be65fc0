package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techconnect/techconnect-api/internal/core/ports"
)

// NewsHandler handles HTTP requests for news article operations.
type NewsHandler struct {
	service ports.NewsService
}

func NewNewsHandler(service ports.NewsService) *NewsHandler {
	return &NewsHandler{service: service}
}

// List handles GET /api/news.
//
// @Summary      List all news articles, newest first
// @Tags         news
// @Produce      json
// @Success      200  {array}   ports.ArticleView
// @Failure      500  {object}  errorResponse
// @Router       /api/news [get]
func (h *NewsHandler) List(c echo.Context) error {
	views, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// ListSaved handles GET /api/news/saved.
//
// @Summary      List the articles the caller has saved
// @Tags         news
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.ArticleView
// @Failure      401  {object}  errorResponse
// @Router       /api/news/saved [get]
func (h *NewsHandler) ListSaved(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	views, err := h.service.ListSavedBy(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// Get handles GET /api/news/:id.
//
// @Summary      Get a news article by ID
// @Tags         news
// @Produce      json
// @Param        id   path      string  true  "Article ID"
// @Success      200  {object}  ports.ArticleView
// @Failure      404  {object}  errorResponse
// @Router       /api/news/{id} [get]
func (h *NewsHandler) Get(c echo.Context) error {
	view, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Create handles POST /api/news. Admin only.
//
// @Summary      Publish a news article (admin only)
// @Tags         news
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createArticleRequest  true  "Article details"
// @Success      201   {object}  ports.ArticleView
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/news [post]
func (h *NewsHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.Create(c.Request().Context(), principal, ports.CreateArticleInput{
		Title:        req.Title,
		Description:  req.Description,
		ExternalLink: req.ExternalLink,
		Category:     req.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, view)
}

// Update handles PUT /api/news/:id. Admin only.
//
// @Summary      Update a news article (admin only, merge-if-set)
// @Tags         news
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Article ID"
// @Param        body  body      updateArticleRequest  true  "Fields to replace; empty fields are ignored"
// @Success      200   {object}  ports.ArticleView
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/news/{id} [put]
func (h *NewsHandler) Update(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.Update(c.Request().Context(), principal, c.Param("id"), ports.UpdateArticleInput{
		Title:        req.Title,
		Description:  req.Description,
		ExternalLink: req.ExternalLink,
		Category:     req.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Delete handles DELETE /api/news/:id. Admin only.
//
// @Summary      Delete a news article (admin only)
// @Tags         news
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Article ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/news/{id} [delete]
func (h *NewsHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), principal, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "article removed"})
}

// ToggleLike handles PUT /api/news/:id/like.
//
// @Summary      Toggle the caller's like on an article
// @Tags         news
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Article ID"
// @Success      200  {array}   string
// @Failure      404  {object}  errorResponse
// @Router       /api/news/{id}/like [put]
func (h *NewsHandler) ToggleLike(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	likes, err := h.service.ToggleLike(c.Request().Context(), principal, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, likes)
}

// ToggleSave handles PUT /api/news/:id/save.
//
// @Summary      Toggle the caller's save on an article
// @Tags         news
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Article ID"
// @Success      200  {array}   string
// @Failure      404  {object}  errorResponse
// @Router       /api/news/{id}/save [put]
func (h *NewsHandler) ToggleSave(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	saved, err := h.service.ToggleSave(c.Request().Context(), principal, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, saved)
}
