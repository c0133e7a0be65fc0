package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techconnect/techconnect-api/internal/core/ports"
)

// ProjectHandler handles HTTP requests for project operations.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// List handles GET /api/projects.
//
// @Summary      List all projects, newest first
// @Tags         projects
// @Produce      json
// @Success      200  {array}   ports.ProjectView
// @Failure      500  {object}  errorResponse
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	views, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// Get handles GET /api/projects/:id.
//
// @Summary      Get a project by ID
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  ports.ProjectView
// @Failure      404  {object}  errorResponse
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	view, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Create handles POST /api/projects.
//
// @Summary      Post a new project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  ports.ProjectView
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.Create(c.Request().Context(), principal, ports.CreateProjectInput{
		Title:        req.Title,
		Description:  req.Description,
		GithubLink:   req.GithubLink,
		LinkedinLink: req.LinkedinLink,
		Tags:         req.Tags,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, view)
}

// Update handles PUT /api/projects/:id. Author only.
//
// @Summary      Update a project (author only, merge-if-set)
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Project ID"
// @Param        body  body      updateProjectRequest  true  "Fields to replace; empty fields are ignored"
// @Success      200   {object}  ports.ProjectView
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.Update(c.Request().Context(), principal, c.Param("id"), ports.UpdateProjectInput{
		Title:        req.Title,
		Description:  req.Description,
		GithubLink:   req.GithubLink,
		LinkedinLink: req.LinkedinLink,
		Tags:         req.Tags,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Delete handles DELETE /api/projects/:id. Author only.
//
// @Summary      Delete a project (author only)
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), principal, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "project removed"})
}

// ToggleLike handles PUT /api/projects/:id/like.
//
// @Summary      Toggle the caller's like on a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project ID"
// @Success      200  {array}   string
// @Failure      404  {object}  errorResponse
// @Router       /api/projects/{id}/like [put]
func (h *ProjectHandler) ToggleLike(c echo.Context) error {
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

// AddComment handles POST /api/projects/:id/comments.
//
// @Summary      Add a comment to a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Project ID"
// @Param        body  body      addCommentRequest  true  "Comment text"
// @Success      200   {array}   ports.CommentView
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/projects/{id}/comments [post]
func (h *ProjectHandler) AddComment(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comments, err := h.service.AddComment(c.Request().Context(), principal, c.Param("id"), req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// ListByAuthor handles GET /api/projects/user/:userId.
//
// @Summary      List a user's projects, newest first
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "Author user ID"
// @Success      200     {array}   ports.ProjectView
// @Failure      401     {object}  errorResponse
// @Router       /api/projects/user/{userId} [get]
func (h *ProjectHandler) ListByAuthor(c echo.Context) error {
	if _, err := ctxPrincipal(c); err != nil {
		return err
	}

	views, err := h.service.ListByAuthor(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}
