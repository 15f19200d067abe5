package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/graphico/brief-api/internal/dto"
	apierrors "github.com/graphico/brief-api/internal/errors"
	"github.com/graphico/brief-api/internal/middleware"
	"github.com/graphico/brief-api/internal/services"
)

// ProjectHandler serves the challenge dashboard.
type ProjectHandler struct {
	projects *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projects *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// ListProjects returns the user's challenges, newest first, with expiry
// derived against the deadline clock.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	email, exists := middleware.GetUserEmail(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	projects := h.projects.List(email)
	c.JSON(http.StatusOK, gin.H{
		"projects": dto.ToProjectListDTO(projects),
	})
}

// GetProject returns a single challenge.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	email, exists := middleware.GetUserEmail(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	project, err := h.projects.Get(email, c.Param("id"))
	if err != nil {
		apierrors.NotFound(c, "Project not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// SubmitProject evaluates a submitted result image and completes the
// challenge. A broken evaluation capability never blocks completion: the
// evaluator substitutes its fallback feedback internally.
func (h *ProjectHandler) SubmitProject(c *gin.Context) {
	email, exists := middleware.GetUserEmail(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type SubmitRequest struct {
		Image string `json:"image" binding:"required"`
	}
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projects.Submit(c.Request.Context(), email, c.Param("id"), req.Image)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProjectNotFound):
			apierrors.NotFound(c, "Project not found")
		case errors.Is(err, services.ErrProjectNotActive):
			apierrors.Conflict(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to submit project")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}
