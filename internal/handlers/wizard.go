package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/graphico/brief-api/internal/constants"
	"github.com/graphico/brief-api/internal/dto"
	apierrors "github.com/graphico/brief-api/internal/errors"
	"github.com/graphico/brief-api/internal/middleware"
	"github.com/graphico/brief-api/internal/models"
	"github.com/graphico/brief-api/internal/services"
)

// WizardHandler drives the brief creation wizard over HTTP. Each browser
// session gets its own wizard, keyed by an id kept in the session cookie.
type WizardHandler struct {
	challenges  *services.ChallengeService
	authService *services.AuthService
}

// NewWizardHandler creates a new WizardHandler.
func NewWizardHandler(challenges *services.ChallengeService, authService *services.AuthService) *WizardHandler {
	return &WizardHandler{
		challenges:  challenges,
		authService: authService,
	}
}

func wizardID(c *gin.Context) string {
	session := sessions.Default(c)
	if id, ok := session.Get(constants.SessionKeyWizardID).(string); ok && id != "" {
		return id
	}
	id := uuid.NewString()
	session.Set(constants.SessionKeyWizardID, id)
	_ = session.Save()
	return id
}

// GetState returns the wizard snapshot.
func (h *WizardHandler) GetState(c *gin.Context) {
	state := h.challenges.State(wizardID(c))
	c.JSON(http.StatusOK, dto.ToWizardDTO(state))
}

// SelectCategory starts a wizard cycle for a category.
func (h *WizardHandler) SelectCategory(c *gin.Context) {
	type SelectRequest struct {
		Category   models.DesignCategory `json:"category" binding:"required"`
		Difficulty models.Difficulty     `json:"difficulty"`
		ClientType models.ClientType     `json:"clientType"`
	}

	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	state, err := h.challenges.SelectCategory(wizardID(c), req.Category, req.Difficulty, req.ClientType)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, dto.ToWizardDTO(state))
}

// Generate runs a standard-mode generation for the picked industry.
func (h *WizardHandler) Generate(c *gin.Context) {
	type GenerateRequest struct {
		Industry string `json:"industry" binding:"required"`
	}

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	state, err := h.challenges.Generate(c.Request.Context(), wizardID(c), req.Industry)
	h.respondGeneration(c, state, err)
}

// AttachRemixImage stores the style-remix reference image.
func (h *WizardHandler) AttachRemixImage(c *gin.Context) {
	type AttachRequest struct {
		Image string `json:"image" binding:"required"`
	}

	var req AttachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	state := h.challenges.AttachRemixImage(wizardID(c), req.Image)
	c.JSON(http.StatusOK, dto.ToWizardDTO(state))
}

// DetachRemixImage removes the reference image.
func (h *WizardHandler) DetachRemixImage(c *gin.Context) {
	state := h.challenges.DetachRemixImage(wizardID(c))
	c.JSON(http.StatusOK, dto.ToWizardDTO(state))
}

// StartRemix launches a remix-mode generation. Without an attached image the
// wizard state comes back unchanged.
func (h *WizardHandler) StartRemix(c *gin.Context) {
	state, err := h.challenges.StartRemix(c.Request.Context(), wizardID(c))
	h.respondGeneration(c, state, err)
}

// Regenerate repeats the last generation with the same parameters.
func (h *WizardHandler) Regenerate(c *gin.Context) {
	state, err := h.challenges.Regenerate(c.Request.Context(), wizardID(c))
	h.respondGeneration(c, state, err)
}

// Reset returns the wizard to the category step.
func (h *WizardHandler) Reset(c *gin.Context) {
	state := h.challenges.Reset(wizardID(c))
	c.JSON(http.StatusOK, dto.ToWizardDTO(state))
}

// Accept turns the current brief into an active project for the logged-in
// user. The route sits behind RequireAuth: an anonymous accept is answered
// with 401 and leaves the wizard untouched.
func (h *WizardHandler) Accept(c *gin.Context) {
	email, exists := middleware.GetUserEmail(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.authService.GetUser(email)
	if err != nil {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type AcceptRequest struct {
		Brief *models.Brief `json:"brief"`
	}
	var req AcceptRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.BadRequest(c, "Invalid request body")
			return
		}
	}

	project, err := h.challenges.Accept(wizardID(c), *user, req.Brief)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoBriefToAccept):
			apierrors.Conflict(c, err.Error())
		case errors.Is(err, services.ErrGenerationInFlight):
			apierrors.Conflict(c, err.Error())
		case errors.Is(err, services.ErrBriefMismatch):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to accept brief")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectDTO(*project))
}

func (h *WizardHandler) respondGeneration(c *gin.Context, state services.WizardState, err error) {
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoCategorySelected):
			apierrors.Conflict(c, err.Error())
		case errors.Is(err, services.ErrGenerationInFlight):
			apierrors.Conflict(c, err.Error())
		case errors.Is(err, services.ErrGeneration):
			// The wizard has already reverted a step; surface the localized
			// retryable message alongside the reverted state.
			apierrors.UnprocessableGeneration(c, services.GenerationErrorMessage, dto.ToWizardDTO(state))
		default:
			apierrors.InternalError(c, "")
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToWizardDTO(state))
}
