package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apierrors "github.com/graphico/brief-api/internal/errors"
	"github.com/graphico/brief-api/internal/middleware"
	"github.com/graphico/brief-api/internal/models"
	"github.com/graphico/brief-api/internal/services"
)

// AssetHandler fetches the AI-generated stock asset for a brief and serves
// it as a downloadable file. When the fetch fails the client is redirected
// to the asset URL so the image can still be opened directly.
type AssetHandler struct {
	challenges *services.ChallengeService
	projects   *services.ProjectService
	client     *http.Client
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(challenges *services.ChallengeService, projects *services.ProjectService) *AssetHandler {
	return &AssetHandler{
		challenges: challenges,
		projects:   projects,
		client:     &http.Client{Timeout: 60 * time.Second},
	}
}

// DownloadWizardAsset serves the asset of the brief currently shown in the
// wizard result step.
func (h *AssetHandler) DownloadWizardAsset(c *gin.Context) {
	state := h.challenges.State(wizardID(c))
	if state.Brief == nil {
		apierrors.NotFound(c, "No generated brief")
		return
	}
	url := services.AssetURL(state.Category, *state.Brief)
	h.proxy(c, url, services.AssetFileName(state.Brief.ID))
}

// DownloadProjectAsset serves the asset of an accepted project's brief.
func (h *AssetHandler) DownloadProjectAsset(c *gin.Context) {
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
	url := services.AssetURL(models.CategoryUIUX, project.Brief)
	h.proxy(c, url, services.AssetFileName(project.Brief.ID))
}

func (h *AssetHandler) proxy(c *gin.Context, url, filename string) {
	resp, err := h.client.Get(url)
	if err != nil {
		c.Redirect(http.StatusFound, url)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.Redirect(http.StatusFound, url)
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	c.DataFromReader(http.StatusOK, resp.ContentLength, contentType, resp.Body, map[string]string{
		"Content-Disposition": `attachment; filename="` + filename + `"`,
	})
}
