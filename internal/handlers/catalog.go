package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/graphico/brief-api/internal/dto"
	"github.com/graphico/brief-api/internal/models"
)

// CatalogHandler exposes the wizard's selectable categories, industries and
// toggles.
type CatalogHandler struct {
	catalog *models.Catalog
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog *models.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GetCatalog returns the full catalog.
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToCatalogDTO(h.catalog))
}
