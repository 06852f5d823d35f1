package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/takweol/casematch/pkg/types/consultation"
)

// CatalogService is the application surface for category lookups.
type CatalogService interface {
	Categories() []consultation.CategoryDTO
	Category(id string) (consultation.CategoryDTO, error)
}

// CatalogHandler serves the case-category endpoints.
type CatalogHandler struct {
	service CatalogService
}

// NewCatalogHandler builds the handler.
func NewCatalogHandler(service CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// List returns every category in catalog order.
func (h *CatalogHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.service.Categories()})
}

// Get returns one category by id.
func (h *CatalogHandler) Get(c *gin.Context) {
	cat, err := h.service.Category(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}
