package handlers

import (
	"net/http"

	"cleansweep/models"
	"cleansweep/services/catalog"

	"github.com/gin-gonic/gin"
)

// ServiceHandler exposes the service catalog and layout authoring endpoints.
type ServiceHandler struct {
	Svc catalog.CatalogService
}

// NewServiceHandler creates a ServiceHandler.
func NewServiceHandler(svc catalog.CatalogService) *ServiceHandler {
	return &ServiceHandler{Svc: svc}
}

// CreateService registers a new bookable service with its block layout.
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var service models.Service
	if err := c.ShouldBindJSON(&service); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Svc.CreateService(c.Request.Context(), &service); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, service)
}

// GetService returns a service by ID.
func (h *ServiceHandler) GetService(c *gin.Context) {
	service, err := h.Svc.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

// ListServices returns all services.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	services, err := h.Svc.ListServices(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// UpdateLayout replaces a service's block layout after validating every
// block; any error rejects the update wholesale with the full error list.
func (h *ServiceHandler) UpdateLayout(c *gin.Context) {
	var input struct {
		Layout []models.Block `json:"layout"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Svc.UpdateLayout(c.Request.Context(), c.Param("id"), input.Layout); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true, "blocks": len(input.Layout)})
}

// DeleteService removes a service.
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.Svc.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ValidateBlock checks a single (blockType, data) pair for the authoring UI.
// It always returns 200 with the accumulated result; an invalid payload is
// not an HTTP error.
func (h *ServiceHandler) ValidateBlock(c *gin.Context) {
	var input struct {
		Type string         `json:"type" binding:"required"`
		Data map[string]any `json:"data"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.Svc.ValidateBlock(input.Type, input.Data))
}

// BlockSchemas exposes the block catalog for the page builder UI.
func (h *ServiceHandler) BlockSchemas(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"schemas": h.Svc.BlockSchemas()})
}
