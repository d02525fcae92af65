package handlers

import (
	"net/http"

	"cleansweep/models"
	"cleansweep/services/cleaner"

	"github.com/gin-gonic/gin"
)

// CleanerHandler exposes the cleaner roster endpoints.
type CleanerHandler struct {
	Svc cleaner.CleanerService
}

// NewCleanerHandler creates a CleanerHandler.
func NewCleanerHandler(svc cleaner.CleanerService) *CleanerHandler {
	return &CleanerHandler{Svc: svc}
}

// CreateCleaner registers a new cleaner.
func (h *CleanerHandler) CreateCleaner(c *gin.Context) {
	var cl models.Cleaner
	if err := c.ShouldBindJSON(&cl); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Svc.CreateCleaner(c.Request.Context(), &cl); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cl)
}

// GetCleaner returns a cleaner by ID.
func (h *CleanerHandler) GetCleaner(c *gin.Context) {
	cl, err := h.Svc.GetCleaner(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cl)
}

// ListCleaners returns the full roster.
func (h *CleanerHandler) ListCleaners(c *gin.Context) {
	cleaners, err := h.Svc.ListCleaners(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleaners": cleaners})
}

// UpdateCleaner modifies a cleaner profile.
func (h *CleanerHandler) UpdateCleaner(c *gin.Context) {
	var cl models.Cleaner
	if err := c.ShouldBindJSON(&cl); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	cl.ID = c.Param("id")

	if err := h.Svc.UpdateCleaner(c.Request.Context(), &cl); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cl)
}

// UpdateCleanerStatus changes a cleaner's duty status. Leaving active duty
// is refused while future live bookings are still assigned to them.
func (h *CleanerHandler) UpdateCleanerStatus(c *gin.Context) {
	var input struct {
		Status models.CleanerStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": input.Status})
}

// DeleteCleaner removes a cleaner from the roster.
func (h *CleanerHandler) DeleteCleaner(c *gin.Context) {
	if err := h.Svc.DeleteCleaner(c.Request.Context(), c.Param("id")); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
