package handlers

import (
	"net/http"

	"cleansweep/models"
	"cleansweep/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking admission, assignment and lifecycle
// endpoints.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// CreateBooking admits a booking request and persists it as PENDING.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input booking.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Svc.CreateBooking(c.Request.Context(), input)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetBooking returns a booking by ID.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Svc.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListBookings returns bookings filtered by status (default PENDING).
func (h *BookingHandler) ListBookings(c *gin.Context) {
	status := models.BookingStatus(c.DefaultQuery("status", string(models.BookingPending)))
	bookings, err := h.Svc.ListBookings(c.Request.Context(), status)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListUserBookings returns all bookings made by a user.
func (h *BookingHandler) ListUserBookings(c *gin.Context) {
	bookings, err := h.Svc.ListUserBookings(c.Request.Context(), c.Param("userID"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// AvailableCleaners lists active cleaners free for the booking's window.
// The answer is advisory; assignment rechecks at commit time.
func (h *BookingHandler) AvailableCleaners(c *gin.Context) {
	cleaners, err := h.Svc.AvailableCleaners(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleaners": cleaners})
}

// AssignCleaner confirms the booking for a cleaner.
func (h *BookingHandler) AssignCleaner(c *gin.Context) {
	var input struct {
		CleanerID string `json:"cleaner_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	assigned, err := h.Svc.Assign(c.Request.Context(), c.Param("id"), input.CleanerID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	h.Logger.Info("assignment confirmed",
		zap.String("bookingID", assigned.ID), zap.String("cleanerID", assigned.CleanerID))
	c.JSON(http.StatusOK, assigned)
}

// UpdateStatus moves the booking along its lifecycle.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var input struct {
		Status models.BookingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Svc.TransitionStatus(c.Request.Context(), c.Param("id"), input.Status); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": input.Status})
}

// CancelBooking cancels a booking from PENDING or CONFIRMED.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	if err := h.Svc.CancelBooking(c.Request.Context(), c.Param("id")); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.BookingCancelled})
}
