package handlers

import (
	"errors"
	"net/http"

	bookingRepo "cleansweep/database/repository/booking"
	cleanerRepo "cleansweep/database/repository/cleaner"
	serviceRepo "cleansweep/database/repository/service"
	"cleansweep/services/booking"
	"cleansweep/services/catalog"
	"cleansweep/services/cleaner"
	"cleansweep/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondDomainError translates the domain error taxonomy into HTTP
// responses. Store failures fall through to a 500 without leaking internals.
func respondDomainError(c *gin.Context, err error) {
	var policyErr *booking.PolicyError
	if errors.As(err, &policyErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  policyErr.Message,
			"reason": string(policyErr.Reason),
		})
		return
	}

	var layoutErr *catalog.LayoutError
	if errors.As(err, &layoutErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  layoutErr.Error(),
			"valid":  false,
			"errors": layoutErr.Result.Errors,
		})
		return
	}

	var assignErr *booking.AssignmentError
	if errors.As(err, &assignErr) {
		c.JSON(http.StatusConflict, gin.H{"error": assignErr.Message, "code": assignErr.Code})
		return
	}

	var transitionErr *booking.TransitionError
	if errors.As(err, &transitionErr) {
		c.JSON(http.StatusConflict, gin.H{"error": transitionErr.Error()})
		return
	}

	var blockedErr *cleaner.StatusBlockedError
	if errors.As(err, &blockedErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":            blockedErr.Error(),
			"blockingBookings": blockedErr.Blocking,
		})
		return
	}

	switch {
	case errors.Is(err, bookingRepo.ErrNotFound),
		errors.Is(err, cleanerRepo.ErrNotFound),
		errors.Is(err, serviceRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, catalog.ErrSubserviceNotFound):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, bookingRepo.ErrStatusChanged):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
