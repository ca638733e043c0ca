package payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MandarKanbargi/turf-admin/internal/api"
	"github.com/MandarKanbargi/turf-admin/internal/auth"
	"github.com/MandarKanbargi/turf-admin/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// @Summary      Payment summary for a booking
// @Description  Returns the fee split, paid halves and recorded payments
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        bookingID path int true "Booking ID"
// @Success      200 {object} payment.Summary
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /bookings/{bookingID}/payments [get]
func (h *Handler) GetSummary(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	bookingID, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking ID"})
		return
	}

	summary, err := h.repo.GetSummary(c.Request.Context(), bookingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
		case errors.Is(err, ErrNotAllowed):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Not allowed"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load payments"})
		}
		return
	}

	c.JSON(http.StatusOK, summary)
}

// @Summary      Record a payment
// @Description  Marks the advance or remaining half of a booking as collected
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        bookingID path int true "Booking ID"
// @Param        payment body payment.RecordPaymentRequest true "Payment"
// @Success      201 {object} payment.Payment
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /bookings/{bookingID}/payments [post]
func (h *Handler) RecordPayment(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	bookingID, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking ID"})
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.repo.RecordPayment(c.Request.Context(), bookingID, userID, req.Kind, req.Method)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
		case errors.Is(err, ErrNotAllowed):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Not allowed"})
		case errors.Is(err, ErrBookingCancelled):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Booking is cancelled"})
		case errors.Is(err, ErrAlreadyPaid):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Payment already recorded"})
		case errors.Is(err, ErrAdvanceRequired):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Advance must be paid first"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to record payment"})
		}
		return
	}

	metrics.RecordPayment(p.Kind, p.Method)

	c.JSON(http.StatusCreated, p)
}
