package turf

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MandarKanbargi/turf-admin/internal/api"
	"github.com/MandarKanbargi/turf-admin/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func turfIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("turfID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid turf ID"})
		return 0, false
	}
	return id, true
}

// @Summary      Create a turf
// @Description  Owner-only: register a new turf
// @Tags         dashboard,turfs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body turf.CreateTurfRequest true "Turf payload"
// @Success      201 {object} turf.Turf
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /dashboard/turfs [post]
func (h *Handler) CreateTurf(c *gin.Context) {
	ownerID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req CreateTurfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	t, err := h.service.CreateTurf(c.Request.Context(), ownerID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create turf"})
		return
	}

	c.JSON(http.StatusCreated, t)
}

// @Summary      List turfs
// @Tags         turfs
// @Produce      json
// @Security     BearerAuth
// @Param        city query string false "Filter by city"
// @Success      200 {array} turf.Turf
// @Failure      500 {object} api.ErrorResponse
// @Router       /turfs [get]
func (h *Handler) ListTurfs(c *gin.Context) {
	turfs, err := h.service.ListTurfs(c.Request.Context(), c.Query("city"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch turfs"})
		return
	}

	c.JSON(http.StatusOK, turfs)
}

// @Summary      List my turfs
// @Tags         dashboard,turfs
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} turf.Turf
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /dashboard/turfs [get]
func (h *Handler) ListMyTurfs(c *gin.Context) {
	ownerID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	turfs, err := h.service.ListTurfsByOwner(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch turfs"})
		return
	}

	c.JSON(http.StatusOK, turfs)
}

// @Summary      Get turf details
// @Tags         turfs
// @Produce      json
// @Security     BearerAuth
// @Param        turfID path int true "Turf ID"
// @Success      200 {object} turf.Turf
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /turfs/{turfID} [get]
func (h *Handler) GetTurf(c *gin.Context) {
	id, ok := turfIDParam(c)
	if !ok {
		return
	}

	t, err := h.service.GetTurfByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Turf not found"})
		return
	}

	c.JSON(http.StatusOK, t)
}

// @Summary      Get turf operating hours
// @Tags         turfs
// @Produce      json
// @Security     BearerAuth
// @Param        turfID path int true "Turf ID"
// @Success      200 {array} turf.OperatingWindow
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /turfs/{turfID}/hours [get]
func (h *Handler) GetOperatingHours(c *gin.Context) {
	id, ok := turfIDParam(c)
	if !ok {
		return
	}

	hours, err := h.service.GetOperatingHours(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrTurfNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Turf not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch operating hours"})
		return
	}

	c.JSON(http.StatusOK, hours)
}

// @Summary      Replace turf operating hours
// @Description  Owner-only: set the weekly schedule
// @Tags         dashboard,turfs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        turfID path int true "Turf ID"
// @Param        request body turf.UpdateOperatingHoursRequest true "Weekly schedule"
// @Success      200 {array} turf.OperatingWindow
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /dashboard/turfs/{turfID}/hours [put]
func (h *Handler) UpdateOperatingHours(c *gin.Context) {
	ownerID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	id, ok := turfIDParam(c)
	if !ok {
		return
	}

	var req UpdateOperatingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	hours, err := h.service.UpdateOperatingHours(c.Request.Context(), ownerID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrTurfNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Turf not found"})
		case errors.Is(err, ErrNotTurfOwner):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Turf belongs to another owner"})
		case errors.Is(err, ErrWindowInvalid):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid operating window data"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update operating hours"})
		}
		return
	}

	c.JSON(http.StatusOK, hours)
}

// @Summary      Create a booking type
// @Description  Owner-only: add an offering with its capacity ceiling and rate
// @Tags         dashboard,turfs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        turfID path int true "Turf ID"
// @Param        request body turf.CreateBookingTypeRequest true "Booking type payload"
// @Success      201 {object} turf.BookingType
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /dashboard/turfs/{turfID}/booking-types [post]
func (h *Handler) CreateBookingType(c *gin.Context) {
	ownerID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	id, ok := turfIDParam(c)
	if !ok {
		return
	}

	var req CreateBookingTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	bt, err := h.service.CreateBookingType(c.Request.Context(), ownerID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrTurfNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Turf not found"})
		case errors.Is(err, ErrNotTurfOwner):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Turf belongs to another owner"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create booking type"})
		}
		return
	}

	c.JSON(http.StatusCreated, bt)
}

// @Summary      List booking types for a turf
// @Tags         turfs
// @Produce      json
// @Security     BearerAuth
// @Param        turfID path int true "Turf ID"
// @Success      200 {array} turf.BookingType
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /turfs/{turfID}/booking-types [get]
func (h *Handler) ListBookingTypes(c *gin.Context) {
	id, ok := turfIDParam(c)
	if !ok {
		return
	}

	types, err := h.service.ListBookingTypes(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrTurfNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Turf not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch booking types"})
		return
	}

	c.JSON(http.StatusOK, types)
}

// @Summary      Create a blackout period
// @Description  Owner-only: block a time range from all bookings
// @Tags         dashboard,turfs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        turfID path int true "Turf ID"
// @Param        request body turf.CreateBlackoutRequest true "Blackout payload"
// @Success      201 {object} turf.Blackout
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /dashboard/turfs/{turfID}/blackouts [post]
func (h *Handler) CreateBlackout(c *gin.Context) {
	ownerID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	id, ok := turfIDParam(c)
	if !ok {
		return
	}

	var req CreateBlackoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	b, err := h.service.CreateBlackout(c.Request.Context(), ownerID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrTurfNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Turf not found"})
		case errors.Is(err, ErrNotTurfOwner):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Turf belongs to another owner"})
		case errors.Is(err, ErrBlackoutInvalid):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid blackout data"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create blackout"})
		}
		return
	}

	c.JSON(http.StatusCreated, b)
}
