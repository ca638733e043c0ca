package availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MandarKanbargi/turf-admin/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Turf availability for a date
// @Description  Returns the bookable slot grid with per-type remaining capacity
// @Tags         turfs
// @Produce      json
// @Security     BearerAuth
// @Param        turfID path int true "Turf ID"
// @Param        date query string true "Date (YYYY-MM-DD)"
// @Param        period query string false "Day period filter (morning/afternoon/evening/night)"
// @Success      200 {object} availability.View
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /turfs/{turfID}/availability [get]
func (h *Handler) GetAvailability(c *gin.Context) {
	turfID, err := strconv.Atoi(c.Param("turfID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid turf ID"})
		return
	}

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "date query param is required"})
		return
	}

	view, err := h.service.GetView(c.Request.Context(), turfID, date, c.Query("period"))
	if err != nil {
		switch {
		case errors.Is(err, ErrTurfNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Turf not found"})
		case errors.Is(err, ErrInvalidDate):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid date, use YYYY-MM-DD"})
		case errors.Is(err, ErrUnknownPeriod):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Unknown day period"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to compute availability"})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}
