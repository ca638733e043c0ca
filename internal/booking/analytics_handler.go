package booking

import (
	"net/http"
	"time"

	"github.com/MandarKanbargi/turf-admin/internal/api"
	"github.com/MandarKanbargi/turf-admin/internal/auth"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	repo AnalyticsRepository
}

func NewAnalyticsHandler(repo AnalyticsRepository) *AnalyticsHandler {
	return &AnalyticsHandler{repo: repo}
}

func statsRange(c *gin.Context) (time.Time, time.Time, bool) {
	const layout = "2006-01-02"

	to := time.Now()
	from := to.AddDate(0, 0, -30)

	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse(layout, v)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse(layout, v)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		// Inclusive end of day.
		to = parsed.AddDate(0, 0, 1)
	}

	return from, to, true
}

// @Summary      Daily booking stats for the owner's turfs
// @Description  Bookings and revenue per day across all turfs of the authenticated owner. Defaults to the last 30 days.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        from query string false "Start date (YYYY-MM-DD)"
// @Param        to   query string false "End date (YYYY-MM-DD)"
// @Success      200 {array} booking.BookingStatsByBucket
// @Failure      400 {object} api.ErrorResponse
// @Router       /dashboard/stats/daily [get]
func (h *AnalyticsHandler) GetDailyStats(c *gin.Context) {
	ownerID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	from, to, ok := statsRange(c)
	if !ok {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid date range"})
		return
	}

	stats, err := h.repo.GetBookingStatsByDay(c.Request.Context(), ownerID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// @Summary      Per-turf booking stats
// @Description  Bookings and revenue per turf for the authenticated owner. Defaults to the last 30 days.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        from query string false "Start date (YYYY-MM-DD)"
// @Param        to   query string false "End date (YYYY-MM-DD)"
// @Success      200 {array} booking.BookingStatsByTurf
// @Failure      400 {object} api.ErrorResponse
// @Router       /dashboard/stats/turfs [get]
func (h *AnalyticsHandler) GetTurfStats(c *gin.Context) {
	ownerID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	from, to, ok := statsRange(c)
	if !ok {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid date range"})
		return
	}

	stats, err := h.repo.GetBookingStatsByTurf(c.Request.Context(), ownerID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
