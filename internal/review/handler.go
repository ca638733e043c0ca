package review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MandarKanbargi/turf-admin/internal/api"
	"github.com/MandarKanbargi/turf-admin/internal/auth"
	"github.com/MandarKanbargi/turf-admin/internal/logger"
	"github.com/MandarKanbargi/turf-admin/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// @Summary      Review a turf
// @Description  One review per user per turf; marked verified when the user has a completed booking there.
// @Tags         reviews
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        turfID  path      int                  true  "Turf ID"
// @Param        review  body      CreateReviewRequest  true  "Review"
// @Success      201     {object}  Review
// @Failure      400     {object}  api.ErrorResponse
// @Failure      409     {object}  api.ErrorResponse
// @Router       /turfs/{turfID}/reviews [post]
func (h *Handler) Create(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	turfID, err := strconv.Atoi(c.Param("turfID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid turf ID"})
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	rev, err := h.repo.CreateReview(c.Request.Context(), userID, turfID, req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, ErrAlreadyReviewed) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "You have already reviewed this turf"})
			return
		}
		logger.Errorf("Failed to create review for turf %d: %v", turfID, err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create review"})
		return
	}

	logger.Infof("Review created: Turf=%d, User=%d, Rating=%d", turfID, userID, rev.Rating)
	metrics.RecordReview(rev.Rating)

	c.JSON(http.StatusCreated, rev)
}

// @Summary      List reviews for a turf
// @Tags         reviews
// @Produce      json
// @Param        turfID  path   int  true   "Turf ID"
// @Param        limit   query  int  false  "Page size"
// @Param        offset  query  int  false  "Offset"
// @Success      200  {array}   ReviewWithUser
// @Failure      400  {object}  api.ErrorResponse
// @Router       /turfs/{turfID}/reviews [get]
func (h *Handler) ListByTurf(c *gin.Context) {
	turfID, err := strconv.Atoi(c.Param("turfID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid turf ID"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	reviews, err := h.repo.ListByTurf(c.Request.Context(), turfID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load reviews"})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// @Summary      Rating summary for a turf
// @Tags         reviews
// @Produce      json
// @Param        turfID  path  int  true  "Turf ID"
// @Success      200  {object}  RatingSummary
// @Failure      400  {object}  api.ErrorResponse
// @Router       /turfs/{turfID}/reviews/summary [get]
func (h *Handler) GetSummary(c *gin.Context) {
	turfID, err := strconv.Atoi(c.Param("turfID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid turf ID"})
		return
	}

	summary, err := h.repo.GetSummary(c.Request.Context(), turfID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to load rating summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// @Summary      Delete own review
// @Tags         reviews
// @Security     BearerAuth
// @Produce      json
// @Param        reviewID  path  int  true  "Review ID"
// @Success      200  {object}  gin.H
// @Failure      400  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /reviews/{reviewID} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	reviewID, err := strconv.Atoi(c.Param("reviewID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid review ID"})
		return
	}

	if err := h.repo.DeleteReview(c.Request.Context(), userID, reviewID); err != nil {
		if errors.Is(err, ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
