package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// ReviewHandler serves reviews nested under /products/{productId}/reviews.
type ReviewHandler struct {
	reviewService service.ReviewService
	validator     *validator.Validate
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, validator: utils.NewValidator()}
}

// ListReviews godoc
//
//	@Summary	List reviews of a product
//	@Tags		Reviews
//	@Produce	json
//	@Param		productId	path		int						true	"Product ID"
//	@Success	200			{object}	[]models.Review			"Successfully retrieved reviews"
//	@Failure	404			{object}	response.ErrorResponse	"Product not found"
//	@Router		/products/{productId}/reviews [get]
func (h *ReviewHandler) ListReviews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		productID, err := utils.ParseInt64ID(r, "productId")
		if err != nil {
			response.Error(w, err)
			return
		}

		reviews, err := h.reviewService.ListReviews(r.Context(), productID)
		if err != nil {
			logger.Warn("Failed to list reviews", slog.Int64("productId", productID), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, reviews)
	}
}

// GetReview godoc
//
//	@Summary	Get a review
//	@Tags		Reviews
//	@Produce	json
//	@Param		productId	path		int						true	"Product ID"
//	@Param		id			path		int						true	"Review ID"
//	@Success	200			{object}	models.Review			"Successfully retrieved review"
//	@Failure	404			{object}	response.ErrorResponse	"Review not found"
//	@Router		/products/{productId}/reviews/{id} [get]
func (h *ReviewHandler) GetReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, id, ok := reviewPath(w, r)
		if !ok {
			return
		}

		review, err := h.reviewService.GetReview(r.Context(), productID, id)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to get review", slog.Int64("reviewId", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, review)
	}
}

// CreateReview godoc
//
//	@Summary		Review a product
//	@Description	Anyone may review. Markup is stripped from name and description.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			productId	path		int						true	"Product ID"
//	@Param			review		body		models.ReviewRequest	true	"Review"
//	@Success		201			{object}	models.Review			"Successfully created review"
//	@Failure		400			{object}	response.ErrorResponse	"Validation error"
//	@Failure		404			{object}	response.ErrorResponse	"Product not found"
//	@Router			/products/{productId}/reviews [post]
func (h *ReviewHandler) CreateReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		productID, err := utils.ParseInt64ID(r, "productId")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.ReviewRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		review, err := h.reviewService.CreateReview(r.Context(), productID, &req)
		if err != nil {
			logger.Warn("Failed to create review", slog.Int64("productId", productID), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Review created", slog.Int64("productId", productID), slog.Int64("reviewId", review.ID))
		response.Success(w, http.StatusCreated, review)
	}
}

// UpdateReview godoc
//
//	@Summary	Replace a review
//	@Tags		Reviews
//	@Accept		json
//	@Produce	json
//	@Param		productId	path		int						true	"Product ID"
//	@Param		id			path		int						true	"Review ID"
//	@Param		review		body		models.ReviewRequest	true	"Review"
//	@Success	200			{object}	models.Review			"Successfully updated review"
//	@Failure	400			{object}	response.ErrorResponse	"Validation error"
//	@Failure	404			{object}	response.ErrorResponse	"Review not found"
//	@Security	BearerAuth
//	@Router		/products/{productId}/reviews/{id} [put]
func (h *ReviewHandler) UpdateReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		productID, id, ok := reviewPath(w, r)
		if !ok {
			return
		}

		var req models.ReviewRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		review, err := h.reviewService.UpdateReview(r.Context(), productID, id, &req)
		if err != nil {
			logger.Warn("Failed to update review", slog.Int64("reviewId", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, review)
	}
}

// DeleteReview godoc
//
//	@Summary	Delete a review
//	@Tags		Reviews
//	@Param		productId	path	int	true	"Product ID"
//	@Param		id			path	int	true	"Review ID"
//	@Success	204
//	@Failure	404	{object}	response.ErrorResponse	"Review not found"
//	@Security	BearerAuth
//	@Router		/products/{productId}/reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, id, ok := reviewPath(w, r)
		if !ok {
			return
		}

		if err := h.reviewService.DeleteReview(r.Context(), productID, id); err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to delete review", slog.Int64("reviewId", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.NoContent(w)
	}
}

func reviewPath(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	productID, err := utils.ParseInt64ID(r, "productId")
	if err != nil {
		response.Error(w, err)
		return 0, 0, false
	}

	id, err := utils.ParseInt64ID(r, "id")
	if err != nil {
		response.Error(w, err)
		return 0, 0, false
	}

	return productID, id, true
}
