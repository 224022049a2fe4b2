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

type PromotionHandler struct {
	promotionService service.PromotionService
	validator        *validator.Validate
}

func NewPromotionHandler(promotionService service.PromotionService) *PromotionHandler {
	return &PromotionHandler{promotionService: promotionService, validator: utils.NewValidator()}
}

// ListPromotions godoc
//
//	@Summary	List promotions
//	@Tags		Promotions
//	@Produce	json
//	@Success	200	{object}	[]models.Promotion		"Successfully retrieved promotions"
//	@Failure	500	{object}	response.ErrorResponse	"Internal server error"
//	@Router		/promotions [get]
func (h *PromotionHandler) ListPromotions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		promotions, err := h.promotionService.ListPromotions(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list promotions", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, promotions)
	}
}

// CreatePromotion godoc
//
//	@Summary	Create a promotion
//	@Tags		Promotions
//	@Accept		json
//	@Produce	json
//	@Param		promotion	body		models.CreatePromotionRequest	true	"Promotion details"
//	@Success	201			{object}	models.Promotion				"Successfully created promotion"
//	@Failure	400			{object}	response.ErrorResponse			"Validation error"
//	@Security	BearerAuth
//	@Router		/promotions [post]
func (h *PromotionHandler) CreatePromotion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreatePromotionRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		promotion, err := h.promotionService.CreatePromotion(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create promotion", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Promotion created", slog.Int64("promotionId", promotion.ID))
		response.Success(w, http.StatusCreated, promotion)
	}
}
