package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService, validator: utils.NewValidator()}
}

// ListProducts godoc
//
//	@Summary		List products
//	@Description	Paginated product list with optional collection filter, title/description search and ordering.
//	@Tags			Products
//	@Produce		json
//	@Param			collection_id	query		int															false	"Only products of this collection"
//	@Param			search			query		string														false	"Case-insensitive match on title or description"
//	@Param			ordering		query		string														false	"price, -price, last_updated or -last_updated"
//	@Param			page			query		int															false	"Page number (default: 1)"					minimum(1)
//	@Param			pageSize		query		int															false	"Items per page (default: 10, max: 100)"	minimum(1)	maximum(100)
//	@Success		200				{object}	models.PaginatedResponse{Data=[]models.ProductResponse}	"Successfully retrieved products"
//	@Failure		400				{object}	response.ErrorResponse										"Invalid filter"
//	@Failure		500				{object}	response.ErrorResponse										"Internal server error"
//	@Router			/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())
		query := r.URL.Query()

		page, pageSize := utils.ParsePagination(r)
		filter := models.ProductFilter{
			Search:   query.Get("search"),
			Ordering: query.Get("ordering"),
			Page:     page,
			PageSize: pageSize,
		}

		if raw := query.Get("collection_id"); raw != "" {
			collectionID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				response.Error(w, errors.AddValidationError("collection_id", "Enter a number."))
				return
			}

			filter.CollectionID = &collectionID
		}

		products, total, err := h.productService.ListProducts(r.Context(), filter)
		if err != nil {
			logger.Error("Failed to list products", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		data := make([]*models.ProductResponse, 0, len(products))
		for _, p := range products {
			data = append(data, models.NewProductResponse(p))
		}

		logger.Debug("Products listed", slog.Int("count", len(data)), slog.Int("total", total))
		response.Success(w, http.StatusOK, models.NewPaginatedResponse(data, total, page, pageSize))
	}
}

// GetProduct godoc
//
//	@Summary	Get a product
//	@Tags		Products
//	@Produce	json
//	@Param		id	path		int						true	"Product ID"
//	@Success	200	{object}	models.ProductResponse	"Successfully retrieved product"
//	@Failure	400	{object}	response.ErrorResponse	"Invalid product ID"
//	@Failure	404	{object}	response.ErrorResponse	"Product not found"
//	@Router		/products/{id} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseInt64ID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("id", r.PathValue("id")))
			response.Error(w, err)

			return
		}

		product, err := h.productService.GetProductByID(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to get product", slog.Int64("productId", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.NewProductResponse(product))
	}
}

// CreateProduct godoc
//
//	@Summary		Create a product
//	@Description	Staff only. The slug is derived from the title when omitted.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		models.ProductRequest	true	"Product details"
//	@Success		201		{object}	models.ProductResponse	"Successfully created product"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error or unknown collection"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		403		{object}	response.ErrorResponse	"Staff only"
//	@Security		BearerAuth
//	@Router			/products [post]
func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.ProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create product input")
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create product", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Product created", slog.Int64("productId", product.ID))
		response.Success(w, http.StatusCreated, models.NewProductResponse(product))
	}
}

// ReplaceProduct godoc
//
//	@Summary	Replace a product
//	@Tags		Products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Product ID"
//	@Param		product	body		models.ProductRequest	true	"Product details"
//	@Success	200		{object}	models.ProductResponse	"Successfully updated product"
//	@Failure	400		{object}	response.ErrorResponse	"Validation error"
//	@Failure	404		{object}	response.ErrorResponse	"Product not found"
//	@Security	BearerAuth
//	@Router		/products/{id} [put]
func (h *ProductHandler) ReplaceProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseInt64ID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.ProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid replace product input", slog.Int64("productId", id))
			return
		}

		product, err := h.productService.ReplaceProduct(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to replace product", slog.Int64("productId", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Product replaced", slog.Int64("productId", id))
		response.Success(w, http.StatusOK, models.NewProductResponse(product))
	}
}

// UpdateProduct godoc
//
//	@Summary	Partially update a product
//	@Tags		Products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Product ID"
//	@Param		product	body		models.UpdateProductRequest	true	"Fields to change"
//	@Success	200		{object}	models.ProductResponse		"Successfully updated product"
//	@Failure	400		{object}	response.ErrorResponse		"Validation error"
//	@Failure	404		{object}	response.ErrorResponse		"Product not found"
//	@Security	BearerAuth
//	@Router		/products/{id} [patch]
func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseInt64ID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update product input", slog.Int64("productId", id))
			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update product", slog.Int64("productId", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Product updated", slog.Int64("productId", id))
		response.Success(w, http.StatusOK, models.NewProductResponse(product))
	}
}

// DeleteProduct godoc
//
//	@Summary		Delete a product
//	@Description	Refused while any order item references the product. Cart items are removed with it.
//	@Tags			Products
//	@Param			id	path	int	true	"Product ID"
//	@Success		204
//	@Failure		400	{object}	response.ErrorResponse	"Product is part of an order"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Security		BearerAuth
//	@Router			/products/{id} [delete]
func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseInt64ID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
			logger.Warn("Failed to delete product", slog.Int64("productId", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Product deleted", slog.Int64("productId", id))
		response.NoContent(w)
	}
}
