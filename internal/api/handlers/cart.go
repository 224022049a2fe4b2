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
	"github.com/google/uuid"
)

// CartHandler serves anonymous carts. A cart is reachable by anyone who
// holds its UUID.
type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: utils.NewValidator()}
}

// CreateCart godoc
//
//	@Summary	Create an empty cart
//	@Tags		Carts
//	@Produce	json
//	@Success	201	{object}	models.CartResponse		"Successfully created cart"
//	@Failure	500	{object}	response.ErrorResponse	"Internal server error"
//	@Router		/carts [post]
func (h *CartHandler) CreateCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		cart, err := h.cartService.CreateCart(r.Context())
		if err != nil {
			logger.Error("Failed to create cart", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Cart created", slog.String("cartId", cart.ID.String()))
		response.Success(w, http.StatusCreated, models.NewCartResponse(cart))
	}
}

// GetCart godoc
//
//	@Summary	Get a cart with its items and total
//	@Tags		Carts
//	@Produce	json
//	@Param		id	path		string					true	"Cart ID (UUID)"	Format(uuid)
//	@Success	200	{object}	models.CartResponse		"Successfully retrieved cart"
//	@Failure	400	{object}	response.ErrorResponse	"Invalid cart ID"
//	@Failure	404	{object}	response.ErrorResponse	"Cart not found"
//	@Router		/carts/{id} [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, ok := cartIDFromPath(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), cartID)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to get cart", slog.String("cartId", cartID.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.NewCartResponse(cart))
	}
}

// DeleteCart godoc
//
//	@Summary	Delete a cart
//	@Tags		Carts
//	@Param		id	path	string	true	"Cart ID (UUID)"	Format(uuid)
//	@Success	204
//	@Failure	404	{object}	response.ErrorResponse	"Cart not found"
//	@Router		/carts/{id} [delete]
func (h *CartHandler) DeleteCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, ok := cartIDFromPath(w, r)
		if !ok {
			return
		}

		if err := h.cartService.DeleteCart(r.Context(), cartID); err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to delete cart", slog.String("cartId", cartID.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.NoContent(w)
	}
}

// ListItems godoc
//
//	@Summary	List the items of a cart
//	@Tags		Carts
//	@Produce	json
//	@Param		id	path		string						true	"Cart ID (UUID)"	Format(uuid)
//	@Success	200	{object}	[]models.CartItemResponse	"Successfully retrieved items"
//	@Failure	404	{object}	response.ErrorResponse		"Cart not found"
//	@Router		/carts/{id}/items [get]
func (h *CartHandler) ListItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, ok := cartIDFromPath(w, r)
		if !ok {
			return
		}

		items, err := h.cartService.ListItems(r.Context(), cartID)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to list cart items", slog.String("cartId", cartID.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		data := make([]*models.CartItemResponse, 0, len(items))
		for i := range items {
			data = append(data, models.NewCartItemResponse(&items[i]))
		}

		response.Success(w, http.StatusOK, data)
	}
}

// GetItem godoc
//
//	@Summary	Get a cart item
//	@Tags		Carts
//	@Produce	json
//	@Param		id		path		string					true	"Cart ID (UUID)"	Format(uuid)
//	@Param		itemId	path		int						true	"Cart item ID"
//	@Success	200		{object}	models.CartItemResponse	"Successfully retrieved item"
//	@Failure	404		{object}	response.ErrorResponse	"Cart item not found"
//	@Router		/carts/{id}/items/{itemId} [get]
func (h *CartHandler) GetItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, itemID, ok := cartItemPath(w, r)
		if !ok {
			return
		}

		item, err := h.cartService.GetItem(r.Context(), cartID, itemID)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to get cart item", slog.Int64("itemId", itemID), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.NewCartItemResponse(item))
	}
}

// AddItem godoc
//
//	@Summary		Add a product to a cart
//	@Description	Adding a product already in the cart increases its quantity.
//	@Tags			Carts
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Cart ID (UUID)"	Format(uuid)
//	@Param			item	body		models.AddCartItemRequest	true	"Product and quantity"
//	@Success		201		{object}	models.CartItemResponse		"Successfully added item"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error or unknown product"
//	@Failure		404		{object}	response.ErrorResponse		"Cart not found"
//	@Router			/carts/{id}/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		cartID, ok := cartIDFromPath(w, r)
		if !ok {
			return
		}

		var req models.AddCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add cart item input", slog.String("cartId", cartID.String()))
			return
		}

		item, err := h.cartService.AddItem(r.Context(), cartID, &req)
		if err != nil {
			logger.Warn("Failed to add cart item", slog.String("cartId", cartID.String()), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Cart item added",
			slog.String("cartId", cartID.String()),
			slog.Int64("productId", req.ProductID),
			slog.Int("quantity", item.Quantity))
		response.Success(w, http.StatusCreated, models.NewCartItemResponse(item))
	}
}

// UpdateItem godoc
//
//	@Summary	Change the quantity of a cart item
//	@Tags		Carts
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string							true	"Cart ID (UUID)"	Format(uuid)
//	@Param		itemId	path		int								true	"Cart item ID"
//	@Param		item	body		models.UpdateCartItemRequest	true	"New quantity"
//	@Success	200		{object}	models.CartItemResponse			"Successfully updated item"
//	@Failure	400		{object}	response.ErrorResponse			"Validation error"
//	@Failure	404		{object}	response.ErrorResponse			"Cart item not found"
//	@Router		/carts/{id}/items/{itemId} [patch]
func (h *CartHandler) UpdateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, itemID, ok := cartItemPath(w, r)
		if !ok {
			return
		}

		var req models.UpdateCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		item, err := h.cartService.UpdateItem(r.Context(), cartID, itemID, &req)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to update cart item", slog.Int64("itemId", itemID), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.NewCartItemResponse(item))
	}
}

// DeleteItem godoc
//
//	@Summary	Remove an item from a cart
//	@Tags		Carts
//	@Param		id		path	string	true	"Cart ID (UUID)"	Format(uuid)
//	@Param		itemId	path	int		true	"Cart item ID"
//	@Success	204
//	@Failure	404	{object}	response.ErrorResponse	"Cart item not found"
//	@Router		/carts/{id}/items/{itemId} [delete]
func (h *CartHandler) DeleteItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, itemID, ok := cartItemPath(w, r)
		if !ok {
			return
		}

		if err := h.cartService.DeleteItem(r.Context(), cartID, itemID); err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to delete cart item", slog.Int64("itemId", itemID), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.NoContent(w)
	}
}

func cartIDFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	cartID, err := utils.ParseID(r, "id")
	if err != nil {
		middleware.LoggerFromContext(r.Context()).Warn("Invalid cart id", slog.String("id", r.PathValue("id")))
		response.Error(w, err)

		return uuid.Nil, false
	}

	return cartID, true
}

func cartItemPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, int64, bool) {
	cartID, ok := cartIDFromPath(w, r)
	if !ok {
		return uuid.Nil, 0, false
	}

	itemID, err := utils.ParseInt64ID(r, "itemId")
	if err != nil {
		response.Error(w, err)
		return uuid.Nil, 0, false
	}

	return cartID, itemID, true
}
