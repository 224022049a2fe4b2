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

type CollectionHandler struct {
	collectionService service.CollectionService
	validator         *validator.Validate
}

func NewCollectionHandler(collectionService service.CollectionService) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService, validator: utils.NewValidator()}
}

// ListCollections godoc
//
//	@Summary		List collections
//	@Description	Returns every collection with the number of products it holds.
//	@Tags			Collections
//	@Produce		json
//	@Success		200	{object}	[]models.Collection		"Successfully retrieved collections"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Router			/collections [get]
func (h *CollectionHandler) ListCollections() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		collections, err := h.collectionService.ListCollections(r.Context())
		if err != nil {
			logger.Error("Failed to list collections", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, collections)
	}
}

// GetCollection godoc
//
//	@Summary		Get a collection
//	@Tags			Collections
//	@Produce		json
//	@Param			id	path		int						true	"Collection ID"
//	@Success		200	{object}	models.Collection		"Successfully retrieved collection"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid collection ID"
//	@Failure		404	{object}	response.ErrorResponse	"Collection not found"
//	@Router			/collections/{id} [get]
func (h *CollectionHandler) GetCollection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseInt64ID(r, "id")
		if err != nil {
			logger.Warn("Invalid collection id", slog.String("id", r.PathValue("id")))
			response.Error(w, err)

			return
		}

		collection, err := h.collectionService.GetCollectionByID(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get collection", slog.Int64("collectionId", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, collection)
	}
}

// CreateCollection godoc
//
//	@Summary		Create a collection
//	@Description	Staff only. featured_product_id must reference an existing product.
//	@Tags			Collections
//	@Accept			json
//	@Produce		json
//	@Param			collection	body		models.CollectionRequest	true	"Collection details"
//	@Success		201			{object}	models.Collection			"Successfully created collection"
//	@Failure		400			{object}	response.ErrorResponse		"Validation error"
//	@Failure		401			{object}	response.ErrorResponse		"Authentication required"
//	@Failure		403			{object}	response.ErrorResponse		"Staff only"
//	@Security		BearerAuth
//	@Router			/collections [post]
func (h *CollectionHandler) CreateCollection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.CollectionRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create collection input")
			return
		}

		collection, err := h.collectionService.CreateCollection(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create collection", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Collection created", slog.Int64("collectionId", collection.ID))
		response.Success(w, http.StatusCreated, collection)
	}
}

// UpdateCollection godoc
//
//	@Summary		Replace a collection
//	@Tags			Collections
//	@Accept			json
//	@Produce		json
//	@Param			id			path		int							true	"Collection ID"
//	@Param			collection	body		models.CollectionRequest	true	"Collection details"
//	@Success		200			{object}	models.Collection			"Successfully updated collection"
//	@Failure		400			{object}	response.ErrorResponse		"Validation error"
//	@Failure		404			{object}	response.ErrorResponse		"Collection not found"
//	@Security		BearerAuth
//	@Router			/collections/{id} [put]
func (h *CollectionHandler) UpdateCollection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseInt64ID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.CollectionRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update collection input", slog.Int64("collectionId", id))
			return
		}

		collection, err := h.collectionService.UpdateCollection(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update collection", slog.Int64("collectionId", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Collection updated", slog.Int64("collectionId", id))
		response.Success(w, http.StatusOK, collection)
	}
}

// DeleteCollection godoc
//
//	@Summary		Delete a collection
//	@Description	Refused while any product still belongs to the collection.
//	@Tags			Collections
//	@Param			id	path	int	true	"Collection ID"
//	@Success		204
//	@Failure		400	{object}	response.ErrorResponse	"Collection contains products"
//	@Failure		404	{object}	response.ErrorResponse	"Collection not found"
//	@Security		BearerAuth
//	@Router			/collections/{id} [delete]
func (h *CollectionHandler) DeleteCollection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseInt64ID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.collectionService.DeleteCollection(r.Context(), id); err != nil {
			logger.Warn("Failed to delete collection", slog.Int64("collectionId", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Collection deleted", slog.Int64("collectionId", id))
		response.NoContent(w)
	}
}
