package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stocktrack/inventory-service/internal/models"
	"github.com/stocktrack/inventory-service/internal/store"
)

// ItemHandler handles the /api/items endpoints. It parses parameters, calls
// the store, and maps results to responses; no business logic lives here.
type ItemHandler struct {
	store  *store.Store
	logger *slog.Logger
}

// NewItemHandler creates a new item handler
func NewItemHandler(store *store.Store, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		store:  store,
		logger: logger,
	}
}

// ListItems handles GET /api/items
func (h *ItemHandler) ListItems(c *gin.Context) {
	filter := models.ListFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}

	items, err := h.store.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list items", "error", err)
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetItem handles GET /api/items/:id
func (h *ItemHandler) GetItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.respondNotFound(c)
		return
	}

	item, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			h.logger.Error("Failed to get item", "id", id, "error", err)
		}
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// CreateItem handles POST /api/items
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req models.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to parse create request", "error", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request format",
		})
		return
	}

	item, err := h.store.Create(c.Request.Context(), &req)
	if err != nil {
		var verr *models.ValidationError
		if !errors.As(err, &verr) {
			h.logger.Error("Failed to create item", "error", err)
		}
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateItem handles PUT /api/items/:id
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.respondNotFound(c)
		return
	}

	var req models.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to parse update request", "id", id, "error", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request format",
		})
		return
	}

	item, err := h.store.Update(c.Request.Context(), id, &req)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			h.logger.Error("Failed to update item", "id", id, "error", err)
		}
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteItem handles DELETE /api/items/:id
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.respondNotFound(c)
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			h.logger.Error("Failed to delete item", "id", id, "error", err)
		}
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseID reads the :id path parameter. A non-numeric id behaves like a
// failed lookup, not a parse error.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// respondError maps store failures onto the response contract: validation
// errors are 400, missing records 404, anything else is a storage-level 500.
func (h *ItemHandler) respondError(c *gin.Context, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: verr.Error(),
		})
	case errors.Is(err, models.ErrNotFound):
		h.respondNotFound(c)
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "storage_error",
			Message: "Failed to access inventory storage",
		})
	}
}

func (h *ItemHandler) respondNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "not_found",
		Message: "Item not found",
	})
}
