package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/filters"
)

type FilterHandler struct {
	store *filters.Store
}

func NewFilterHandler(store *filters.Store) *FilterHandler {
	return &FilterHandler{store: store}
}

type filtersResponse struct {
	filters.State
	Categories []string `json:"categories"`
}

type valueRequest struct {
	Value *string `json:"value" binding:"required"`
}

func (h *FilterHandler) respond(c *gin.Context, st filters.State) {
	c.JSON(http.StatusOK, filtersResponse{State: st, Categories: filters.Categories})
}

// GET /v1/filters
func (h *FilterHandler) GetFilters(c *gin.Context) {
	h.respond(c, h.store.State())
}

// PUT /v1/filters/category
func (h *FilterHandler) SetCategory(c *gin.Context) {
	var req valueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	h.respond(c, h.store.SetSelectedCategory(*req.Value))
}

// PUT /v1/filters/search
func (h *FilterHandler) SetSearch(c *gin.Context) {
	var req valueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	h.respond(c, h.store.SetSearchQuery(*req.Value))
}

// POST /v1/filters/notifications/toggle
func (h *FilterHandler) ToggleNotifications(c *gin.Context) {
	h.respond(c, h.store.ToggleNotifications())
}

// DELETE /v1/filters
func (h *FilterHandler) Reset(c *gin.Context) {
	h.respond(c, h.store.Reset())
}
