package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront/internal/catalog"
	"storefront/internal/validation"
)

type StoreHandler struct {
	svc CatalogService
	log logrus.FieldLogger
}

func NewStoreHandler(svc CatalogService, log logrus.FieldLogger) *StoreHandler {
	return &StoreHandler{svc: svc, log: log}
}

// GET /v1/stores
func (h *StoreHandler) ListStores(c *gin.Context) {
	res, err := h.svc.ListStores(c.Request.Context())
	respondQuery(c, h.log, res, err)
}

// GET /v1/stores/:id
func (h *StoreHandler) GetStore(c *gin.Context) {
	id, ok := storeID(c)
	if !ok {
		return
	}

	if c.Query("include") == "products" {
		overview, err := h.svc.GetStoreOverview(c.Request.Context(), id)
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"store":    newQueryResponse(overview.Store),
			"products": overview.Products,
		})
		return
	}

	res, err := h.svc.GetStore(c.Request.Context(), id)
	respondQuery(c, h.log, res, err)
}

// PATCH /v1/stores/:id
func (h *StoreHandler) UpdateStore(c *gin.Context) {
	id, ok := storeID(c)
	if !ok {
		return
	}

	var in validation.StoreUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	store, err := h.svc.UpdateStore(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, store)
}

// POST /v1/onboarding/store
func (h *StoreHandler) RegisterStore(c *gin.Context) {
	var in catalog.RegisterStoreInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	reg, err := h.svc.RegisterStore(c.Request.Context(), in)
	if err != nil {
		// la tienda pudo crearse aunque falle el enlace con el usuario
		if reg.Store.ID != 0 {
			c.JSON(statusFor(err), gin.H{"error": err.Error(), "store": reg.Store})
			return
		}
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, reg)
}

func storeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid store id"})
		return 0, false
	}
	return id, true
}
