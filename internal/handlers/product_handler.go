package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront/internal/cache"
	"storefront/internal/filters"
	"storefront/internal/models"
	"storefront/internal/validation"
)

type ProductHandler struct {
	svc     CatalogService
	filters *filters.Store
	log     logrus.FieldLogger
}

func NewProductHandler(svc CatalogService, f *filters.Store, log logrus.FieldLogger) *ProductHandler {
	return &ProductHandler{svc: svc, filters: f, log: log}
}

// selection usa los filtros guardados; category y q en la query los reemplazan.
func (h *ProductHandler) selection(c *gin.Context) filters.State {
	st := h.filters.State()
	if v, ok := c.GetQuery("category"); ok {
		st.SelectedCategory = v
	}
	if v, ok := c.GetQuery("q"); ok {
		st.SearchQuery = v
	}
	return st
}

// GET /v1/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	res, err := h.svc.FilteredProducts(c.Request.Context(), h.selection(c))
	respondQuery(c, h.log, res, err)
}

// GET /v1/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")

	if c.Query("include") == "store" {
		detail, err := h.svc.GetProductWithStore(c.Request.Context(), id)
		if err != nil && !detail.Product.HasData {
			respondError(c, h.log, err)
			return
		}
		resp := gin.H{"product": newQueryResponse(detail.Product)}
		if detail.Store != nil {
			resp["store"] = newQueryResponse(*detail.Store)
		}
		if err != nil {
			resp["error"] = err.Error()
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	res, err := h.svc.GetProduct(c.Request.Context(), id)
	respondQuery(c, h.log, res, err)
}

// POST /v1/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var in validation.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	product, err := h.svc.CreateProduct(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// PATCH /v1/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var in validation.ProductUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	product, err := h.svc.UpdateProduct(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// POST /v1/products/refetch
func (h *ProductHandler) RefetchProducts(c *gin.Context) {
	res, err := h.svc.RefetchProducts(c.Request.Context())
	if res.Data != nil {
		res.Data = filters.Apply(res.Data, h.selection(c))
	}
	respondQuery(c, h.log, res, err)
}

// POST /v1/products/:id/refetch
func (h *ProductHandler) RefetchProduct(c *gin.Context) {
	res, err := h.svc.RefetchProduct(c.Request.Context(), c.Param("id"))
	respondQuery(c, h.log, res, err)
}

// GET /v1/products/watch (SSE)
func (h *ProductHandler) WatchProducts(c *gin.Context) {
	updates := h.svc.WatchProducts(c.Request.Context())
	stream(c, updates, func(res cache.Result[[]models.Product]) any {
		res.Data = filters.Apply(res.Data, h.selection(c))
		return newQueryResponse(res)
	})
}

// GET /v1/products/:id/watch (SSE)
func (h *ProductHandler) WatchProduct(c *gin.Context) {
	updates := h.svc.WatchProduct(c.Request.Context(), c.Param("id"))
	stream(c, updates, func(res cache.Result[models.Product]) any {
		return newQueryResponse(res)
	})
}

// stream manda un evento por cada cambio hasta que se cierre el canal
// (el cliente se fue o el servicio terminó).
func stream[T any](c *gin.Context, updates <-chan cache.Result[T], render func(cache.Result[T]) any) {
	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Stream(func(w io.Writer) bool {
		res, ok := <-updates
		if !ok {
			return false
		}
		c.SSEvent(res.Status.String(), render(res))
		return true
	})
}
