package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/validation"
)

type FormHandler struct{}

func NewFormHandler() *FormHandler {
	return &FormHandler{}
}

// ChangeRequest es un evento de cambio: el campo editado y el resto del formulario.
type ChangeRequest struct {
	Field  string         `json:"field" binding:"required"`
	Value  any            `json:"value"`
	Values map[string]any `json:"values"`
}

type ChangeResponse struct {
	Field     string            `json:"field"`
	Error     string            `json:"error"`
	Errors    map[string]string `json:"errors"`
	CanSubmit bool              `json:"can_submit"`
}

// POST /v1/forms/:form/validate
func (h *FormHandler) Validate(c *gin.Context) {
	schema, ok := validation.Lookup(c.Param("form"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown form"})
		return
	}

	var req ChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	form := validation.NewForm(schema, nil)
	for field, value := range req.Values {
		if field != req.Field {
			form.Change(field, value)
		}
	}
	msg := form.Change(req.Field, req.Value)

	c.JSON(http.StatusOK, ChangeResponse{
		Field:     req.Field,
		Error:     msg,
		Errors:    form.Errors(),
		CanSubmit: form.CanSubmit(),
	})
}

// GET /v1/forms/store/categories
func (h *FormHandler) StoreCategories(c *gin.Context) {
	c.JSON(http.StatusOK, validation.StoreCategories)
}
