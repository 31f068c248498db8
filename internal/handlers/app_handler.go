package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AppHandler recibe los eventos de ciclo de vida de la app.
type AppHandler struct {
	svc CatalogService
}

func NewAppHandler(svc CatalogService) *AppHandler {
	return &AppHandler{svc: svc}
}

// POST /v1/app/focus
func (h *AppHandler) Focus(c *gin.Context) {
	c.JSON(http.StatusAccepted, gin.H{"refetched": h.svc.Focus()})
}

// POST /v1/app/reconnect
func (h *AppHandler) Reconnect(c *gin.Context) {
	c.JSON(http.StatusAccepted, gin.H{"refetched": h.svc.Reconnect()})
}

// GET /healthz
func (h *AppHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, SuccessResponse{Message: "ok"})
}
