package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront/internal/cache"
	"storefront/internal/postgrest"
	"storefront/internal/repository"
	"storefront/internal/validation"
)

// Estructuras para respuestas
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

// QueryResponse envuelve una lectura cacheada. Con datos viejos y un error
// se responde 200 con stale=true y el error, para mostrar el aviso.
type QueryResponse[T any] struct {
	Data      T         `json:"data"`
	Status    string    `json:"status"`
	Stale     bool      `json:"stale"`
	Error     string    `json:"error,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newQueryResponse[T any](res cache.Result[T]) QueryResponse[T] {
	out := QueryResponse[T]{
		Data:      res.Data,
		Status:    res.Status.String(),
		Stale:     res.Stale(),
		UpdatedAt: res.UpdatedAt,
	}
	if res.Err != nil {
		out.Error = res.Err.Error()
	}
	return out
}

// statusFor traduce los errores del catálogo a códigos HTTP.
func statusFor(err error) int {
	var (
		verrs   validation.Errors
		decErr  *postgrest.DecodeError
		httpErr *postgrest.HTTPError
		netErr  *postgrest.NetworkError
	)
	switch {
	case errors.As(err, &verrs):
		return http.StatusUnprocessableEntity
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &decErr), errors.As(err, &httpErr):
		return http.StatusBadGateway
	case errors.As(err, &netErr):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, log logrus.FieldLogger, err error) {
	status := statusFor(err)
	resp := ErrorResponse{Error: err.Error()}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		resp.Error = "validation failed"
		resp.Fields = verrs
	}

	entry := log.WithFields(logrus.Fields{"status": status, "error": err.Error(), "request_id": c.GetString(requestIDKey)})
	if status >= http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Debug("request rejected")
	}
	c.JSON(status, resp)
}

// respondQuery responde con los datos aunque haya error, si los hay.
func respondQuery[T any](c *gin.Context, log logrus.FieldLogger, res cache.Result[T], err error) {
	if err != nil && !res.HasData {
		respondError(c, log, err)
		return
	}
	if err != nil && res.Err == nil {
		res.Err = err
	}
	c.JSON(http.StatusOK, newQueryResponse(res))
}
