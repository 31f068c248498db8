package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/models"
	"storefront/internal/postgrest"
)

// ErrNotFound se devuelve cuando una búsqueda por id no trae filas.
var ErrNotFound = errors.New("not found")

// Requester es lo que los repositorios necesitan del cliente REST.
type Requester interface {
	Get(ctx context.Context, endpoint string, out any) error
	Post(ctx context.Context, endpoint string, body, out any) error
	Patch(ctx context.Context, endpoint string, body, out any) error
}

// Clock permite fijar la hora en los tests.
type Clock func() time.Time

// Formato de updated_at: UTC con milisegundos.
const timestampLayout = "2006-01-02T15:04:05.000Z"

func stamp(now Clock) string {
	if now == nil {
		now = time.Now
	}
	return now().UTC().Format(timestampLayout)
}

// first devuelve la primera fila o ErrNotFound.
func first[T any](rows []T, resource, key string) (T, error) {
	if len(rows) == 0 {
		var zero T
		return zero, fmt.Errorf("%s %s: %w", resource, key, ErrNotFound)
	}
	return rows[0], nil
}

// checked valida las filas decodificadas antes de transformarlas.
func checked(resource string, rows any) error {
	if err := models.CheckRow(rows); err != nil {
		return &postgrest.DecodeError{Resource: resource, Err: err}
	}
	return nil
}

func withUpdatedAt(fields map[string]any, now Clock) map[string]any {
	out := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out["updated_at"] = stamp(now)
	return out
}
