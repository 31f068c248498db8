package cache

import (
	"context"
	"time"
)

// Result es la vista tipada de un Snapshot.
type Result[T any] struct {
	Data      T         `json:"data"`
	Status    Status    `json:"status"`
	HasData   bool      `json:"-"`
	Err       error     `json:"-"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Stale indica que Data puede estar desactualizado.
func (r Result[T]) Stale() bool {
	return r.Status != StatusFresh
}

func ResultOf[T any](s Snapshot) Result[T] {
	data, _ := s.Value.(T)
	return Result[T]{Data: data, Status: s.Status, HasData: s.HasData, Err: s.Err, UpdatedAt: s.UpdatedAt}
}

// Get es Query con tipo.
func Get[T any](ctx context.Context, c *Cache, key Key, fetch func(context.Context) (T, error)) (Result[T], error) {
	snap, err := c.Query(ctx, key, Erase(fetch))
	res := ResultOf[T](snap)
	if err != nil {
		res.Err = err
	}
	return res, err
}

// Refresh es Refetch con tipo. Devuelve ErrNoFetcher si la clave nunca se leyó.
func Refresh[T any](ctx context.Context, c *Cache, key Key) (Result[T], error) {
	snap, err := c.Refetch(ctx, key)
	res := ResultOf[T](snap)
	if err != nil {
		res.Err = err
	}
	return res, err
}

// Erase adapta un fetcher tipado al de la caché.
func Erase[T any](fetch func(context.Context) (T, error)) Fetcher {
	return func(ctx context.Context) (any, error) {
		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}
