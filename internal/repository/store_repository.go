package repository

import (
	"context"
	"strconv"

	"storefront/internal/models"
	"storefront/internal/postgrest"
)

const storesPath = "/stores"

type StoreRepository struct {
	api Requester
	now Clock
}

func NewStoreRepository(api Requester, now Clock) *StoreRepository {
	return &StoreRepository{api: api, now: now}
}

func (r *StoreRepository) List(ctx context.Context) ([]models.Store, error) {
	var rows []models.Store
	if err := r.api.Get(ctx, storesPath, &rows); err != nil {
		return nil, err
	}
	if err := checked("stores", rows); err != nil {
		return nil, err
	}
	out := make([]models.Store, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.ToStore(row))
	}
	return out, nil
}

func (r *StoreRepository) GetByID(ctx context.Context, id int64) (models.Store, error) {
	key := strconv.FormatInt(id, 10)
	var rows []models.Store
	if err := r.api.Get(ctx, postgrest.Query(storesPath, postgrest.Eq("id", key)), &rows); err != nil {
		return models.Store{}, err
	}
	return r.one(rows, key)
}

// Create registra la tienda y devuelve la primera fila de la representación
func (r *StoreRepository) Create(ctx context.Context, payload models.CreateStorePayload) (models.Store, error) {
	var rows []models.Store
	if err := r.api.Post(ctx, storesPath, payload, &rows); err != nil {
		return models.Store{}, err
	}
	return r.one(rows, "created")
}

func (r *StoreRepository) PatchByID(ctx context.Context, id int64, fields map[string]any) (models.Store, error) {
	key := strconv.FormatInt(id, 10)
	// el slug lo asigna el backend y no se cambia desde el cliente
	fields = withUpdatedAt(fields, r.now)
	delete(fields, "slug")

	var rows []models.Store
	if err := r.api.Patch(ctx, postgrest.Query(storesPath, postgrest.Eq("id", key)), fields, &rows); err != nil {
		return models.Store{}, err
	}
	return r.one(rows, key)
}

func (r *StoreRepository) one(rows []models.Store, key string) (models.Store, error) {
	row, err := first(rows, "store", key)
	if err != nil {
		return models.Store{}, err
	}
	if err := checked("stores", row); err != nil {
		return models.Store{}, err
	}
	return models.ToStore(row), nil
}
