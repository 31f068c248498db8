package repository

import (
	"context"
	"strconv"

	"storefront/internal/models"
	"storefront/internal/postgrest"
)

const usersPath = "/users"

// UserRepository solo parcha: los usuarios los crea y lee el proveedor de identidad.
type UserRepository struct {
	api Requester
	now Clock
}

func NewUserRepository(api Requester, now Clock) *UserRepository {
	return &UserRepository{api: api, now: now}
}

func (r *UserRepository) PatchByID(ctx context.Context, id int64, payload models.UpdateUserPayload) (models.User, error) {
	return r.patch(ctx, "id", strconv.FormatInt(id, 10), payload)
}

func (r *UserRepository) PatchBySlug(ctx context.Context, slug string, payload models.UpdateUserPayload) (models.User, error) {
	return r.patch(ctx, "slug", slug, payload)
}

func (r *UserRepository) patch(ctx context.Context, field, value string, payload models.UpdateUserPayload) (models.User, error) {
	payload.UpdatedAt = stamp(r.now)

	var rows []models.User
	if err := r.api.Patch(ctx, postgrest.Query(usersPath, postgrest.Eq(field, value)), payload, &rows); err != nil {
		return models.User{}, err
	}
	return r.one(rows, value)
}

func (r *UserRepository) one(rows []models.User, key string) (models.User, error) {
	row, err := first(rows, "user", key)
	if err != nil {
		return models.User{}, err
	}
	if err := checked("users", row); err != nil {
		return models.User{}, err
	}
	return models.ToUser(row), nil
}
