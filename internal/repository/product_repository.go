package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"storefront/internal/models"
	"storefront/internal/postgrest"
)

const productsPath = "/products"

type ProductRepository struct {
	api Requester
	now Clock
}

func NewProductRepository(api Requester, now Clock) *ProductRepository {
	return &ProductRepository{api: api, now: now}
}

// List obtiene todos los productos
func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	var rows []models.ProductRow
	if err := r.api.Get(ctx, productsPath, &rows); err != nil {
		return nil, err
	}
	if err := checked("products", rows); err != nil {
		return nil, err
	}
	return models.ToProducts(rows), nil
}

// GetByID obtiene un producto por ID
func (r *ProductRepository) GetByID(ctx context.Context, id string) (models.Product, error) {
	var rows []models.ProductRow
	if err := r.api.Get(ctx, postgrest.Query(productsPath, postgrest.Eq("id", id)), &rows); err != nil {
		return models.Product{}, err
	}
	row, err := first(rows, "product", id)
	if err != nil {
		return models.Product{}, err
	}
	if err := checked("products", row); err != nil {
		return models.Product{}, err
	}
	return models.ToProduct(row), nil
}

// Create crea un nuevo producto; si no trae SKU se genera uno
func (r *ProductRepository) Create(ctx context.Context, payload models.CreateProductPayload) (models.Product, error) {
	if payload.SKU == nil || strings.TrimSpace(*payload.SKU) == "" {
		sku := NewSKU()
		payload.SKU = &sku
	}

	var rows []models.ProductRow
	if err := r.api.Post(ctx, productsPath, payload, &rows); err != nil {
		return models.Product{}, err
	}
	row, err := first(rows, "product", "created")
	if err != nil {
		return models.Product{}, err
	}
	if err := checked("products", row); err != nil {
		return models.Product{}, err
	}
	return models.ToProduct(row), nil
}

// PatchByID actualiza parcialmente un producto, agregando updated_at
func (r *ProductRepository) PatchByID(ctx context.Context, id string, fields map[string]any) (models.Product, error) {
	var rows []models.ProductRow
	endpoint := postgrest.Query(productsPath, postgrest.Eq("id", id))
	if err := r.api.Patch(ctx, endpoint, withUpdatedAt(fields, r.now), &rows); err != nil {
		return models.Product{}, err
	}
	row, err := first(rows, "product", id)
	if err != nil {
		return models.Product{}, err
	}
	if err := checked("products", row); err != nil {
		return models.Product{}, err
	}
	return models.ToProduct(row), nil
}

// NewSKU genera un SKU con el formato SKU-XXXXXXXX
func NewSKU() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "SKU-" + raw[:8]
}
