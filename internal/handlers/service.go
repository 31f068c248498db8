package handlers

import (
	"context"

	"storefront/internal/cache"
	"storefront/internal/catalog"
	"storefront/internal/filters"
	"storefront/internal/models"
	"storefront/internal/validation"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_catalog.go -package=mocks

// CatalogService es lo que los handlers usan del catálogo.
type CatalogService interface {
	FilteredProducts(ctx context.Context, st filters.State) (cache.Result[[]models.Product], error)
	GetProduct(ctx context.Context, id string) (cache.Result[models.Product], error)
	GetProductWithStore(ctx context.Context, id string) (catalog.ProductDetail, error)
	RefetchProducts(ctx context.Context) (cache.Result[[]models.Product], error)
	RefetchProduct(ctx context.Context, id string) (cache.Result[models.Product], error)
	CreateProduct(ctx context.Context, in validation.ProductInput) (models.Product, error)
	UpdateProduct(ctx context.Context, id string, in validation.ProductUpdate) (models.Product, error)
	ListStores(ctx context.Context) (cache.Result[[]models.Store], error)
	GetStore(ctx context.Context, id int64) (cache.Result[models.Store], error)
	GetStoreOverview(ctx context.Context, id int64) (catalog.StoreOverview, error)
	UpdateStore(ctx context.Context, id int64, in validation.StoreUpdate) (models.Store, error)
	RegisterStore(ctx context.Context, in catalog.RegisterStoreInput) (catalog.Registration, error)
	WatchProducts(ctx context.Context) <-chan cache.Result[[]models.Product]
	WatchProduct(ctx context.Context, id string) <-chan cache.Result[models.Product]
	Focus() int
	Reconnect() int
}
