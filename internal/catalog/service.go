// Package catalog une los repositorios con la caché de consultas: lecturas
// cacheadas, mutaciones que invalidan y suscripciones para pantallas abiertas.
package catalog

import (
	"context"
	"errors"
	"strconv"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"storefront/internal/cache"
	"storefront/internal/filters"
	"storefront/internal/models"
	"storefront/internal/postgrest"
	"storefront/internal/repository"
	"storefront/internal/validation"
)

const (
	ResourceProducts = "products"
	ResourceStores   = "stores"
	ResourceUsers    = "users"
)

type ProductAccessor interface {
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (models.Product, error)
	Create(ctx context.Context, payload models.CreateProductPayload) (models.Product, error)
	PatchByID(ctx context.Context, id string, fields map[string]any) (models.Product, error)
}

type StoreAccessor interface {
	List(ctx context.Context) ([]models.Store, error)
	GetByID(ctx context.Context, id int64) (models.Store, error)
	Create(ctx context.Context, payload models.CreateStorePayload) (models.Store, error)
	PatchByID(ctx context.Context, id int64, fields map[string]any) (models.Store, error)
}

type UserAccessor interface {
	PatchByID(ctx context.Context, id int64, payload models.UpdateUserPayload) (models.User, error)
	PatchBySlug(ctx context.Context, slug string, payload models.UpdateUserPayload) (models.User, error)
}

type Service struct {
	products ProductAccessor
	stores   StoreAccessor
	users    UserAccessor
	cache    *cache.Cache
	log      *logrus.Entry
}

func NewService(products ProductAccessor, stores StoreAccessor, users UserAccessor, c *cache.Cache, log *logrus.Entry) *Service {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = logrus.NewEntry(l)
	}
	return &Service{products: products, stores: stores, users: users, cache: c, log: log}
}

// Retryable decide qué fallas de lectura vale la pena reintentar.
// Toda falla de transporte se reintenta, timeouts del cliente incluidos.
// Un id inexistente o una fila malformada no cambian al repetir.
func Retryable(err error) bool {
	var (
		netErr    *postgrest.NetworkError
		decodeErr *postgrest.DecodeError
	)
	switch {
	case errors.As(err, &netErr):
		return true
	case errors.Is(err, repository.ErrNotFound),
		errors.As(err, &decodeErr),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return false
	}
	return true
}

func (s *Service) ListProducts(ctx context.Context) (cache.Result[[]models.Product], error) {
	return cache.Get(ctx, s.cache, cache.ListKey(ResourceProducts), s.products.List)
}

// FilteredProducts aplica la selección del usuario sobre la lista cacheada.
func (s *Service) FilteredProducts(ctx context.Context, st filters.State) (cache.Result[[]models.Product], error) {
	res, err := s.ListProducts(ctx)
	if res.Data != nil {
		res.Data = filters.Apply(res.Data, st)
	}
	return res, err
}

func (s *Service) GetProduct(ctx context.Context, id string) (cache.Result[models.Product], error) {
	return cache.Get(ctx, s.cache, cache.DetailKey(ResourceProducts, id), func(ctx context.Context) (models.Product, error) {
		return s.products.GetByID(ctx, id)
	})
}

type ProductDetail struct {
	Product cache.Result[models.Product] `json:"product"`
	Store   *cache.Result[models.Store]  `json:"store,omitempty"`
}

// GetProductWithStore agrega la tienda dueña del producto, si tiene.
func (s *Service) GetProductWithStore(ctx context.Context, id string) (ProductDetail, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return ProductDetail{Product: product}, err
	}
	out := ProductDetail{Product: product}
	if product.Data.StoreID == nil {
		return out, nil
	}

	store, err := s.GetStore(ctx, *product.Data.StoreID)
	if err != nil {
		return out, err
	}
	out.Store = &store
	return out, nil
}

// RefetchProducts es el reintento manual de la lista, aunque esté fresca.
func (s *Service) RefetchProducts(ctx context.Context) (cache.Result[[]models.Product], error) {
	res, err := cache.Refresh[[]models.Product](ctx, s.cache, cache.ListKey(ResourceProducts))
	if errors.Is(err, cache.ErrNoFetcher) {
		return s.ListProducts(ctx)
	}
	return res, err
}

func (s *Service) RefetchProduct(ctx context.Context, id string) (cache.Result[models.Product], error) {
	res, err := cache.Refresh[models.Product](ctx, s.cache, cache.DetailKey(ResourceProducts, id))
	if errors.Is(err, cache.ErrNoFetcher) {
		return s.GetProduct(ctx, id)
	}
	return res, err
}

func (s *Service) ListStores(ctx context.Context) (cache.Result[[]models.Store], error) {
	return cache.Get(ctx, s.cache, cache.ListKey(ResourceStores), s.stores.List)
}

func (s *Service) GetStore(ctx context.Context, id int64) (cache.Result[models.Store], error) {
	key := cache.DetailKey(ResourceStores, strconv.FormatInt(id, 10))
	return cache.Get(ctx, s.cache, key, func(ctx context.Context) (models.Store, error) {
		return s.stores.GetByID(ctx, id)
	})
}

type StoreOverview struct {
	Store    cache.Result[models.Store] `json:"store"`
	Products []models.Product           `json:"products"`
}

// GetStoreOverview carga la tienda y su catálogo en paralelo.
func (s *Service) GetStoreOverview(ctx context.Context, id int64) (StoreOverview, error) {
	var (
		store    cache.Result[models.Store]
		products cache.Result[[]models.Product]
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		store, err = s.GetStore(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = s.ListProducts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return StoreOverview{Store: store}, err
	}

	own := make([]models.Product, 0)
	for _, p := range products.Data {
		if p.StoreID != nil && *p.StoreID == id {
			own = append(own, p)
		}
	}
	return StoreOverview{Store: store, Products: own}, nil
}

// CreateProduct valida, crea e invalida las lecturas de productos.
// No se reintenta: el error vuelve tal cual para que el usuario reenvíe.
func (s *Service) CreateProduct(ctx context.Context, in validation.ProductInput) (models.Product, error) {
	if err := in.Validate(); err != nil {
		return models.Product{}, err
	}

	product, err := s.products.Create(ctx, in.Payload())
	if err != nil {
		s.log.WithError(err).WithField("name", in.Name).Error("create product failed")
		return models.Product{}, err
	}

	s.cache.Invalidate(ResourceProducts)
	s.log.WithFields(logrus.Fields{"id": product.ID, "sku": deref(product.SKU)}).Info("product created")
	return product, nil
}

// UpdateProduct aplica un PATCH validado y marca como vencidas las lecturas
// de productos (lista y detalles).
func (s *Service) UpdateProduct(ctx context.Context, id string, in validation.ProductUpdate) (models.Product, error) {
	if err := in.Validate(); err != nil {
		return models.Product{}, err
	}

	product, err := s.products.PatchByID(ctx, id, in.Fields())
	if err != nil {
		s.log.WithError(err).WithField("id", id).Error("update product failed")
		return models.Product{}, err
	}

	s.cache.Invalidate(ResourceProducts)
	s.log.WithField("id", product.ID).Info("product updated")
	return product, nil
}

// UpdateStore edita la tienda; el slug no cambia.
func (s *Service) UpdateStore(ctx context.Context, id int64, in validation.StoreUpdate) (models.Store, error) {
	if err := in.Validate(); err != nil {
		return models.Store{}, err
	}

	store, err := s.stores.PatchByID(ctx, id, in.Fields())
	if err != nil {
		s.log.WithError(err).WithField("store_id", id).Error("update store failed")
		return models.Store{}, err
	}

	s.cache.Invalidate(ResourceStores)
	s.log.WithFields(logrus.Fields{"store_id": store.ID, "slug": store.Slug}).Info("store updated")
	return store, nil
}

// RegisterStoreInput es el onboarding completo: datos del dueño, de la
// tienda y el usuario al que se vincula (por slug o por id).
type RegisterStoreInput struct {
	Owner      validation.OwnerInfo         `json:"owner"`
	Store      validation.StoreRegistration `json:"store"`
	OwnerEmail string                       `json:"owner_email"`
	UserSlug   string                       `json:"user_slug"`
	UserID     *int64                       `json:"user_id"`
}

func (in RegisterStoreInput) Validate() error {
	errs := validation.OwnerInfoSchema.Validate(in.Owner.Values())
	for k, v := range validation.StoreSchema.Validate(in.Store.Values()) {
		errs[k] = v
	}
	if in.UserSlug == "" && in.UserID == nil {
		errs["user"] = "El usuario es requerido"
	}
	return errs.Err()
}

type Registration struct {
	Store models.Store `json:"store"`
	User  models.User  `json:"user"`
}

// RegisterStore crea la tienda y enlaza store_id en el usuario. Si falla
// el enlace la tienda ya existe y se devuelve junto con el error.
func (s *Service) RegisterStore(ctx context.Context, in RegisterStoreInput) (Registration, error) {
	if err := in.Validate(); err != nil {
		return Registration{}, err
	}

	store, err := s.stores.Create(ctx, in.Store.Payload(in.OwnerEmail))
	if err != nil {
		s.log.WithError(err).WithField("store", in.Store.Name).Error("create store failed")
		return Registration{}, err
	}
	s.cache.Invalidate(ResourceStores)

	patch := models.UpdateUserPayload{StoreID: &store.ID}
	var user models.User
	if in.UserSlug != "" {
		user, err = s.users.PatchBySlug(ctx, in.UserSlug, patch)
	} else {
		user, err = s.users.PatchByID(ctx, *in.UserID, patch)
	}
	if err != nil {
		s.log.WithError(err).WithField("store_id", store.ID).Error("link user to store failed")
		return Registration{Store: store}, err
	}
	s.cache.Invalidate(ResourceUsers)

	s.log.WithFields(logrus.Fields{"store_id": store.ID, "slug": store.Slug, "user": user.Slug}).Info("store registered")
	return Registration{Store: store, User: user}, nil
}

// WatchProducts emite la lista cada vez que cambia mientras ctx siga vivo.
func (s *Service) WatchProducts(ctx context.Context) <-chan cache.Result[[]models.Product] {
	return watch(ctx, s.cache, cache.ListKey(ResourceProducts), s.products.List)
}

func (s *Service) WatchProduct(ctx context.Context, id string) <-chan cache.Result[models.Product] {
	return watch(ctx, s.cache, cache.DetailKey(ResourceProducts, id), func(ctx context.Context) (models.Product, error) {
		return s.products.GetByID(ctx, id)
	})
}

// Focus y Reconnect refrescan lo que esté en pantalla.
func (s *Service) Focus() int     { return s.cache.Focus() }
func (s *Service) Reconnect() int { return s.cache.Reconnect() }

func watch[T any](ctx context.Context, c *cache.Cache, key cache.Key, fetch func(context.Context) (T, error)) <-chan cache.Result[T] {
	snaps, cancel := c.Subscribe(key, cache.Erase(fetch))
	out := make(chan cache.Result[T], 1)

	go func() {
		defer close(out)
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case snap, ok := <-snaps:
				if !ok {
					return
				}
				select {
				case out <- cache.ResultOf[T](snap):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
