package handlers

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"storefront/internal/cache"
	"storefront/internal/catalog"
	"storefront/internal/filters"
	"storefront/internal/handlers/mocks"
	"storefront/internal/logger"
	"storefront/internal/models"
	"storefront/internal/postgrest"
	"storefront/internal/repository"
	"storefront/internal/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixture struct {
	router  *gin.Engine
	svc     *mocks.MockCatalogService
	filters *filters.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		router:  gin.New(),
		svc:     mocks.NewMockCatalogService(ctrl),
		filters: filters.NewStore(),
	}
	log := logger.Discard()

	products := NewProductHandler(f.svc, f.filters, log)
	stores := NewStoreHandler(f.svc, log)
	filterH := NewFilterHandler(f.filters)
	forms := NewFormHandler()
	app := NewAppHandler(f.svc)

	f.router.Use(RequestID(), Logger(log))
	f.router.GET("/healthz", app.Health)
	f.router.GET("/v1/products", products.ListProducts)
	f.router.POST("/v1/products", products.CreateProduct)
	f.router.GET("/v1/products/watch", products.WatchProducts)
	f.router.GET("/v1/products/:id", products.GetProduct)
	f.router.PATCH("/v1/products/:id", products.UpdateProduct)
	f.router.POST("/v1/products/refetch", products.RefetchProducts)
	f.router.POST("/v1/products/:id/refetch", products.RefetchProduct)
	f.router.GET("/v1/stores", stores.ListStores)
	f.router.GET("/v1/stores/:id", stores.GetStore)
	f.router.PATCH("/v1/stores/:id", stores.UpdateStore)
	f.router.POST("/v1/onboarding/store", stores.RegisterStore)
	f.router.GET("/v1/filters", filterH.GetFilters)
	f.router.PUT("/v1/filters/category", filterH.SetCategory)
	f.router.POST("/v1/filters/notifications/toggle", filterH.ToggleNotifications)
	f.router.POST("/v1/forms/:form/validate", forms.Validate)
	f.router.POST("/v1/app/focus", app.Focus)
	f.router.POST("/v1/app/reconnect", app.Reconnect)
	return f
}

func (f *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, r)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func zapatos() []models.Product {
	cat := "Zapatos"
	return []models.Product{
		{ID: "2", Name: "Women Sneakers", CategoryID: &cat, Price: 30, StockQuantity: 15},
	}
}

func TestListProducts_UsesFilterStoreAndOverrides(t *testing.T) {
	f := newFixture(t)
	f.filters.SetSelectedCategory("Zapatos")

	f.svc.EXPECT().
		FilteredProducts(gomock.Any(), filters.State{SelectedCategory: "Zapatos", Notifications: true}).
		Return(cache.Result[[]models.Product]{Data: zapatos(), Status: cache.StatusFresh, HasData: true}, nil)

	w := f.do(http.MethodGet, "/v1/products", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "fresh", body["status"])
	assert.Equal(t, false, body["stale"])
	assert.Len(t, body["data"], 1)

	f.svc.EXPECT().
		FilteredProducts(gomock.Any(), filters.State{SelectedCategory: "All", SearchQuery: "sneakers", Notifications: true}).
		Return(cache.Result[[]models.Product]{Data: zapatos(), Status: cache.StatusFresh, HasData: true}, nil)

	w = f.do(http.MethodGet, "/v1/products?category=All&q=sneakers", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(postgrest.HeaderRequestID))
}

func TestListProducts_StaleDataWithError(t *testing.T) {
	f := newFixture(t)
	netErr := &postgrest.NetworkError{Op: "GET", Err: errors.New("connection reset")}

	f.svc.EXPECT().FilteredProducts(gomock.Any(), gomock.Any()).
		Return(cache.Result[[]models.Product]{Data: zapatos(), Status: cache.StatusError, HasData: true, Err: netErr}, nil)

	w := f.do(http.MethodGet, "/v1/products", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["stale"])
	assert.Contains(t, body["error"], "connection reset")
}

func TestListProducts_NoDataMapsErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"network", &postgrest.NetworkError{Op: "GET", Err: errors.New("dns")}, http.StatusServiceUnavailable},
		{"http", &postgrest.HTTPError{StatusCode: 500, Status: "Internal Server Error"}, http.StatusBadGateway},
		{"decode", &postgrest.DecodeError{Resource: "products", Err: errors.New("bad row")}, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.svc.EXPECT().FilteredProducts(gomock.Any(), gomock.Any()).
				Return(cache.Result[[]models.Product]{Status: cache.StatusError, Err: tt.err}, tt.err)

			w := f.do(http.MethodGet, "/v1/products", "")
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	f := newFixture(t)
	err := errors.Join(repository.ErrNotFound)
	f.svc.EXPECT().GetProduct(gomock.Any(), "42").
		Return(cache.Result[models.Product]{Status: cache.StatusError, Err: err}, err)

	w := f.do(http.MethodGet, "/v1/products/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProduct_IncludeStore(t *testing.T) {
	f := newFixture(t)
	storeID := int64(4)
	f.svc.EXPECT().GetProductWithStore(gomock.Any(), "1").Return(catalog.ProductDetail{
		Product: cache.Result[models.Product]{Data: models.Product{ID: "1", Name: "Creatine", StoreID: &storeID}, Status: cache.StatusFresh, HasData: true},
		Store:   &cache.Result[models.Store]{Data: models.Store{ID: 4, Name: "Bodega", Slug: "bodega"}, Status: cache.StatusFresh, HasData: true},
	}, nil)

	w := f.do(http.MethodGet, "/v1/products/1?include=store", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	store := body["store"].(map[string]any)
	assert.Equal(t, "bodega", store["data"].(map[string]any)["slug"])
}

func TestCreateProduct(t *testing.T) {
	f := newFixture(t)

	f.svc.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in validation.ProductInput) (models.Product, error) {
			assert.Equal(t, "Trail Runners", in.Name)
			require.NotNil(t, in.Price)
			assert.Equal(t, 99.9, *in.Price)
			return models.Product{ID: "6", Name: in.Name, Price: *in.Price}, nil
		})

	w := f.do(http.MethodPost, "/v1/products", `{"name":"Trail Runners","price":99.9,"stock_quantity":3}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "6", decodeBody(t, w)["id"])
}

func TestCreateProduct_ValidationErrors(t *testing.T) {
	f := newFixture(t)
	verrs := validation.Errors{"price": "El precio debe ser mayor a 0"}
	f.svc.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return(models.Product{}, verrs)

	w := f.do(http.MethodPost, "/v1/products", `{"name":"Trail Runners","price":0,"stock_quantity":3}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "validation failed", body["error"])
	assert.Equal(t, "El precio debe ser mayor a 0", body["fields"].(map[string]any)["price"])
}

func TestCreateProduct_BadJSON(t *testing.T) {
	f := newFixture(t)
	w := f.do(http.MethodPost, "/v1/products", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProduct(t *testing.T) {
	f := newFixture(t)
	f.svc.EXPECT().UpdateProduct(gomock.Any(), "2", gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, in validation.ProductUpdate) (models.Product, error) {
			require.NotNil(t, in.StockQuantity)
			assert.Equal(t, 4.0, *in.StockQuantity)
			assert.Nil(t, in.Name)
			return models.Product{ID: id, Name: "Women Sneakers", StockQuantity: 4}, nil
		})

	w := f.do(http.MethodPatch, "/v1/products/2", `{"stock_quantity":4,"id":99}`)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "2", body["id"])
	assert.Equal(t, 4.0, body["stock_quantity"])
}

func TestUpdateProduct_Errors(t *testing.T) {
	f := newFixture(t)
	f.svc.EXPECT().UpdateProduct(gomock.Any(), "2", gomock.Any()).
		Return(models.Product{}, validation.Errors{"price": "El precio debe ser mayor a 0"})
	f.svc.EXPECT().UpdateProduct(gomock.Any(), "99", gomock.Any()).
		Return(models.Product{}, fmt.Errorf("product 99: %w", repository.ErrNotFound))

	w := f.do(http.MethodPatch, "/v1/products/2", `{"price":0}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "El precio debe ser mayor a 0", decodeBody(t, w)["fields"].(map[string]any)["price"])

	w = f.do(http.MethodPatch, "/v1/products/99", `{"price":10}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(http.MethodPatch, "/v1/products/2", `{"price":"x"`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefetchProducts(t *testing.T) {
	f := newFixture(t)
	cat := "Ropa"
	all := append(zapatos(), models.Product{ID: "1", Name: "Creatine", CategoryID: &cat, Price: 45})
	f.svc.EXPECT().RefetchProducts(gomock.Any()).
		Return(cache.Result[[]models.Product]{Data: all, Status: cache.StatusFresh, HasData: true}, nil)
	f.svc.EXPECT().RefetchProduct(gomock.Any(), "1").
		Return(cache.Result[models.Product]{Data: all[1], Status: cache.StatusFresh, HasData: true}, nil)

	w := f.do(http.MethodPost, "/v1/products/refetch?category=Zapatos", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "fresh", body["status"])
	assert.Len(t, body["data"], 1)

	w = f.do(http.MethodPost, "/v1/products/1/refetch", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Creatine", decodeBody(t, w)["data"].(map[string]any)["name"])
}

func TestListStores(t *testing.T) {
	f := newFixture(t)
	f.svc.EXPECT().ListStores(gomock.Any()).
		Return(cache.Result[[]models.Store]{Data: []models.Store{{ID: 4, Slug: "bodega"}}, Status: cache.StatusFresh, HasData: true}, nil)

	w := f.do(http.MethodGet, "/v1/stores", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["data"], 1)
}

func TestUpdateStore(t *testing.T) {
	f := newFixture(t)
	f.svc.EXPECT().UpdateStore(gomock.Any(), int64(4), gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64, in validation.StoreUpdate) (models.Store, error) {
			require.NotNil(t, in.Name)
			assert.Equal(t, "Bodega Miraflores", *in.Name)
			return models.Store{ID: id, Name: *in.Name, Slug: "bodega"}, nil
		})

	w := f.do(http.MethodPatch, "/v1/stores/4", `{"name":"Bodega Miraflores"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bodega", decodeBody(t, w)["slug"])

	w = f.do(http.MethodPatch, "/v1/stores/abc", `{"name":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetStore(t *testing.T) {
	f := newFixture(t)
	f.svc.EXPECT().GetStore(gomock.Any(), int64(4)).
		Return(cache.Result[models.Store]{Data: models.Store{ID: 4, Slug: "bodega"}, Status: cache.StatusStale, HasData: true}, nil)

	w := f.do(http.MethodGet, "/v1/stores/4", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["stale"])

	w = f.do(http.MethodGet, "/v1/stores/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterStore(t *testing.T) {
	f := newFixture(t)
	storeID := int64(1)
	f.svc.EXPECT().RegisterStore(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in catalog.RegisterStoreInput) (catalog.Registration, error) {
			assert.Equal(t, "ana", in.UserSlug)
			assert.Equal(t, "20123456789", in.Store.RUC)
			return catalog.Registration{
				Store: models.Store{ID: 1, Name: in.Store.Name, Slug: "mi-tienda-1"},
				User:  models.User{ID: 8, Slug: "ana", StoreID: &storeID},
			}, nil
		})

	body := `{"owner":{"names":"Ana","last_names":"Quispe","phone":"987654321","age":"30","dni":"12345678"},
		"store":{"name":"Mi Tienda","address":"Av. Larco 123","ruc":"20123456789","category":"ropa"},
		"user_slug":"ana"}`
	w := f.do(http.MethodPost, "/v1/onboarding/store", body)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "mi-tienda-1", decodeBody(t, w)["store"].(map[string]any)["slug"])
}

func TestRegisterStore_LinkFailureReturnsStore(t *testing.T) {
	f := newFixture(t)
	err := &postgrest.HTTPError{StatusCode: 500, Status: "Internal Server Error"}
	f.svc.EXPECT().RegisterStore(gomock.Any(), gomock.Any()).
		Return(catalog.Registration{Store: models.Store{ID: 1, Slug: "mi-tienda-1"}}, err)

	w := f.do(http.MethodPost, "/v1/onboarding/store", `{"user_slug":"ana"}`)
	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.NotNil(t, decodeBody(t, w)["store"])
}

func TestFilters(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/v1/filters", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "All", body["selected_category"])
	assert.Len(t, body["categories"], 5)

	w = f.do(http.MethodPut, "/v1/filters/category", `{"value":"Zapatos"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Zapatos", f.filters.State().SelectedCategory)

	w = f.do(http.MethodPut, "/v1/filters/category", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(http.MethodPost, "/v1/filters/notifications/toggle", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["notifications"])
}

func TestFormValidate(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/v1/forms/store/validate", `{"field":"ruc","value":"30123456789",
		"values":{"name":"Mi Tienda","address":"Av. Larco 123","category":"ropa"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "El RUC debe empezar con 10 (persona) o 20 (empresa)", body["error"])
	assert.Equal(t, false, body["can_submit"])

	w = f.do(http.MethodPost, "/v1/forms/store/validate", `{"field":"ruc","value":"10123456789",
		"values":{"name":"Mi Tienda","address":"Av. Larco 123","category":"ropa"}}`)
	body = decodeBody(t, w)
	assert.Equal(t, "", body["error"])
	assert.Equal(t, true, body["can_submit"])

	w = f.do(http.MethodPost, "/v1/forms/owner-info/validate", `{"field":"age","value":"17"}`)
	assert.Equal(t, "La edad debe estar entre 18 y 120 años", decodeBody(t, w)["error"])

	w = f.do(http.MethodPost, "/v1/forms/checkout/validate", `{"field":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAppLifecycle(t *testing.T) {
	f := newFixture(t)
	f.svc.EXPECT().Focus().Return(2)
	f.svc.EXPECT().Reconnect().Return(1)

	w := f.do(http.MethodPost, "/v1/app/focus", "")
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, float64(2), decodeBody(t, w)["refetched"])

	w = f.do(http.MethodPost, "/v1/app/reconnect", "")
	assert.Equal(t, float64(1), decodeBody(t, w)["refetched"])

	w = f.do(http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestID_Propagated(t *testing.T) {
	f := newFixture(t)
	f.svc.EXPECT().Focus().Return(0)

	r := httptest.NewRequest(http.MethodPost, "/v1/app/focus", nil)
	r.Header.Set(postgrest.HeaderRequestID, "req-123")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, r)
	assert.Equal(t, "req-123", w.Header().Get(postgrest.HeaderRequestID))
}

func TestWatchProducts_StreamsEvents(t *testing.T) {
	f := newFixture(t)
	f.filters.SetSearchQuery("women")

	ch := make(chan cache.Result[[]models.Product], 2)
	cat := "Zapatos"
	ch <- cache.Result[[]models.Product]{Status: cache.StatusFetching}
	ch <- cache.Result[[]models.Product]{
		Data: []models.Product{
			{ID: "2", Name: "Women Sneakers", CategoryID: &cat},
			{ID: "3", Name: "Casual Sneakers", CategoryID: &cat},
		},
		Status:  cache.StatusFresh,
		HasData: true,
	}
	close(ch)
	var updates <-chan cache.Result[[]models.Product] = ch
	f.svc.EXPECT().WatchProducts(gomock.Any()).Return(updates)

	srv := httptest.NewServer(f.router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/v1/products/watch", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var events, data []string
	sc := bufio.NewScanner(resp.Body)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "event:"):
			events = append(events, strings.TrimSpace(strings.TrimPrefix(line, "event:")))
		case strings.HasPrefix(line, "data:"):
			data = append(data, strings.TrimSpace(strings.TrimPrefix(line, "data:")))
		}
	}

	assert.Equal(t, []string{"fetching", "fresh"}, events)
	require.Len(t, data, 2)
	var last QueryResponse[[]models.Product]
	require.NoError(t, json.NewDecoder(bytes.NewBufferString(data[1])).Decode(&last))
	require.Len(t, last.Data, 1)
	assert.Equal(t, "Women Sneakers", last.Data[0].Name)
}
