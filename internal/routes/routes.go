package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront/internal/filters"
	"storefront/internal/handlers"
)

// Deps son las piezas que necesitan los handlers.
type Deps struct {
	Catalog handlers.CatalogService
	Filters *filters.Store
	Log     logrus.FieldLogger
}

func RegisterRoutes(router *gin.Engine, d Deps) {
	router.Use(handlers.RequestID(), handlers.Logger(d.Log))

	products := handlers.NewProductHandler(d.Catalog, d.Filters, d.Log)
	stores := handlers.NewStoreHandler(d.Catalog, d.Log)
	filterH := handlers.NewFilterHandler(d.Filters)
	forms := handlers.NewFormHandler()
	app := handlers.NewAppHandler(d.Catalog)

	router.GET("/healthz", app.Health)

	v1 := router.Group("/v1")
	{
		v1.GET("/products", products.ListProducts)
		v1.POST("/products", products.CreateProduct)
		v1.POST("/products/refetch", products.RefetchProducts)
		v1.GET("/products/watch", products.WatchProducts)
		v1.GET("/products/:id", products.GetProduct)
		v1.PATCH("/products/:id", products.UpdateProduct)
		v1.POST("/products/:id/refetch", products.RefetchProduct)
		v1.GET("/products/:id/watch", products.WatchProduct)

		v1.GET("/stores", stores.ListStores)
		v1.GET("/stores/:id", stores.GetStore)
		v1.PATCH("/stores/:id", stores.UpdateStore)
		v1.POST("/onboarding/store", stores.RegisterStore)

		v1.GET("/filters", filterH.GetFilters)
		v1.DELETE("/filters", filterH.Reset)
		v1.PUT("/filters/category", filterH.SetCategory)
		v1.PUT("/filters/search", filterH.SetSearch)
		v1.POST("/filters/notifications/toggle", filterH.ToggleNotifications)

		v1.GET("/forms/store/categories", forms.StoreCategories)
		v1.POST("/forms/:form/validate", forms.Validate)

		v1.POST("/app/focus", app.Focus)
		v1.POST("/app/reconnect", app.Reconnect)
	}
}
