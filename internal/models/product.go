package models

import (
	"math"
	"strconv"
)

// ProductRow es la fila tal como la devuelve el backend.
type ProductRow struct {
	ID            int64    `json:"id" validate:"gte=0"`
	StoreID       *int64   `json:"store_id,omitempty"`
	CategoryID    *string  `json:"category_id,omitempty"`
	SKU           *string  `json:"sku,omitempty"`
	Name          string   `json:"name" validate:"required"`
	Description   *string  `json:"description,omitempty"`
	Price         *float64 `json:"price" validate:"required,gte=0"`
	PriceList     *float64 `json:"price_list,omitempty" validate:"omitempty,gte=0"`
	PriceBase     *float64 `json:"price_base,omitempty" validate:"omitempty,gte=0"`
	StockQuantity *int     `json:"stock_quantity" validate:"required,gte=0"`
	ImageURI      *string  `json:"image_uri,omitempty"`
	Rating        *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Trending      *bool    `json:"trending,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"`
	CreatedAt     *string  `json:"created_at,omitempty"`
}

// Product es la forma que consume la app: id como string para las rutas.
type Product struct {
	ID            string   `json:"id"`
	StoreID       *int64   `json:"store_id,omitempty"`
	CategoryID    *string  `json:"category_id,omitempty"`
	SKU           *string  `json:"sku,omitempty"`
	Name          string   `json:"name"`
	Description   *string  `json:"description,omitempty"`
	Price         float64  `json:"price"`
	PriceList     *float64 `json:"price_list,omitempty"`
	PriceBase     *float64 `json:"price_base,omitempty"`
	StockQuantity int      `json:"stock_quantity"`
	ImageURI      *string  `json:"image_uri,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	Trending      *bool    `json:"trending,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"`
	CreatedAt     *string  `json:"created_at,omitempty"`

	// DiscountPercent se calcula desde price y price_list para mostrar.
	DiscountPercent *int `json:"discount_percent,omitempty"`
}

// CreateProductPayload es el cuerpo de POST /products.
type CreateProductPayload struct {
	StoreID       *int64   `json:"store_id,omitempty"`
	CategoryID    *string  `json:"category_id,omitempty"`
	SKU           *string  `json:"sku,omitempty"`
	Name          string   `json:"name"`
	Description   *string  `json:"description,omitempty"`
	Price         float64  `json:"price"`
	PriceList     *float64 `json:"price_list,omitempty"`
	PriceBase     *float64 `json:"price_base,omitempty"`
	StockQuantity int      `json:"stock_quantity"`
	ImageURI      *string  `json:"image_uri,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	Trending      *bool    `json:"trending,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

// ToProduct transforma una fila en la entidad de la app.
// Los opcionales se copian tal cual; price y stock se asumen ya verificados con CheckRow.
func ToProduct(row ProductRow) Product {
	p := Product{
		ID:          strconv.FormatInt(row.ID, 10),
		StoreID:     row.StoreID,
		CategoryID:  row.CategoryID,
		SKU:         row.SKU,
		Name:        row.Name,
		Description: row.Description,
		PriceList:   row.PriceList,
		PriceBase:   row.PriceBase,
		ImageURI:    row.ImageURI,
		Rating:      row.Rating,
		Trending:    row.Trending,
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt,
	}
	if row.Price != nil {
		p.Price = *row.Price
	}
	if row.StockQuantity != nil {
		p.StockQuantity = *row.StockQuantity
	}
	if pct, ok := p.Discount(); ok {
		p.DiscountPercent = &pct
	}
	return p
}

func ToProducts(rows []ProductRow) []Product {
	out := make([]Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToProduct(r))
	}
	return out
}

// Category devuelve la categoría o "" si no tiene.
func (p Product) Category() string {
	if p.CategoryID == nil {
		return ""
	}
	return *p.CategoryID
}

// Discount devuelve el porcentaje de descuento a mostrar cuando price_list > price.
// No valida la relación entre precios, solo la usa para mostrar.
func (p Product) Discount() (int, bool) {
	if p.PriceList == nil || *p.PriceList <= p.Price || p.Price <= 0 {
		return 0, false
	}
	list := *p.PriceList
	return int(math.Round((list - p.Price) / list * 100)), true
}
