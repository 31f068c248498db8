package validation

import (
	"strconv"
	"strings"

	"storefront/internal/models"
)

type OwnerInfo struct {
	Names     string `json:"names"`
	LastNames string `json:"last_names"`
	Phone     string `json:"phone"`
	Age       string `json:"age"`
	DNI       string `json:"dni"`
}

func (o OwnerInfo) Values() map[string]any {
	return map[string]any{
		"names":      o.Names,
		"last_names": o.LastNames,
		"phone":      o.Phone,
		"age":        o.Age,
		"dni":        o.DNI,
	}
}

func (o OwnerInfo) Validate() error {
	return OwnerInfoSchema.Validate(o.Values()).Err()
}

type StoreRegistration struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	RUC      string `json:"ruc"`
	Category string `json:"category"`
}

func (s StoreRegistration) Values() map[string]any {
	return map[string]any{
		"name":     s.Name,
		"address":  s.Address,
		"ruc":      s.RUC,
		"category": s.Category,
	}
}

func (s StoreRegistration) Validate() error {
	return StoreSchema.Validate(s.Values()).Err()
}

// Payload arma el cuerpo de POST /stores. Dirección y categoría van en settings.
// Se asume que Validate ya pasó.
func (s StoreRegistration) Payload(ownerEmail string) models.CreateStorePayload {
	p := models.CreateStorePayload{
		Name: s.Name,
		Settings: map[string]any{
			"address":  s.Address,
			"category": s.Category,
		},
	}
	if ruc, err := strconv.ParseInt(s.RUC, 10, 64); err == nil {
		p.RUC = &ruc
	}
	if ownerEmail != "" {
		p.OwnerEmail = &ownerEmail
	}
	return p
}

// ProductInput es lo que envía el formulario de creación de productos.
// Stock llega como número para poder rechazar decimales.
type ProductInput struct {
	StoreID       *int64   `json:"store_id,omitempty"`
	CategoryID    *string  `json:"category_id,omitempty"`
	SKU           *string  `json:"sku,omitempty"`
	Name          string   `json:"name"`
	Description   *string  `json:"description,omitempty"`
	Price         *float64 `json:"price"`
	PriceList     *float64 `json:"price_list,omitempty"`
	PriceBase     *float64 `json:"price_base,omitempty"`
	StockQuantity *float64 `json:"stock_quantity"`
	ImageURI      *string  `json:"image_uri,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	Trending      *bool    `json:"trending,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

func (p ProductInput) Values() map[string]any {
	return map[string]any{
		"name":           p.Name,
		"price":          number(p.Price),
		"stock_quantity": number(p.StockQuantity),
		"rating":         number(p.Rating),
		"price_list":     number(p.PriceList),
		"price_base":     number(p.PriceBase),
		"description":    text(p.Description),
		"sku":            text(p.SKU),
		"image_uri":      text(p.ImageURI),
	}
}

func (p ProductInput) Validate() error {
	return ProductSchema.Validate(p.Values()).Err()
}

// Payload convierte la entrada ya validada en el cuerpo de POST /products.
// Los textos opcionales vacíos no se envían.
func (p ProductInput) Payload() models.CreateProductPayload {
	out := models.CreateProductPayload{
		StoreID:     p.StoreID,
		CategoryID:  blankToNil(p.CategoryID),
		SKU:         blankToNil(p.SKU),
		Name:        p.Name,
		Description: blankToNil(p.Description),
		PriceList:   p.PriceList,
		PriceBase:   p.PriceBase,
		ImageURI:    blankToNil(p.ImageURI),
		Rating:      p.Rating,
		Trending:    p.Trending,
		IsActive:    p.IsActive,
	}
	if p.Price != nil {
		out.Price = *p.Price
	}
	if p.StockQuantity != nil {
		out.StockQuantity = int(*p.StockQuantity)
	}
	return out
}

// ProductUpdate es una edición parcial de producto: solo se validan y envían
// los campos presentes. id, sku y created_at no se pueden cambiar.
type ProductUpdate struct {
	CategoryID    *string  `json:"category_id"`
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	PriceList     *float64 `json:"price_list"`
	PriceBase     *float64 `json:"price_base"`
	StockQuantity *float64 `json:"stock_quantity"`
	ImageURI      *string  `json:"image_uri"`
	Rating        *float64 `json:"rating"`
	Trending      *bool    `json:"trending"`
	IsActive      *bool    `json:"is_active"`
}

func (p ProductUpdate) Values() map[string]any {
	out := map[string]any{}
	setText(out, "category_id", p.CategoryID)
	setText(out, "name", p.Name)
	setText(out, "description", p.Description)
	setText(out, "image_uri", p.ImageURI)
	setNumber(out, "price", p.Price)
	setNumber(out, "price_list", p.PriceList)
	setNumber(out, "price_base", p.PriceBase)
	setNumber(out, "stock_quantity", p.StockQuantity)
	setNumber(out, "rating", p.Rating)
	if p.Trending != nil {
		out["trending"] = *p.Trending
	}
	if p.IsActive != nil {
		out["is_active"] = *p.IsActive
	}
	return out
}

func (p ProductUpdate) Validate() error {
	values := p.Values()
	if len(values) == 0 {
		return Errors{"fields": noChanges}
	}
	return ProductSchema.ValidatePartial(values).Err()
}

// Fields arma el cuerpo del PATCH. Los textos opcionales vacíos se limpian.
func (p ProductUpdate) Fields() map[string]any {
	out := p.Values()
	for _, k := range []string{"category_id", "description", "image_uri"} {
		if v, ok := out[k].(string); ok && strings.TrimSpace(v) == "" {
			out[k] = nil
		}
	}
	if p.StockQuantity != nil {
		out["stock_quantity"] = int(*p.StockQuantity)
	}
	return out
}

// StoreUpdate edita nombre, RUC o plan de una tienda ya registrada.
type StoreUpdate struct {
	Name *string `json:"name"`
	RUC  *string `json:"ruc"`
	Plan *string `json:"plan"`
}

func (s StoreUpdate) Values() map[string]any {
	out := map[string]any{}
	setText(out, "name", s.Name)
	setText(out, "ruc", s.RUC)
	setText(out, "plan", s.Plan)
	return out
}

func (s StoreUpdate) Validate() error {
	values := s.Values()
	if len(values) == 0 {
		return Errors{"fields": noChanges}
	}
	return StoreSchema.ValidatePartial(values).Err()
}

// Fields arma el cuerpo del PATCH; se asume que Validate ya pasó.
func (s StoreUpdate) Fields() map[string]any {
	out := s.Values()
	if s.RUC != nil {
		if ruc, err := strconv.ParseInt(*s.RUC, 10, 64); err == nil {
			out["ruc"] = ruc
		}
	}
	if s.Plan != nil && strings.TrimSpace(*s.Plan) == "" {
		out["plan"] = nil
	}
	return out
}

const noChanges = "No hay cambios para guardar"

func setText(out map[string]any, key string, p *string) {
	if p != nil {
		out[key] = *p
	}
}

func setNumber(out map[string]any, key string, p *float64) {
	if p != nil {
		out[key] = *p
	}
}

func number(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func text(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func blankToNil(p *string) *string {
	if p == nil || strings.TrimSpace(*p) == "" {
		return nil
	}
	return p
}
