package validation

import "strings"

// Option es un valor de un selector con su etiqueta.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// StoreCategories son las categorías que se pueden elegir al registrar una tienda.
var StoreCategories = []Option{
	{Value: "ropa", Label: "Ropa y Accesorios"},
	{Value: "perfumes", Label: "Perfumes y Fragancias"},
	{Value: "tecnologia", Label: "Tecnología"},
	{Value: "alimentos", Label: "Alimentos y Bebidas"},
	{Value: "salud", Label: "Salud y Belleza"},
	{Value: "hogar", Label: "Hogar y Decoración"},
	{Value: "deportes", Label: "Deportes y Fitness"},
	{Value: "juguetes", Label: "Juguetes y Juegos"},
	{Value: "libros", Label: "Libros y Papelería"},
	{Value: "otros", Label: "Otros"},
}

func categoryTag() string {
	values := make([]string, 0, len(StoreCategories))
	for _, o := range StoreCategories {
		values = append(values, o.Value)
	}
	return "oneof=" + strings.Join(values, " ")
}

func personName(required, tooLong string) []Rule {
	return []Rule{
		{Tag: "min=1", Message: required},
		{Tag: "max=100", Message: tooLong},
		{Tag: "letters", Message: "Solo se permiten letras"},
	}
}

// OwnerInfoSchema: datos del dueño en el onboarding.
var OwnerInfoSchema = &Schema{
	Name: "owner-info",
	Fields: []Field{
		{Name: "names", Required: true, Rules: personName("Los nombres son requeridos", "Los nombres no pueden exceder 100 caracteres")},
		{Name: "last_names", Required: true, Rules: personName("Los apellidos son requeridos", "Los apellidos no pueden exceder 100 caracteres")},
		{Name: "phone", Required: true, Rules: []Rule{
			{Tag: "len=9,digits", Message: "El número de celular debe tener exactamente 9 dígitos"},
		}},
		{Name: "age", Required: true, Rules: []Rule{
			{Tag: "digits", Message: "La edad debe ser un número"},
			{Tag: "adult_age", Message: "La edad debe estar entre 18 y 120 años"},
		}},
		{Name: "dni", Required: true, Rules: []Rule{
			{Tag: "len=8,digits", Message: "El DNI debe tener exactamente 8 dígitos"},
		}},
	},
}

var StoreSchema = &Schema{
	Name: "store",
	Fields: []Field{
		{Name: "name", Required: true, Rules: []Rule{
			{Tag: "min=1", Message: "El nombre de la tienda es requerido"},
			{Tag: "max=100", Message: "El nombre no puede exceder 100 caracteres"},
		}},
		{Name: "address", Required: true, Rules: []Rule{
			{Tag: "min=1", Message: "La dirección es requerida"},
			{Tag: "max=200", Message: "La dirección no puede exceder 200 caracteres"},
		}},
		{Name: "ruc", Required: true, Rules: []Rule{
			{Tag: "len=11,digits", Message: "El RUC debe tener exactamente 11 dígitos"},
			{Tag: "ruc_prefix", Message: "El RUC debe empezar con 10 (persona) o 20 (empresa)"},
		}},
		{Name: "category", Required: true, Rules: []Rule{
			{Tag: "min=1", Message: "Debes seleccionar una categoría"},
			{Tag: categoryTag(), Message: "Debes seleccionar una categoría"},
		}},
	},
}

var ProductSchema = &Schema{
	Name: "product",
	Fields: []Field{
		{Name: "name", Required: true, Rules: []Rule{
			{Tag: "min=1", Message: "El nombre es requerido"},
			{Tag: "max=255", Message: "El nombre es muy largo"},
		}},
		{Name: "price", Kind: Number, Required: true, Rules: []Rule{
			{Tag: "gt=0", Message: "El precio debe ser mayor a 0"},
		}},
		{Name: "stock_quantity", Kind: Number, Required: true, Rules: []Rule{
			{Tag: "integer", Message: "Debe ser un número entero"},
			{Tag: "gte=0", Message: "El stock no puede ser negativo"},
		}},
		{Name: "rating", Kind: Number, Rules: []Rule{
			{Tag: "gte=0", Message: "La calificación mínima es 0"},
			{Tag: "lte=5", Message: "La calificación máxima es 5"},
		}},
		{Name: "price_list", Kind: Number},
		{Name: "price_base", Kind: Number},
		{Name: "description"},
		{Name: "sku"},
		{Name: "image_uri"},
	},
}

// ProfileSchema: edición de perfil.
var ProfileSchema = &Schema{
	Name: "profile",
	Fields: []Field{
		{Name: "first_name", Required: true, Rules: []Rule{
			{Tag: "min=1", Message: "El nombre es requerido"},
			{Tag: "min=2", Message: "Debe tener al menos 2 caracteres"},
			{Tag: "max=50", Message: "No puede exceder 50 caracteres"},
		}},
		{Name: "last_name", Required: true, Rules: []Rule{
			{Tag: "min=1", Message: "El apellido es requerido"},
			{Tag: "min=2", Message: "Debe tener al menos 2 caracteres"},
			{Tag: "max=50", Message: "No puede exceder 50 caracteres"},
		}},
		{Name: "phone", Required: true, Rules: []Rule{
			{Tag: "min=1", Message: "El número de celular es requerido"},
			{Tag: "len=9,digits", Message: "El número de celular debe tener exactamente 9 dígitos"},
			{Tag: "startswith=9", Message: "El número debe comenzar con 9"},
		}},
	},
}

var schemas = map[string]*Schema{
	OwnerInfoSchema.Name: OwnerInfoSchema,
	StoreSchema.Name:     StoreSchema,
	ProductSchema.Name:   ProductSchema,
	ProfileSchema.Name:   ProfileSchema,
}

// Lookup busca un esquema por nombre de formulario.
func Lookup(name string) (*Schema, bool) {
	s, ok := schemas[name]
	return s, ok
}
