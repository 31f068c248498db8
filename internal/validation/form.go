package validation

import (
	"maps"
	"sync"
)

// Form es el estado de un formulario en pantalla: se valida campo a campo
// en cada cambio.
type Form struct {
	schema *Schema

	mu     sync.Mutex
	values map[string]any
	errors Errors
}

func NewForm(schema *Schema, initial map[string]any) *Form {
	values := make(map[string]any, len(schema.Fields))
	for _, f := range schema.Fields {
		values[f.Name] = initial[f.Name]
	}
	return &Form{schema: schema, values: values, errors: Errors{}}
}

// Change guarda el valor y devuelve el error del campo ("" si es válido).
func (f *Form) Change(field string, value any) string {
	msg := f.schema.ValidateField(field, value)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[field] = value
	if msg == "" {
		delete(f.errors, field)
	} else {
		f.errors[field] = msg
	}
	return msg
}

func (f *Form) Errors() Errors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.errors)
}

func (f *Form) Values() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.values)
}

// CanSubmit: ningún campo con error y todos los requeridos con valor.
func (f *Form) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.errors) > 0 {
		return false
	}
	for _, field := range f.schema.Fields {
		if field.Required && isEmpty(f.values[field.Name]) {
			return false
		}
	}
	return true
}
