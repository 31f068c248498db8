package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Kind indica cómo se interpreta el valor de un campo.
type Kind int

const (
	Text Kind = iota
	Number
)

// Rule es una etiqueta de validator con el mensaje que se muestra si falla.
type Rule struct {
	Tag     string
	Message string
}

type Field struct {
	Name     string
	Kind     Kind
	Required bool
	Rules    []Rule
}

// Schema agrupa las reglas de un formulario. Cada campo se valida por separado.
type Schema struct {
	Name   string
	Fields []Field
}

// Errors mapea campo → mensaje.
type Errors map[string]string

func (e Errors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Err devuelve nil cuando no hay errores.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

const notANumber = "Debe ser un número"

func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// ValidateField devuelve el primer mensaje de error del campo o "".
// Un campo desconocido no tiene reglas.
func (s *Schema) ValidateField(name string, value any) string {
	f, ok := s.Field(name)
	if !ok {
		return ""
	}

	var v any
	switch f.Kind {
	case Number:
		n, present, err := toNumber(value)
		if !present {
			if f.Required && len(f.Rules) > 0 {
				return f.Rules[0].Message
			}
			return ""
		}
		if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
			return notANumber
		}
		v = n
	default:
		v = toText(value)
	}

	for _, r := range f.Rules {
		if !check(v, r.Tag) {
			return r.Message
		}
	}
	return ""
}

// ValidatePartial valida solo los campos presentes en values (PATCH).
// Los campos que el esquema no conoce se ignoran.
func (s *Schema) ValidatePartial(values map[string]any) Errors {
	errs := Errors{}
	for name, v := range values {
		if msg := s.ValidateField(name, v); msg != "" {
			errs[name] = msg
		}
	}
	return errs
}

// Validate corre todos los campos del esquema.
func (s *Schema) Validate(values map[string]any) Errors {
	errs := Errors{}
	for _, f := range s.Fields {
		if msg := s.ValidateField(f.Name, values[f.Name]); msg != "" {
			errs[f.Name] = msg
		}
	}
	return errs
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	}
	return false
}

func toText(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	}
	return fmt.Sprint(value)
}

func toNumber(value any) (float64, bool, error) {
	if isEmpty(value) {
		return 0, false, nil
	}
	switch v := value.(type) {
	case float64:
		return v, true, nil
	case float32:
		return float64(v), true, nil
	case int:
		return float64(v), true, nil
	case int64:
		return float64(v), true, nil
	case json.Number:
		f, err := v.Float64()
		return f, true, err
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, true, err
	}
	return 0, true, fmt.Errorf("unsupported value %T", value)
}
