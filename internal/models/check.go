package models

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

var rowValidator = validator.New(validator.WithRequiredStructEnabled())

// CheckRow verifica que una fila decodificada tenga la forma mínima esperada.
// Acepta una fila o un slice de filas.
func CheckRow(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Slice {
		for i := 0; i < rv.Len(); i++ {
			if err := rowValidator.Struct(rv.Index(i).Interface()); err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
		}
		return nil
	}
	return rowValidator.Struct(rv.Interface())
}
