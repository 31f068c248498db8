package validation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	lettersRe = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑüÜ\s]+$`)
	digitsRe  = regexp.MustCompile(`^\d+$`)
)

var validate = newValidator()

// newValidator registra las reglas propias de los formularios sobre las de validator.
func newValidator() *validator.Validate {
	v := validator.New()
	must(v.RegisterValidation("letters", func(fl validator.FieldLevel) bool {
		return lettersRe.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		return digitsRe.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("adult_age", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Field().String())
		return err == nil && n >= 18 && n <= 120
	}))
	must(v.RegisterValidation("ruc_prefix", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return strings.HasPrefix(s, "10") || strings.HasPrefix(s, "20")
	}))
	must(v.RegisterValidation("integer", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return f == float64(int64(f))
	}))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// check corre una etiqueta de validator sobre un valor suelto.
func check(value any, tag string) bool {
	return validate.Var(value, tag) == nil
}
