// Package forms implements the entity form contracts: initialize every
// field to a defined value, validate synchronously at submit time, and emit
// the payload in the shape the upstream API expects. Validation errors come
// back as a per-field map keyed by API field name; a non-empty map blocks
// submission.
package forms

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Error maps are keyed by the wire field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkStruct runs the struct's validate tags and converts failures into a
// field → message map.
func checkStruct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return map[string]string{}
	}
	errs := map[string]string{}
	for _, fe := range err.(validator.ValidationErrors) {
		errs[fe.Field()] = message(fe)
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Campo obrigatório"
	case "email":
		return "E-mail inválido"
	case "oneof":
		return "Valor inválido"
	}
	return "Valor inválido"
}
