package validator

import (
	"github.com/go-playground/validator/v10"
)

// ErrorDetail describe un campo que falló la validación de struct.
type ErrorDetail struct {
	Field string
	Tag   string
	Param string
}

var validate = validator.New()

// ValidateStruct valida los tags `validate` de un DTO y devuelve el detalle de cada fallo.
func ValidateStruct(data interface{}) []ErrorDetail {
	var details []ErrorDetail
	if err := validate.Struct(data); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			details = append(details, ErrorDetail{
				Field: fe.StructNamespace(),
				Tag:   fe.Tag(),
				Param: fe.Param(),
			})
		}
	}
	return details
}
