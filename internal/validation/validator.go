package validation

import (
	"errors"
	"reflect"
	"strings"

	"listing-service/internal/listingerrors"
	"listing-service/internal/models"

	"github.com/go-playground/validator/v10"
)

// ProductValidator checks that all mandatory listing fields are present on a
// write payload.
type ProductValidator struct {
	validate *validator.Validate
}

// NewProductValidator creates a validator that names fields by their json tag
func NewProductValidator() *ProductValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &ProductValidator{validate: validate}
}

// Validate returns nil for a complete payload, otherwise a
// *listingerrors.ValidationError listing every required field.
func (v *ProductValidator) Validate(input models.ProductInput) error {
	if err := v.validate.Struct(input); err != nil {
		return listingerrors.NewValidationError(err)
	}
	return nil
}

// MissingFields reports which required fields actually failed. It is used for
// logging only; clients always receive the canonical list.
func MissingFields(err error) []string {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return nil
	}

	fields := make([]string, 0, len(vErrs))
	for _, fe := range vErrs {
		fields = append(fields, fe.Field())
	}
	return fields
}
