package dto

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/savioruz/futsal/internal/domains/bookings/pricing"
)

// RegisterValidations adds the booking tags to v and reports json or query names
// in validation errors.
func RegisterValidations(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}

			if name != "" {
				return name
			}
		}

		return fld.Name
	})

	if err := v.RegisterValidation("slot", func(fl validator.FieldLevel) bool {
		return pricing.IsAllowedSlot(fl.Field().String())
	}); err != nil {
		return err
	}

	return v.RegisterValidation("court_type", func(fl validator.FieldLevel) bool {
		return pricing.IsValidCourtType(fl.Field().String())
	})
}
