package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"personal-finance/internal/models"

	"github.com/go-playground/validator/v10"
)

var hexColorShort = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validator wraps the go-playground validator with the entry API's custom tags
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// Struct validates a request payload
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a validator with the custom tags registered.
// Field errors are reported under their json names.
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("direction", validateDirection)
	_ = v.RegisterValidation("hexcolor_short", validateHexColorShort)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form", "query"} {
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

	return &Validator{validate: v}
}

// validateDirection accepts income or expense
func validateDirection(fl validator.FieldLevel) bool {
	return models.IsValidDirection(fl.Field().String())
}

// validateHexColorShort accepts #RGB and #RRGGBB
func validateHexColorShort(fl validator.FieldLevel) bool {
	return hexColorShort.MatchString(fl.Field().String())
}
