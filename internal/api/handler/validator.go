package handler

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/civicconnect/portal/internal/core/domain"
)

// optionTags maps a validation tag to the option set it checks against.
var optionTags = map[string]func() []string{
	"category": func() []string { return optionNames(domain.Categories()) },
	"city":     func() []string { return optionNames(domain.Cities()) },
	"role":     func() []string { return optionNames(domain.Roles()) },
}

func optionNames[T ~string](opts []T) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = string(o)
	}
	return out
}

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
// Field names in messages are the form or query parameter names.
func NewValidator() *echoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(paramName)
	for tag, options := range optionTags {
		options := options // per-iteration copy; the module targets go 1.21 loop semantics
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return slices.Contains(options(), fl.Field().String())
		})
		if err != nil {
			panic(fmt.Sprintf("validator: register %q: %v", tag, err))
		}
	}
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

func paramName(f reflect.StructField) string {
	for _, tag := range []string{"form", "query"} {
		if name, _, _ := strings.Cut(f.Tag.Get(tag), ","); name != "" && name != "-" {
			return name
		}
	}
	return strings.ToLower(f.Name)
}

// fieldError converts a single FieldError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	if options, ok := optionTags[fe.Tag()]; ok {
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(options(), " "))
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
