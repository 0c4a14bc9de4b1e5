// internal/validation/validator.go
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/dangerclosesec/thinknest/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Error carries per-field messages and unwraps to domain.ErrInvalidInput.
type Error struct {
	Details []string
}

func (e *Error) Error() string {
	if len(e.Details) == 0 {
		return domain.ErrInvalidInput.Error()
	}
	return "invalid input: " + strings.Join(e.Details, "; ")
}

func (e *Error) Unwrap() error {
	return domain.ErrInvalidInput
}

// NewError builds an Error from preformatted field messages.
func NewError(details ...string) *Error {
	return &Error{Details: details}
}

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(optionalValue[string], domain.Optional[string]{})
	v.RegisterCustomTypeFunc(optionalValue[int], domain.Optional[int]{})
	v.RegisterCustomTypeFunc(optionalValue[bool], domain.Optional[bool]{})
	v.RegisterCustomTypeFunc(optionalValue[float64], domain.Optional[float64]{})
	v.RegisterCustomTypeFunc(optionalValue[time.Time], domain.Optional[time.Time]{})
	v.RegisterCustomTypeFunc(optionalValue[uuid.UUID], domain.Optional[uuid.UUID]{})

	v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return slugPattern.MatchString(value)
	})

	v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		_, err := time.Parse(time.DateOnly, value)
		return err == nil
	})

	return &Validator{v: v}
}

// optionalValue exposes the wrapped value to validator rules. Absent and null read as a nil
// *T so both omitempty and omitnil skip them; omitnil still checks a present zero value.
func optionalValue[T any](field reflect.Value) interface{} {
	o, ok := field.Interface().(domain.Optional[T])
	if !ok || !o.Valid() {
		return (*T)(nil)
	}
	return o.Value
}

// Struct validates s and converts rule failures into *Error.
func (v *Validator) Struct(s interface{}) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return &Error{Details: Details(ve)}
	}
	return fmt.Errorf("validating %T: %w", s, err)
}

// Details renders one message per failed field, e.g. "limit must be at most 100".
func Details(errs validator.ValidationErrors) []string {
	details := make([]string, 0, len(errs))
	for _, fe := range errs {
		details = append(details, message(fe))
	}
	return details
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min", "gte":
		if isText(fe.Kind()) {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		if isText(fe.Kind()) {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "email":
		return field + " must be a valid email address"
	case "url", "http_url":
		return field + " must be a valid URL"
	case "slug":
		return field + " must contain only lowercase letters, digits and dashes"
	case "dive":
		return field + " contains an invalid entry"
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

func isText(k reflect.Kind) bool {
	return k == reflect.String
}
