// Package validate wraps go-playground validation so handlers can
// report every failing field of a request body, named by its json key.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

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
		return name
	})
	return &Validator{v: v}
}

// FieldError describes one failing field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error collects every field failure of a single value.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// Struct validates v and returns either nil or an *Error listing all
// failing fields, not just the first.
func (val *Validator) Struct(v any) error {
	err := val.v.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fieldPath(fe),
			Message: message(fe),
		})
	}
	return out
}

// fieldPath strips the root struct name from the namespace, leaving
// dotted json names for nested fields ("host.email").
func fieldPath(fe validator.FieldError) string {
	path := fe.Namespace()
	if i := strings.Index(path, "."); i >= 0 {
		return path[i+1:]
	}
	return path
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "gte":
		return "must be " + fe.Param() + " or greater"
	case "lte":
		return "must be " + fe.Param() + " or less"
	default:
		return "is invalid"
	}
}
