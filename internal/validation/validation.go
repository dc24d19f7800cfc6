// Package validation checks records at the repository boundary before they
// reach the store.
//
// Rules are declared as `validate` struct tags on the entities and evaluated
// with go-playground/validator. Two extra tags are registered:
//
//	monthyear  YYYY-MM billing period
//	isodate    YYYY-MM-DD calendar date
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mrlokans/reforco/internal/entities"
)

// FieldError describes one rejected field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

func (f FieldError) String() string {
	if f.Param != "" {
		return fmt.Sprintf("%s: %s=%s", f.Field, f.Rule, f.Param)
	}
	return fmt.Sprintf("%s: %s", f.Field, f.Rule)
}

// Error is returned when a record fails validation.
type Error struct {
	Entity string
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return fmt.Sprintf("invalid %s: %s", e.Entity, strings.Join(parts, "; "))
}

// IsValidationError reports whether err wraps an *Error.
func IsValidationError(err error) bool {
	var verr *Error
	return errors.As(err, &verr)
}

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// Report JSON names so messages match what callers send.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("monthyear", func(fl validator.FieldLevel) bool {
			return IsMonthYear(fl.Field().String())
		})
		_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			return IsDate(fl.Field().String())
		})
		instance = v
	})
	return instance
}

// IsMonthYear reports whether s is a YYYY-MM billing period.
func IsMonthYear(s string) bool {
	if len(s) != len(entities.MonthYearLayout) {
		return false
	}
	_, err := time.Parse(entities.MonthYearLayout, s)
	return err == nil
}

// IsDate reports whether s is a YYYY-MM-DD calendar date.
func IsDate(s string) bool {
	if len(s) != len(entities.LogDateLayout) {
		return false
	}
	_, err := time.Parse(entities.LogDateLayout, s)
	return err == nil
}

// Struct validates a tagged record. entity names the record in the error.
func Struct(entity string, v any) error {
	err := get().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &Error{Entity: entity}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}

// Field builds a single-field *Error for checks that are not struct tags.
func Field(entity, field, rule string) error {
	return &Error{Entity: entity, Fields: []FieldError{{Field: field, Rule: rule}}}
}
