// SPDX-License-Identifier: MIT
// Package: tapewalk/fixture

package fixture

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/tapewalk/walker"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("tape", validateTape); err != nil {
		panic(err)
	}

	// report TOML names instead of Go field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// validateTape accepts strings that walker.ParseTape accepts.
func validateTape(fl validator.FieldLevel) bool {
	_, err := walker.ParseTape(fl.Field().String())
	return err == nil
}

// Validate checks every field rule of s and its nodes, collecting all failures.
func (s *Scenario) Validate() error {
	var errs ValidationErrors

	if err := validate.Struct(s); err != nil {
		errs = append(errs, convertValidatorErrors(err, "", "")...)
	}
	for i, n := range s.Nodes {
		if err := validate.Struct(n); err != nil {
			errs = append(errs, convertValidatorErrors(err, fmt.Sprintf("node.%d", i), n.ID)...)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "required_without":
		return fmt.Sprintf("field is required when %s is empty", e.Param())
	case "excluded_with":
		return fmt.Sprintf("must be empty when %s is set", e.Param())
	case "min":
		return fmt.Sprintf("must have at least %s entries", e.Param())
	case "gte":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "tape":
		return "must be a non-empty sequence of L and R"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

func convertValidatorErrors(err error, fieldPrefix, itemName string) ValidationErrors {
	var out ValidationErrors

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ValidationErrors{{ItemName: itemName, FieldPath: fieldPrefix, Message: err.Error()}}
	}
	for _, e := range verrs {
		path := e.Field()
		if fieldPrefix != "" {
			path = fieldPrefix + "." + path
		}
		out = append(out, ValidationError{
			ItemName:  itemName,
			FieldPath: path,
			Message:   getValidationMessage(e),
		})
	}

	return out
}
