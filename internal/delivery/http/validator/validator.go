// Package validator wires go-playground/validator into Echo's request
// validation hook.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator adapts a validator instance to echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a request validator for the Echo server.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(),
	}
}

// Validate checks the struct tags on the bound request payload.
func (v *CustomValidator) Validate(i any) error {
	return errors.WithStack(v.validate.Struct(i))
}
