package api

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/negrosgeo/riskmap/internal/pkg/constants"
)

// Validator adapts go-playground/validator to echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return fmt.Errorf("%w: %s", constants.ErrInvalidRequest, err.Error())
	}
	return nil
}

// Binder wraps echo's default binder so binding failures surface as
// client errors instead of opaque 500s.
type Binder struct {
	inner echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	if err := b.inner.Bind(i, c); err != nil {
		return fmt.Errorf("%w: %s", constants.ErrInvalidRequest, err.Error())
	}
	return nil
}
