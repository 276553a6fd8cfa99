package handlers

import (
	"transaction-insights/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	v *validator.Validate
}

// NewValidator adapts the shared rule set to echo.Validator so c.Validate
// understands the account_id and search_query tags.
func NewValidator() echo.Validator {
	return echoValidator{v: validation.Shared()}
}

func (ev echoValidator) Validate(i any) error {
	return ev.v.Struct(i)
}
