package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrInvalidAccountID is returned when a path account id is not a usable UUID.
var ErrInvalidAccountID = fmt.Errorf("invalid account id")

func parseAccountIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param(name)))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrInvalidAccountID
	}
	return id, nil
}

// getIntParam reads an integer query parameter. Missing values use defaultValue;
// malformed values are an error so callers can report them.
func getIntParam(c echo.Context, name string, defaultValue int) (int, error) {
	param := strings.TrimSpace(c.QueryParam(name))
	if param == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(param)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return value, nil
}
