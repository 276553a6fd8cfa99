package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"transaction-insights/internal/dto"
	apperrors "transaction-insights/internal/errors"
	"transaction-insights/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints.
// The router registers it only when APP_ENV is development.
type DevHandler struct {
	seedService services.SeedServiceInterface
}

func NewDevHandler(seedService services.SeedServiceInterface) *DevHandler {
	return &DevHandler{seedService: seedService}
}

// SeedAccount generates realistic fake transactions for an account
//
// Method: POST /api/dev/accounts/:accountId/seed
//
// Query parameters:
//   - count: Number of transactions to generate (default: 100, max: 5000)
//   - days: Number of days of history to generate (default: 90, max: 730)
//
// Accounts with existing history continue from their latest balance.
//
// Error Responses:
//   - 400: Invalid account ID or parameters
//   - 500: Storage failure
func (h *DevHandler) SeedAccount(c echo.Context) error {
	accountID, err := parseAccountIDParam(c, "accountId")
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("accountId: must be a valid account id (UUID)"))
	}

	count, err := getIntParam(c, "count", services.DefaultSeedCount)
	if err != nil {
		return SendError(c, apperrors.SeedInvalid, apperrors.WithDetails(err.Error()))
	}
	days, err := getIntParam(c, "days", services.DefaultSeedDays)
	if err != nil {
		return SendError(c, apperrors.SeedInvalid, apperrors.WithDetails(err.Error()))
	}

	params := dto.SeedAccountParams{Count: count, Days: days}
	if err := c.Validate(params); err != nil {
		return err
	}

	result, err := h.seedService.SeedAccount(c.Request().Context(), accountID, params.Count, params.Days)
	if err != nil {
		if errors.Is(err, services.ErrInvalidSeedRequest) {
			return SendError(c, apperrors.SeedInvalid, apperrors.WithDetails(err.Error()))
		}
		return SendError(c, apperrors.SeedFailed, apperrors.WithDetails(err.Error()))
	}

	return c.JSON(http.StatusCreated, dto.SeedAccountResponse{
		Message:      fmt.Sprintf("generated %d transactions", result.Created),
		AccountID:    result.AccountID,
		Created:      result.Created,
		FinalBalance: result.FinalBalance.StringFixed(2),
		DateRange: dto.DateRange{
			Start: result.StartDate,
			End:   result.EndDate,
		},
	})
}

// ClearAccount removes all transactions for an account
//
// Method: DELETE /api/dev/accounts/:accountId/seed
func (h *DevHandler) ClearAccount(c echo.Context) error {
	accountID, err := parseAccountIDParam(c, "accountId")
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("accountId: must be a valid account id (UUID)"))
	}

	deleted, err := h.seedService.ClearAccount(c.Request().Context(), accountID)
	if err != nil {
		return SendError(c, apperrors.SeedFailed, apperrors.WithDetails(err.Error()))
	}

	return c.JSON(http.StatusOK, dto.ClearAccountResponse{
		Message:   fmt.Sprintf("deleted %d transactions", deleted),
		AccountID: accountID,
		Deleted:   deleted,
	})
}
