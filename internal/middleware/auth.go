package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	apperrors "transaction-insights/internal/errors"
	"transaction-insights/internal/handlers"
	"transaction-insights/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// AccountIDContextKey holds the uuid.UUID the bearer token is scoped to.
	AccountIDContextKey = "token_account_id"
	claimsContextKey    = "token_claims"
)

// RequireAccountToken verifies an RS256 bearer token and stores the account it
// is scoped to in the echo context.
func RequireAccountToken(verifier services.TokenVerifierInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, apperrors.AuthMissingToken)
			}

			token, err := verifier.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, apperrors.AuthInvalidTokenFormat)
			}

			claims, err := verifier.VerifyAccessToken(token)
			if err != nil {
				if errors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, apperrors.AuthExpiredToken)
				}
				return handlers.SendError(c, apperrors.AuthInvalidTokenFormat)
			}

			accountID, err := uuid.Parse(claims.AccountID)
			if err != nil {
				return handlers.SendError(c, apperrors.AuthInvalidTokenFormat, apperrors.WithDetails("Invalid account ID in token"))
			}

			c.Set(AccountIDContextKey, accountID)
			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// RequireAccountScope rejects requests that name a different account than the
// verified token. The account comes from the :accountId path parameter or the
// account_id field of a JSON body. Requests without a parseable account id pass
// through so the handler can report the validation error.
func RequireAccountScope() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenAccount, ok := c.Get(AccountIDContextKey).(uuid.UUID)
			if !ok {
				return handlers.SendError(c, apperrors.AuthMissingToken)
			}

			requested, err := requestedAccountID(c)
			if err != nil {
				return handlers.SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("Invalid request body"))
			}

			if requested != uuid.Nil && requested != tokenAccount {
				return handlers.SendError(c, apperrors.AuthAccountMismatch)
			}

			return next(c)
		}
	}
}

func requestedAccountID(c echo.Context) (uuid.UUID, error) {
	if param := c.Param("accountId"); param != "" {
		id, _ := uuid.Parse(param)
		return id, nil
	}

	body := c.Request().Body
	if body == nil || body == http.NoBody {
		return uuid.Nil, nil
	}

	bodyBytes, err := io.ReadAll(body)
	if err != nil {
		return uuid.Nil, err
	}
	c.Request().Body = io.NopCloser(bytes.NewReader(bodyBytes))

	var payload struct {
		AccountID string `json:"account_id"`
	}
	if len(bodyBytes) == 0 || json.Unmarshal(bodyBytes, &payload) != nil {
		return uuid.Nil, nil
	}

	id, _ := uuid.Parse(payload.AccountID)
	return id, nil
}
