package models

import "github.com/golang-jwt/jwt/v5"

// AccountClaims are the claims of a bearer token issued by the upstream auth
// service. AccountID scopes which account the caller may query.
type AccountClaims struct {
	jwt.RegisteredClaims
	AccountID string `json:"account_id"`
	Email     string `json:"email,omitempty"`
}
