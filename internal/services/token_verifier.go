package services

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"

	"transaction-insights/internal/config"
	"transaction-insights/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token is expired")
	ErrInvalidIssuer     = errors.New("invalid issuer")
	ErrMissingAccountID  = errors.New("token has no account_id claim")
	ErrEmptyToken        = errors.New("empty token")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
)

// TokenVerifier checks RS256 access tokens minted by the upstream auth
// service. This service only verifies; it never signs.
type TokenVerifier struct {
	publicKey *rsa.PublicKey
	parser    *jwt.Parser
}

func NewTokenVerifier(cfg config.SecurityConfig) TokenVerifierInterface {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.JWTIssuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.JWTIssuer))
	}
	return &TokenVerifier{publicKey: cfg.JWTPublicKey, parser: jwt.NewParser(opts...)}
}

func (tv *TokenVerifier) VerifyAccessToken(tokenString string) (*models.AccountClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	claims := &models.AccountClaims{}
	if _, err := tv.parser.ParseWithClaims(tokenString, claims, tv.key); err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenInvalidIssuer):
			return nil, ErrInvalidIssuer
		default:
			return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
	}

	if _, err := uuid.Parse(claims.AccountID); err != nil {
		return nil, ErrMissingAccountID
	}
	return claims, nil
}

// ExtractTokenFromHeader accepts "Bearer <token>" with any scheme casing.
func (tv *TokenVerifier) ExtractTokenFromHeader(authHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", ErrInvalidAuthHeader
	}
	if token = strings.TrimSpace(token); token == "" {
		return "", ErrInvalidAuthHeader
	}
	return token, nil
}

func (tv *TokenVerifier) key(*jwt.Token) (any, error) {
	if tv.publicKey == nil {
		return nil, errors.New("no verification key configured")
	}
	return tv.publicKey, nil
}
