package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/campus-ledger/internal/domain"
)

// JWTManager issues and validates bearer tokens whose subject is a ledger address.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

// GenerateAccessToken creates a signed HS256 JWT with addr as subject.
func (m *JWTManager) GenerateAccessToken(addr domain.Address) (string, error) {
	if addr.IsZero() {
		return "", fmt.Errorf("address is empty")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   addr.String(),
		Issuer:    m.issuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and validates a JWT access token and returns the
// address it was issued for.
func (m *JWTManager) ValidateAccessToken(tokenString string) (domain.Address, error) {
	if tokenString == "" {
		return "", fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token claims")
	}

	addr := domain.Address(claims.Subject)
	if addr.IsZero() {
		return "", fmt.Errorf("token has no subject")
	}

	return addr, nil
}

// ValidateToken satisfies the transport token validator.
func (m *JWTManager) ValidateToken(_ context.Context, token string) (domain.Address, error) {
	return m.ValidateAccessToken(token)
}
