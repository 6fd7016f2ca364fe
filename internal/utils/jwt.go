package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates an HMAC-SHA256 signed token for subject.
//
// The token carries the standard claims iss, sub, iat and exp. All
// parameters are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("heirloom-gateway", "ledger", time.Hour, "secret")
func GenerateJWTToken(issuer, subject string, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || subject == "" || tokenDuration <= 0 || signKey == "" {
		return "", errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return signed, nil
}

// ValidateAndParseJWTToken verifies signature, issuer and expiry of
// tokenString and returns its subject.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if subject == "" {
		return "", errors.New("empty subject error")
	}

	return subject, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
