package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-inventory-hub/models"
)

// GeneratePrincipalToken signs an HMAC-SHA256 principal token carrying the
// identity provider claim set: sub, role, banned, email and image_url.
//
// The server never issues tokens. This mirrors what the identity provider
// produces and is used by the client tooling and by tests.
//
// Example usage:
//
//	token, err := utils.GeneratePrincipalToken("idp", models.Principal{ID: "u1"}, time.Hour, "secret")
func GeneratePrincipalToken(issuer string, principal models.Principal, tokenDuration time.Duration, signKey string) (*models.Token, error) {
	if principal.ID == "" || tokenDuration == 0 || signKey == "" {
		return nil, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   principal.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role:     principal.Role,
		Banned:   principal.Banned,
		Email:    principal.Email,
		ImageURL: principal.ImageURL,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return nil, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	claims.Token = token
	claims.SignedString = tokenString
	return claims, nil
}

// ValidateAndParseJWTToken validates the given principal token and returns
// its claims.
//
// Validation includes:
//   - HS256 signature verification using tokenSignKey
//   - Issuer (iss) claim check when tokenIssuer is not empty
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (*models.Token, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if tokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(tokenIssuer))
	}

	claims := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if subject == "" {
		return nil, errors.New("empty subject error")
	}

	claims.Token = token
	claims.SignedString = tokenString
	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
