package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a principal token issued by the identity provider.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set; the subject
// claim carries the principal id. Role, Banned, Email and ImageURL are
// private claims set by the provider.
type Token struct {
	// Token is the parsed JWT. Excluded from JSON serialization because
	// only the compact form is meaningful outside the process.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	Role     string `json:"role,omitempty"`
	Banned   bool   `json:"banned,omitempty"`
	Email    string `json:"email,omitempty"`
	ImageURL string `json:"image_url,omitempty"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// Principal builds the caller identity from the token claims.
//
// Returns an error if the subject claim is missing or empty.
func (t *Token) Principal() (Principal, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return Principal{}, err
	}
	if subject == "" {
		return Principal{}, errors.New("empty subject")
	}

	return Principal{
		ID:       subject,
		Role:     t.Role,
		Banned:   t.Banned,
		Email:    t.Email,
		ImageURL: t.ImageURL,
	}, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
