package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-inventory-hub/models"
)

func TestGeneratePrincipalToken_Success(t *testing.T) {
	principal := models.Principal{ID: "u-123", Role: models.RoleAdmin, Email: "a@b.c", ImageURL: "https://img/a.png"}

	token, err := GeneratePrincipalToken("idp", principal, time.Hour, "secret-key")
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	require.NotNil(t, token.Token)
	assert.Equal(t, "idp", token.Issuer)
	assert.Equal(t, "u-123", token.Subject)
	assert.Equal(t, token.SignedString, token.String())
}

func TestGeneratePrincipalToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name      string
		principal models.Principal
		duration  time.Duration
		key       string
	}{
		{"empty subject", models.Principal{}, time.Hour, "key"},
		{"zero duration", models.Principal{ID: "u"}, 0, "key"},
		{"empty key", models.Principal{ID: "u"}, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GeneratePrincipalToken("iss", tt.principal, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	want := models.Principal{ID: "u-456", Role: "user", Banned: true, Email: "x@y.z", ImageURL: "https://img/x.png"}
	gen, err := GeneratePrincipalToken("idp", want, 5*time.Minute, "secret-key")
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(gen.SignedString, "secret-key", "idp")
	require.NoError(t, err)

	got, err := parsed.Principal()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestValidateAndParseJWTToken_EmptyIssuerSkipsCheck(t *testing.T) {
	gen, err := GeneratePrincipalToken("whoever", models.Principal{ID: "u"}, time.Hour, "k")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(gen.SignedString, "k", "")
	require.NoError(t, err)
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, err := GeneratePrincipalToken("idp", models.Principal{ID: "u"}, time.Hour, "key")
	require.NoError(t, err)
	expired, err := GeneratePrincipalToken("idp", models.Principal{ID: "u"}, -time.Second, "key")
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "u", Issuer: "idp"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "other-key", "idp"},
		{"wrong issuer", valid.SignedString, "key", "fake"},
		{"expired", expired.SignedString, "key", "idp"},
		{"alg none", unsigned, "key", "idp"},
		{"malformed", "not.a.token", "key", "idp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			assert.Error(t, err)
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "Basic abc", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
