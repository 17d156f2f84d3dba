package service

import (
	"context"

	"github.com/MKhiriev/go-inventory-hub/internal/config"
	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/internal/utils"
	"github.com/MKhiriev/go-inventory-hub/models"
)

// authService verifies principal tokens issued by the external identity
// provider. It never issues tokens itself.
type authService struct {
	// tokenSignKey is the HMAC secret shared with the identity provider.
	tokenSignKey string

	// tokenIssuer is the expected "iss" claim. Empty disables the check.
	tokenIssuer string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the app config.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}

// ParseToken validates a raw JWT and converts its claims to a principal.
// Any validation failure (expired, wrong issuer, wrong signature, missing
// subject) is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Str("func", "authService.ParseToken").Msg("token rejected")
		return models.Principal{}, ErrTokenIsExpiredOrInvalid
	}

	principal, err := token.Principal()
	if err != nil {
		return models.Principal{}, ErrTokenIsExpiredOrInvalid
	}
	return principal, nil
}
