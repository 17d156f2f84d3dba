package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-inventory-hub/internal/config"
	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/internal/utils"
	"github.com/MKhiriev/go-inventory-hub/models"
)

type identityDirectory struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewIdentityDirectory returns a client of the identity directory at
// cfg.DirectoryURL. Users are read from GET {DirectoryURL}/users/{id}.
func NewIdentityDirectory(cfg config.Identity, logger *logger.Logger) (IdentityDirectory, error) {
	baseURL, err := normalizeBaseURL(cfg.DirectoryURL)
	if err != nil {
		return nil, fmt.Errorf("invalid identity directory url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)

	return &identityDirectory{client: client, logger: logger}, nil
}

func (d *identityDirectory) LookupUser(ctx context.Context, id string) (models.Grantee, error) {
	var user models.Grantee

	resp, err := d.client.R().
		SetContext(ctx).
		SetResult(&user).
		SetPathParam("id", id).
		Get("/users/{id}")
	if err != nil {
		return models.Grantee{}, fmt.Errorf("%w: identity lookup: %w", ErrBadGateway, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Grantee{}, err
	}

	if user.ID == "" {
		user.ID = id
	}
	return user, nil
}
