package service

import (
	"context"

	"github.com/MKhiriev/go-inventory-hub/internal/config"
	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/models"
)

type appInfoService struct {
	version models.AppVersion

	logger *logger.Logger
}

// NewAppInfoService reports cfg.Version together with the linker-injected
// build date and commit.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		version: build.AppVersion(cfg.Version),
		logger:  logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) models.AppVersion {
	return s.version
}
