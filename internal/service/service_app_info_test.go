package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-inventory-hub/internal/config"
	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/models"
)

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, models.AppBuildInfo{}, logger.Nop())

	assert.Nil(t, svc)
	require.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestGetAppVersion(t *testing.T) {
	tests := []struct {
		name  string
		cfg   config.App
		build models.AppBuildInfo
		want  models.AppVersion
	}{
		{
			name:  "full build info",
			cfg:   config.App{Version: "1.2.3"},
			build: models.NewAppBuildInfo("ignored", "2026-10-01", "abc123"),
			want:  models.AppVersion{Version: "1.2.3", Date: "2026-10-01", Commit: "abc123"},
		},
		{
			name: "missing build info",
			cfg:  config.App{Version: "v1.2.3-beta+build.42"},
			want: models.AppVersion{Version: "v1.2.3-beta+build.42", Date: "N/A", Commit: "N/A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(tt.cfg, tt.build, logger.Nop())
			require.NoError(t, err)

			assert.Equal(t, tt.want, svc.GetAppVersion(context.Background()))
		})
	}
}
