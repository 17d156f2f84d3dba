// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-inventory-hub/internal/config"
	"github.com/MKhiriev/go-inventory-hub/internal/logger"
)

var blobExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

// fileBlobStorage keeps blobs as flat files in one directory. Keys are
// time-ordered UUIDs, so a directory listing follows upload order.
type fileBlobStorage struct {
	dir     string
	baseURL string
	logger  *logger.Logger
}

// NewFileBlobStorage creates the blob directory when needed and returns a
// [BlobStorage] serving URLs under cfg.PublicBaseURL.
func NewFileBlobStorage(cfg config.Files, logger *logger.Logger) (BlobStorage, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create blob dir: %w", err)
	}

	return &fileBlobStorage{
		dir:     cfg.Dir,
		baseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:  logger,
	}, nil
}

func (f *fileBlobStorage) Put(ctx context.Context, data []byte, contentType string) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate blob key: %w", err)
	}
	key := id.String() + blobExtensions[contentType]

	// write under a temporary name so readers never see a partial blob
	tmp := filepath.Join(f.dir, "."+key+".tmp")
	if err = os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("write blob: %w", err)
	}
	if err = os.Rename(tmp, filepath.Join(f.dir, key)); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("write blob: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "fileBlobStorage.Put").
		Str("key", key).
		Int("size", len(data)).
		Msg("blob stored")

	return f.baseURL + "/" + key, nil
}

func (f *fileBlobStorage) Delete(ctx context.Context, url string) error {
	key, ok := f.keyFromURL(url)
	if !ok {
		return nil
	}

	err := os.Remove(filepath.Join(f.dir, key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.FromContext(ctx).Err(err).
			Str("func", "fileBlobStorage.Delete").
			Str("key", key).
			Msg("failed to delete blob")
		return fmt.Errorf("delete blob: %w", err)
	}
	return nil
}

func (f *fileBlobStorage) Open(key string) (io.ReadSeekCloser, error) {
	if !validBlobKey(key) {
		return nil, ErrBlobNotFound
	}

	file, err := os.Open(filepath.Join(f.dir, key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("open blob: %w", err)
	}
	return file, nil
}

// keyFromURL returns the key of a URL produced by Put. URLs from another
// base are not ours and are reported as not ok.
func (f *fileBlobStorage) keyFromURL(url string) (string, bool) {
	key, found := strings.CutPrefix(url, f.baseURL+"/")
	if !found || !validBlobKey(key) {
		return "", false
	}
	return key, true
}

func validBlobKey(key string) bool {
	return key != "" &&
		!strings.HasPrefix(key, ".") &&
		!strings.ContainsAny(key, `/\`) &&
		filepath.Base(key) == key
}
