package adapter

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-inventory-hub/internal/config"
	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/internal/utils"
	"github.com/MKhiriev/go-inventory-hub/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL, request
// timeout and the configured principal token.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	a := &httpServerAdapter{client: client, logger: logger}
	a.SetToken(adapterCfg.Token)
	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) GetAppVersion(ctx context.Context) (models.AppVersion, error) {
	var version models.AppVersion

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		return models.AppVersion{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppVersion{}, err
	}
	return version, nil
}

func (h *httpServerAdapter) GetInventory(ctx context.Context, id int64) (models.Inventory, error) {
	var inv models.Inventory

	resp, err := h.authedRequest(ctx).
		SetResult(&inv).
		SetPathParam("inventoryID", strconv.FormatInt(id, 10)).
		Get("/api/inventories/{inventoryID}")
	if err != nil {
		return models.Inventory{}, fmt.Errorf("get inventory request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Inventory{}, err
	}
	return inv, nil
}

func (h *httpServerAdapter) UpdateInventory(ctx context.Context, id, version int64, patch models.InventoryPatch) (models.Inventory, error) {
	var inv models.Inventory

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.InventoryUpdateRequest{Version: version, InventoryPatch: patch}).
		SetResult(&inv).
		SetPathParam("inventoryID", strconv.FormatInt(id, 10)).
		Patch("/api/inventories/{inventoryID}")
	if err != nil {
		return models.Inventory{}, fmt.Errorf("update inventory request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Inventory{}, err
	}
	return inv, nil
}

func (h *httpServerAdapter) ReplaceImage(ctx context.Context, id, version int64, image models.ImageUpload) (models.Inventory, error) {
	var inv models.Inventory

	resp, err := h.authedRequest(ctx).
		SetMultipartField("image", "image", image.ContentType, bytes.NewReader(image.Data)).
		SetMultipartFormData(map[string]string{"version": strconv.FormatInt(version, 10)}).
		SetResult(&inv).
		SetPathParam("inventoryID", strconv.FormatInt(id, 10)).
		Post("/api/inventories/{inventoryID}/image")
	if err != nil {
		return models.Inventory{}, fmt.Errorf("replace image request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Inventory{}, err
	}
	return inv, nil
}

func (h *httpServerAdapter) ListPosts(ctx context.Context, inventoryID int64) ([]models.DiscussionPost, error) {
	var posts []models.DiscussionPost

	resp, err := h.authedRequest(ctx).
		SetResult(&posts).
		SetPathParam("inventoryID", strconv.FormatInt(inventoryID, 10)).
		Get("/api/inventories/{inventoryID}/posts")
	if err != nil {
		return nil, fmt.Errorf("list posts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return posts, nil
}

func (h *httpServerAdapter) CreatePost(ctx context.Context, inventoryID int64, content string) (models.DiscussionPost, error) {
	var post models.DiscussionPost

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PostCreateRequest{Content: content}).
		SetResult(&post).
		SetPathParam("inventoryID", strconv.FormatInt(inventoryID, 10)).
		Post("/api/inventories/{inventoryID}/posts")
	if err != nil {
		return models.DiscussionPost{}, fmt.Errorf("create post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DiscussionPost{}, err
	}
	return post, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
