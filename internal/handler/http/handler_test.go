package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-inventory-hub/internal/access"
	"github.com/MKhiriev/go-inventory-hub/internal/collab"
	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/internal/mock"
	"github.com/MKhiriev/go-inventory-hub/internal/schema"
	"github.com/MKhiriev/go-inventory-hub/internal/service"
	"github.com/MKhiriev/go-inventory-hub/internal/store"
	"github.com/MKhiriev/go-inventory-hub/models"
)

const goodToken = "good-token"

var alice = models.Principal{ID: "alice", Role: "user", Email: "alice@example.com"}

type handlerFixture struct {
	inventories *mock.MockInventoryService
	items       *mock.MockItemService
	fields      *mock.MockFieldService
	access      *mock.MockAccessService
	posts       *mock.MockDiscussionService
	catalog     *mock.MockCatalogService
	auth        *mock.MockAuthService
	appInfo     *mock.MockAppInfoService
	blobs       *mock.MockBlobStorage

	handler *Handler
	router  http.Handler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &handlerFixture{
		inventories: mock.NewMockInventoryService(ctrl),
		items:       mock.NewMockItemService(ctrl),
		fields:      mock.NewMockFieldService(ctrl),
		access:      mock.NewMockAccessService(ctrl),
		posts:       mock.NewMockDiscussionService(ctrl),
		catalog:     mock.NewMockCatalogService(ctrl),
		auth:        mock.NewMockAuthService(ctrl),
		appInfo:     mock.NewMockAppInfoService(ctrl),
		blobs:       mock.NewMockBlobStorage(ctrl),
	}
	f.auth.EXPECT().ParseToken(gomock.Any(), goodToken).Return(alice, nil).AnyTimes()

	services := &service.Services{
		AppInfoService:    f.appInfo,
		AuthService:       f.auth,
		InventoryService:  f.inventories,
		ItemService:       f.items,
		FieldService:      f.fields,
		AccessService:     f.access,
		DiscussionService: f.posts,
		CatalogService:    f.catalog,
	}
	hub := collab.NewHub(4, nil, logger.Nop())
	f.handler = NewHandler(services, hub, collab.SessionConfig{}, f.blobs, logger.Nop())
	f.router = f.handler.Init()
	return f
}

// do sends an authenticated request unless the caller set Authorization.
func (f *handlerFixture) do(req *http.Request) *httptest.ResponseRecorder {
	if _, ok := req.Header["Authorization"]; !ok {
		req.Header.Set("Authorization", "Bearer "+goodToken)
	}
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

// authorizeAs makes AccessService.Authorize return authz for inventory 7.
func (f *handlerFixture) authorizeAs(authz models.AuthorizationContext) {
	f.access.EXPECT().Authorize(gomock.Any(), alice, int64(7)).Return(authz, nil)
}

func ownedInventory() models.AuthorizationContext {
	return models.AuthorizationContext{
		Principal:   alice,
		Inventory:   models.Inventory{ID: 7, CreatorID: "alice", Version: 3},
		WriteAccess: true,
	}
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Message
}

func TestNewHandler(t *testing.T) {
	services := &service.Services{}
	log := logger.Nop()

	h := NewHandler(services, nil, collab.SessionConfig{}, nil, log)

	require.NotNil(t, h)
	assert.Same(t, services, h.services)
	assert.Same(t, log, h.logger)
}

func TestRoutes_Version(t *testing.T) {
	f := newHandlerFixture(t)
	f.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(models.AppVersion{Version: "v1.2.0", Commit: "abc"})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set("Authorization", "")
	rr := f.do(req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"version":"v1.2.0","buildDate":"","buildCommit":"abc"}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestRoutes_Authentication(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(f *handlerFixture)
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
			wantMsg:    ErrEmptyAuthorizationHeader.Error(),
		},
		{
			name:       "not a bearer header",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantMsg:    ErrInvalidAuthorizationHeader.Error(),
		},
		{
			name:   "expired token",
			header: "Bearer stale",
			setup: func(f *handlerFixture) {
				f.auth.EXPECT().ParseToken(gomock.Any(), "stale").Return(models.Principal{}, service.ErrTokenIsExpiredOrInvalid)
			},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    service.ErrTokenIsExpiredOrInvalid.Error(),
		},
		{
			name:   "banned principal",
			header: "Bearer banned",
			setup: func(f *handlerFixture) {
				f.auth.EXPECT().ParseToken(gomock.Any(), "banned").Return(models.Principal{ID: "mallory", Banned: true}, nil)
			},
			wantStatus: http.StatusForbidden,
			wantMsg:    service.ErrPrincipalIsBanned.Error(),
		},
		{
			name:       "valid token",
			header:     "Bearer " + goodToken,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
			req.Header.Set("Authorization", tt.header)
			rr := f.do(req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, errorMessage(t, rr))
				return
			}
			var got models.Principal
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, alice, got)
		})
	}
}

func TestRoutes_UnknownRouteAndMethod(t *testing.T) {
	f := newHandlerFixture(t)

	rr := f.do(httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = f.do(httptest.NewRequest(http.MethodPut, "/api/inventories", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestRoutes_GetInventory(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.inventories.EXPECT().GetInventory(gomock.Any(), alice, int64(7)).
			Return(models.Inventory{ID: 7, Title: "Tools", Version: 3, WriteAccess: true}, nil)

		rr := f.do(httptest.NewRequest(http.MethodGet, "/api/inventories/7", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		var got models.Inventory
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.True(t, got.WriteAccess)
		assert.Equal(t, int64(3), got.Version)
	})

	t.Run("not found", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.inventories.EXPECT().GetInventory(gomock.Any(), alice, int64(7)).Return(models.Inventory{}, store.ErrNotFound)

		rr := f.do(httptest.NewRequest(http.MethodGet, "/api/inventories/7", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		f := newHandlerFixture(t)

		rr := f.do(httptest.NewRequest(http.MethodGet, "/api/inventories/abc", nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRoutes_UpdateInventory(t *testing.T) {
	title := "Garage"

	tests := []struct {
		name       string
		body       string
		setup      func(f *handlerFixture)
		wantStatus int
	}{
		{
			name: "applied",
			body: `{"version":3,"title":"Garage"}`,
			setup: func(f *handlerFixture) {
				f.authorizeAs(ownedInventory())
				f.inventories.EXPECT().
					UpdateInventory(gomock.Any(), ownedInventory(), models.InventoryUpdateRequest{
						Version:        3,
						InventoryPatch: models.InventoryPatch{Title: &title},
					}).
					Return(models.Inventory{ID: 7, Title: title, Version: 4}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "stale version",
			body: `{"version":2,"title":"Garage"}`,
			setup: func(f *handlerFixture) {
				f.authorizeAs(ownedInventory())
				f.inventories.EXPECT().UpdateInventory(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(models.Inventory{}, &store.ConflictError{ID: 7, ExpectedVersion: 2, CurrentVersion: 3})
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "forbidden",
			body: `{"version":3,"title":"Garage"}`,
			setup: func(f *handlerFixture) {
				f.authorizeAs(models.AuthorizationContext{Principal: alice, Inventory: models.Inventory{ID: 7, CreatorID: "bob"}})
				f.inventories.EXPECT().UpdateInventory(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(models.Inventory{}, access.ErrForbidden)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "validation",
			body: `{"version":0}`,
			setup: func(f *handlerFixture) {
				f.authorizeAs(ownedInventory())
				f.inventories.EXPECT().UpdateInventory(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(models.Inventory{}, fmt.Errorf("%w: invalid version", service.ErrInvalidDataProvided))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "malformed json",
			body: `{"version":`,
			setup: func(f *handlerFixture) {
				f.authorizeAs(ownedInventory())
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "inventory gone",
			body: `{"version":3}`,
			setup: func(f *handlerFixture) {
				f.access.EXPECT().Authorize(gomock.Any(), alice, int64(7)).Return(models.AuthorizationContext{}, store.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			tt.setup(f)

			rr := f.do(httptest.NewRequest(http.MethodPatch, "/api/inventories/7", strings.NewReader(tt.body)))
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestRoutes_CreateInventory(t *testing.T) {
	t.Run("json body", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.inventories.EXPECT().
			CreateInventory(gomock.Any(), alice, models.InventoryCreateRequest{Title: "Tools", Tags: []string{"garage"}}, (*models.ImageUpload)(nil)).
			Return(models.Inventory{ID: 9, Version: 1}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/inventories", jsonBody(t, models.InventoryCreateRequest{Title: "Tools", Tags: []string{"garage"}}))
		req.Header.Set("Content-Type", "application/json")
		rr := f.do(req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("multipart with image", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.inventories.EXPECT().
			CreateInventory(gomock.Any(), alice, models.InventoryCreateRequest{Title: "Tools"}, gomock.Any()).
			DoAndReturn(func(_ any, _ models.Principal, _ models.InventoryCreateRequest, image *models.ImageUpload) (models.Inventory, error) {
				require.NotNil(t, image)
				assert.Equal(t, []byte("png-bytes"), image.Data)
				assert.Equal(t, "image/png", image.ContentType)
				return models.Inventory{ID: 9, Version: 1}, nil
			})

		body, contentType := multipartBody(t, map[string]string{"data": `{"title":"Tools"}`}, []byte("png-bytes"))
		req := httptest.NewRequest(http.MethodPost, "/api/inventories", body)
		req.Header.Set("Content-Type", contentType)
		rr := f.do(req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("multipart with bad data part", func(t *testing.T) {
		f := newHandlerFixture(t)

		body, contentType := multipartBody(t, map[string]string{"data": `{`}, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/inventories", body)
		req.Header.Set("Content-Type", contentType)
		rr := f.do(req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func multipartBody(t *testing.T, fields map[string]string, image []byte) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, mw.WriteField(name, value))
	}
	if image != nil {
		header := make(map[string][]string)
		header["Content-Disposition"] = []string{`form-data; name="image"; filename="a.png"`}
		header["Content-Type"] = []string{"image/png"}
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestRoutes_ReplaceImage(t *testing.T) {
	t.Run("replaced", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.authorizeAs(ownedInventory())
		f.inventories.EXPECT().
			ReplaceImage(gomock.Any(), ownedInventory(), int64(3), models.ImageUpload{Data: []byte("png-bytes"), ContentType: "image/png"}).
			Return(models.Inventory{ID: 7, Version: 4}, nil)

		body, contentType := multipartBody(t, map[string]string{"version": "3"}, []byte("png-bytes"))
		req := httptest.NewRequest(http.MethodPost, "/api/inventories/7/image", body)
		req.Header.Set("Content-Type", contentType)
		rr := f.do(req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing version", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.authorizeAs(ownedInventory())

		body, contentType := multipartBody(t, nil, []byte("png-bytes"))
		req := httptest.NewRequest(http.MethodPost, "/api/inventories/7/image", body)
		req.Header.Set("Content-Type", contentType)
		rr := f.do(req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing image", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.authorizeAs(ownedInventory())

		body, contentType := multipartBody(t, map[string]string{"version": "3"}, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/inventories/7/image", body)
		req.Header.Set("Content-Type", contentType)
		rr := f.do(req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRoutes_DeleteInventory(t *testing.T) {
	f := newHandlerFixture(t)
	f.authorizeAs(ownedInventory())
	f.inventories.EXPECT().DeleteInventory(gomock.Any(), ownedInventory()).Return(nil)

	rr := f.do(httptest.NewRequest(http.MethodDelete, "/api/inventories/7", nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Zero(t, rr.Body.Len())
}

func TestRoutes_Items(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.authorizeAs(ownedInventory())
		f.items.EXPECT().ListItems(gomock.Any(), int64(7)).Return(models.ItemList{
			Fields: []models.FieldDefinition{{SlotKey: "number_1", FieldType: models.FieldTypeNumber, IsEnabled: true}},
			Items:  []models.Item{{ID: 1, Version: 1, Values: models.SlotValues{"number_1": 2.5}}},
		}, nil)

		rr := f.do(httptest.NewRequest(http.MethodGet, "/api/inventories/7/items", nil))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"fieldKey":"number_1"`)
	})

	t.Run("stats", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.authorizeAs(ownedInventory())
		f.items.EXPECT().Stats(gomock.Any(), int64(7)).Return([]models.FieldStats{{SlotKey: "number_1", Count: 2}}, nil)

		rr := f.do(httptest.NewRequest(http.MethodGet, "/api/inventories/7/items/stats", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("create with bad value", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.authorizeAs(ownedInventory())
		f.items.EXPECT().CreateItem(gomock.Any(), ownedInventory(), gomock.Any()).
			Return(models.Item{}, fmt.Errorf("number_1: %w", schema.ErrInvalidSlotValue))

		rr := f.do(httptest.NewRequest(http.MethodPost, "/api/inventories/7/items", strings.NewReader(`{"values":{"number_1":"abc"}}`)))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("update", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.authorizeAs(ownedInventory())
		f.items.EXPECT().UpdateItem(gomock.Any(), ownedInventory(), int64(11), gomock.Any()).
			DoAndReturn(func(_ any, _ models.AuthorizationContext, _ int64, req models.ItemUpdateRequest) (models.Item, error) {
				assert.Equal(t, int64(5), req.Version)
				return models.Item{ID: 11, Version: 6}, nil
			})

		rr := f.do(httptest.NewRequest(http.MethodPatch, "/api/inventories/7/items/11", strings.NewReader(`{"version":5,"values":{"boolean_1":true}}`)))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("delete forwards version", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.authorizeAs(ownedInventory())
		f.items.EXPECT().DeleteItem(gomock.Any(), ownedInventory(), int64(11), int64(5)).Return(nil)

		rr := f.do(httptest.NewRequest(http.MethodDelete, "/api/inventories/7/items/11?version=5", nil))
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("delete without version", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.authorizeAs(ownedInventory())

		rr := f.do(httptest.NewRequest(http.MethodDelete, "/api/inventories/7/items/11", nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRoutes_Fields(t *testing.T) {
	t.Run("enabled only", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.authorizeAs(ownedInventory())
		f.fields.EXPECT().ListFields(gomock.Any(), int64(7), true).Return(nil, nil)

		rr := f.do(httptest.NewRequest(http.MethodGet, "/api/inventories/7/fields?enabled=true", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("batch rejected", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.authorizeAs(ownedInventory())
		f.fields.EXPECT().UpdateFields(gomock.Any(), ownedInventory(), gomock.Len(2)).
			Return(nil, fmt.Errorf("number_1: %w", schema.ErrInvalidFieldType))

		rr := f.do(httptest.NewRequest(http.MethodPatch, "/api/inventories/7/fields",
			strings.NewReader(`[{"fieldKey":"sl_string_1","label":"Name"},{"fieldKey":"number_1","fieldType":"boolean"}]`)))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRoutes_Access(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		body       string
		setup      func(f *handlerFixture)
		wantStatus int
	}{
		{
			name:   "list",
			method: http.MethodGet,
			setup: func(f *handlerFixture) {
				f.access.EXPECT().ListGrants(gomock.Any(), ownedInventory()).Return([]models.Grantee{{ID: "bob"}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "grant",
			method: http.MethodPost,
			body:   `{"targetUserId":"bob"}`,
			setup: func(f *handlerFixture) {
				f.access.EXPECT().Grant(gomock.Any(), ownedInventory(), models.GrantRequest{TargetUserID: "bob"}).
					Return(models.AccessGrant{InventoryID: 7, UserID: "bob"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:   "grant owner",
			method: http.MethodPost,
			body:   `{"targetUserId":"alice"}`,
			setup: func(f *handlerFixture) {
				f.access.EXPECT().Grant(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.AccessGrant{}, access.ErrOwnerGrant)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "identity directory down",
			method: http.MethodPost,
			body:   `{"targetUserId":"bob"}`,
			setup: func(f *handlerFixture) {
				f.access.EXPECT().Grant(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.AccessGrant{}, service.ErrUpstreamUnavailable)
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:   "revoke",
			method: http.MethodDelete,
			body:   `{"userIds":["bob","carol"]}`,
			setup: func(f *handlerFixture) {
				f.access.EXPECT().Revoke(gomock.Any(), ownedInventory(), models.RevokeRequest{UserIDs: []string{"bob", "carol"}}).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			f.authorizeAs(ownedInventory())
			tt.setup(f)

			rr := f.do(httptest.NewRequest(tt.method, "/api/inventories/7/access", strings.NewReader(tt.body)))
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestRoutes_Posts(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.authorizeAs(ownedInventory())
		f.posts.EXPECT().CreatePost(gomock.Any(), ownedInventory(), models.PostCreateRequest{Content: "hello"}).
			Return(models.DiscussionPost{ID: 1, InventoryID: 7, Content: "hello"}, nil)

		rr := f.do(httptest.NewRequest(http.MethodPost, "/api/inventories/7/posts", strings.NewReader(`{"content":"hello"}`)))
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("delete someone else's", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.authorizeAs(ownedInventory())
		f.posts.EXPECT().DeletePost(gomock.Any(), ownedInventory(), int64(3)).Return(service.ErrNotPostAuthor)

		rr := f.do(httptest.NewRequest(http.MethodDelete, "/api/inventories/7/posts/3", nil))
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("list", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.authorizeAs(ownedInventory())
		f.posts.EXPECT().ListPosts(gomock.Any(), int64(7)).Return([]models.DiscussionPost{}, nil)

		rr := f.do(httptest.NewRequest(http.MethodGet, "/api/inventories/7/posts", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})
}

func TestRoutes_SearchAndCatalog(t *testing.T) {
	f := newHandlerFixture(t)
	f.inventories.EXPECT().SearchInventories(gomock.Any(), "drill").Return([]models.Inventory{{ID: 7}}, nil)
	f.catalog.EXPECT().SearchTags(gomock.Any(), "gar").Return([]models.Tag{{ID: 1, Name: "garage"}}, nil)
	f.catalog.EXPECT().ListCategories(gomock.Any()).Return([]models.Category{{ID: 1, Name: "Equipment"}}, nil)

	rr := f.do(httptest.NewRequest(http.MethodGet, "/api/search?q=%20drill%20", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = f.do(httptest.NewRequest(http.MethodGet, "/api/tags?search=gar", nil))
	assert.JSONEq(t, `[{"id":1,"name":"garage"}]`, rr.Body.String())

	rr = f.do(httptest.NewRequest(http.MethodGet, "/api/categories", nil))
	assert.JSONEq(t, `[{"id":1,"name":"Equipment"}]`, rr.Body.String())
}

func TestRoutes_InternalErrorsAreHidden(t *testing.T) {
	f := newHandlerFixture(t)
	f.inventories.EXPECT().ListInventories(gomock.Any(), alice).
		Return(nil, fmt.Errorf("%w: connection reset by peer", store.ErrExecutingQuery))

	rr := f.do(httptest.NewRequest(http.MethodGet, "/api/inventories", nil))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), errorMessage(t, rr))
}

type seekBuffer struct {
	*bytes.Reader
}

func (seekBuffer) Close() error { return nil }

func TestRoutes_Files(t *testing.T) {
	t.Run("served", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.blobs.EXPECT().Open("abc.jpg").Return(seekBuffer{bytes.NewReader([]byte("jpeg-bytes"))}, nil)

		req := httptest.NewRequest(http.MethodGet, "/files/abc.jpg", nil)
		req.Header.Set("Authorization", "")
		rr := f.do(req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "image/jpeg", rr.Header().Get("Content-Type"))
		assert.Equal(t, "jpeg-bytes", rr.Body.String())
	})

	t.Run("missing", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.blobs.EXPECT().Open("gone.jpg").Return(nil, store.ErrBlobNotFound)

		rr := f.do(httptest.NewRequest(http.MethodGet, "/files/gone.jpg", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("traversal", func(t *testing.T) {
		f := newHandlerFixture(t)

		rr := f.do(httptest.NewRequest(http.MethodGet, "/files/..", nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: &store.ConflictError{ID: 1, ExpectedVersion: 1, CurrentVersion: 2}, want: http.StatusConflict},
		{err: fmt.Errorf("wrapped: %w", access.ErrForbidden), want: http.StatusForbidden},
		{err: service.ErrNotPostAuthor, want: http.StatusForbidden},
		{err: store.ErrGrantAlreadyExists, want: http.StatusBadRequest},
		{err: service.ErrUnknownUser, want: http.StatusBadRequest},
		{err: service.ErrUpstreamUnavailable, want: http.StatusBadGateway},
		{err: store.ErrScanningRows, want: http.StatusInternalServerError},
		{err: io.ErrUnexpectedEOF, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
