package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-inventory-hub/internal/logger"
)

func requestWithLogger(method, target string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		handler    http.HandlerFunc
		wantInLog  []string
		wantStatus int
	}{
		{
			name:   "json body",
			method: http.MethodGet,
			target: "/api/inventories",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`[]`))
			},
			wantInLog:  []string{`"method":"GET"`, `"uri":"/api/inventories"`, `"status":200`, `"size":2`, `"duration":`},
			wantStatus: http.StatusOK,
		},
		{
			name:   "no content",
			method: http.MethodDelete,
			target: "/api/inventories/7",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
			wantInLog:  []string{`"method":"DELETE"`, `"status":204`, `"size":0`},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "handler writes nothing",
			method:     http.MethodGet,
			target:     "/noop",
			handler:    func(w http.ResponseWriter, r *http.Request) {},
			wantInLog:  []string{`"status":200`},
			wantStatus: http.StatusOK,
		},
		{
			name:   "conflict",
			method: http.MethodPatch,
			target: "/api/inventories/7",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "conflict", http.StatusConflict)
			},
			wantInLog:  []string{`"method":"PATCH"`, `"status":409`},
			wantStatus: http.StatusConflict,
		},
	}

	h := &Handler{logger: logger.Nop()}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			rr := httptest.NewRecorder()

			h.withLogging(tt.handler).ServeHTTP(rr, requestWithLogger(tt.method, tt.target, &buf))

			assert.Equal(t, tt.wantStatus, rr.Code)
			for _, want := range tt.wantInLog {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_PanicPropagates(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	var buf bytes.Buffer
	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(httptest.NewRecorder(), requestWithLogger(http.MethodGet, "/", &buf))
	})
}
