package http

import (
	"net/http"

	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/internal/service"
	"github.com/MKhiriev/go-inventory-hub/internal/utils"
)

// accessTokenQueryParam carries the principal token on WebSocket upgrades,
// where browsers cannot set an Authorization header.
const accessTokenQueryParam = "access_token"

// auth is an HTTP middleware that enforces principal authentication.
//
// The bearer token is taken from the "Authorization" header and verified via
// [service.AuthService.ParseToken]. On success the [models.Principal] is
// stored in the request context with [utils.WithPrincipal].
func (h *Handler) auth(next http.Handler) http.Handler {
	return h.authenticate(next, false)
}

// wsAuth behaves like auth but also accepts the token in the access_token
// query parameter.
func (h *Handler) wsAuth(next http.Handler) http.Handler {
	return h.authenticate(next, true)
}

func (h *Handler) authenticate(next http.Handler, allowQuery bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := tokenFromRequest(r, allowQuery)
		if err != nil {
			writeError(w, r, "Handler.auth", err)
			return
		}

		ctx := r.Context()
		principal, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, "Handler.auth", err)
			return
		}

		ctx = logger.WithPrincipalID(ctx, principal.ID)
		logger.FromContext(ctx).Debug().
			Str("func", "Handler.auth").
			Str("principal_role", principal.Role).
			Msg("principal authenticated")

		next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(ctx, principal)))
	})
}

// banGate rejects banned principals before any route handler runs.
func (h *Handler) banGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := utils.GetPrincipalFromContext(r.Context())
		if ok && principal.Banned {
			writeError(w, r, "Handler.banGate", service.ErrPrincipalIsBanned)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func tokenFromRequest(r *http.Request, allowQuery bool) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		if allowQuery {
			if token := r.URL.Query().Get(accessTokenQueryParam); token != "" {
				return token, nil
			}
		}
		return "", ErrEmptyAuthorizationHeader
	}

	token, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}
	return token, nil
}
