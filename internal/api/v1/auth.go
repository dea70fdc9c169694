package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/saasbridge/saasbridge/internal/server"
)

// AuthMiddleware validates inbound bearer tokens when an auth token secret
// is configured. Tokens are HMAC-signed JWTs verified against the secret;
// no claims beyond a valid signature and expiry are required.
//
// When no secret is configured the middleware passes every request
// through, which is the default for a gateway bound to localhost.
//
// Usage:
//
//	handler := AuthMiddleware(srv, mux)
func AuthMiddleware(srv server.Server, next http.Handler) http.Handler {
	secret := ""
	if srv.Config != nil && srv.Config.Server != nil {
		secret = srv.Config.Server.AuthTokenSecret
	}
	if secret == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			srv.Logger.Warn("auth: missing authorization header",
				"path", r.URL.Path,
				"method", r.Method,
			)
			respondError(w, srv.Logger, http.StatusUnauthorized,
				"missing authorization header")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			srv.Logger.Warn("auth: invalid authorization header format",
				"path", r.URL.Path,
				"method", r.Method,
			)
			respondError(w, srv.Logger, http.StatusUnauthorized,
				"invalid authorization header format")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			srv.Logger.Warn("auth: empty bearer token",
				"path", r.URL.Path,
				"method", r.Method,
			)
			respondError(w, srv.Logger, http.StatusUnauthorized,
				"empty bearer token")
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			srv.Logger.Warn("auth: invalid token",
				"error", err,
				"path", r.URL.Path,
				"method", r.Method,
			)
			respondError(w, srv.Logger, http.StatusUnauthorized,
				"invalid or expired token")
			return
		}

		next.ServeHTTP(w, r)
	})
}
