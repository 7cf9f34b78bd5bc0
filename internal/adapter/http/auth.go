package httpadapter

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"

	"tribe-pulse-ads/internal/core/domain"
)

var errUnauthenticated = errors.New("unauthenticated")

type viewerKey struct{}

// Authenticator resolves the viewer from an HS256 bearer token whose
// subject is the user id. It never rejects a request: a missing or
// invalid token yields an anonymous viewer.
type Authenticator struct {
	secret []byte
}

// NewAuthenticator returns an authenticator for secret.
func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

// Viewer parses raw and returns the viewer it identifies.
func (a *Authenticator) Viewer(raw string) (domain.Viewer, error) {
	if len(a.secret) == 0 || strings.TrimSpace(raw) == "" {
		return domain.Viewer{}, errUnauthenticated
	}
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(_ *jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil || token == nil || !token.Valid {
		return domain.Viewer{}, errUnauthenticated
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return domain.Viewer{}, errUnauthenticated
	}
	return domain.Viewer{UserID: claims.Subject}, nil
}

// Middleware stores the resolved viewer in the request context.
func (a *Authenticator) Middleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var viewer domain.Viewer
			if raw, ok := extractBearerToken(r.Header.Get("Authorization")); ok {
				v, err := a.Viewer(raw)
				if err != nil {
					logger.Debug("bearer token rejected", slog.Any("error", err))
				}
				viewer = v
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), viewerKey{}, viewer)))
		})
	}
}

func viewerFrom(ctx context.Context) domain.Viewer {
	v, _ := ctx.Value(viewerKey{}).(domain.Viewer)
	return v
}

func extractBearerToken(value string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(value), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return parts[1], true
}
