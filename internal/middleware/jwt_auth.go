package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/fhuszti/captions-ms-go/internal/api_context"
	"github.com/fhuszti/captions-ms-go/internal/handler/api"
	"github.com/golang-jwt/jwt/v4"
)

// WithJWTAuth validates an HMAC signed Bearer JWT. It is a passthrough when
// no secret is configured.
func WithJWTAuth(secret string) func(http.Handler) http.Handler {
	if secret == "" {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r)
			})
		}
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{
			jwt.SigningMethodHS256.Name,
			jwt.SigningMethodHS384.Name,
			jwt.SigningMethodHS512.Name,
		}),
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				api.WriteError(w, http.StatusUnauthorized, "missing bearer token", nil)
				return
			}

			raw := strings.TrimPrefix(auth, "Bearer ")
			claims := jwt.MapClaims{}
			tok, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method")
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				api.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
				return
			}

			ctx := r.Context()
			if sub, _ := claims["sub"].(string); sub != "" {
				ctx = context.WithValue(ctx, api_context.AuthSubjectKey, sub)
			}
			if roles := toStringSlice(claims["roles"]); roles != nil {
				ctx = context.WithValue(ctx, api_context.AuthRolesKey, roles)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func toStringSlice(v any) []string {
	switch vv := v.(type) {
	case []string:
		return vv
	case []any:
		out := make([]string, 0, len(vv))
		for _, e := range vv {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
