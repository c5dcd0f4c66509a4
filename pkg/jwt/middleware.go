package jwt

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Guard response messages; missing and invalid tokens both produce 403 so the
// response does not reveal which check failed.
const (
	msgTokenRequired = "Token required"
	msgTokenInvalid  = "Invalid or expired token"
)

// Middleware gates access to protected routes. It extracts a token from the
// "Authorization: Bearer <token>" header, verifies it, and injects the
// decoded claims into the request context for downstream handlers.
func Middleware(service *Service) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := bearerToken(r)
			if err != nil {
				forbidden(w, msgTokenRequired)
				return
			}

			claims, err := service.Verify(tokenString)
			if err != nil {
				forbidden(w, msgTokenInvalid)
				return
			}

			ctx := r.Context()
			ctx = SetToken(ctx, tokenString)
			ctx = SetClaims(ctx, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts a JWT from the Authorization header per RFC 6750.
func bearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrInvalidToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", ErrInvalidToken
	}

	return parts[1], nil
}

func forbidden(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusForbidden)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
