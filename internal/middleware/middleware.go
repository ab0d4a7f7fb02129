package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"radioapp/internal/config"
	"radioapp/internal/models"
)

type Middleware func(http.Handler) http.Handler

type claimsKey struct{}

// ClaimsFromContext returns the caller identity attached by Authenticate.
func ClaimsFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(models.Claims)
	return claims, ok
}

// WithClaims attaches a caller identity to the context. Exported for tests.
func WithClaims(ctx context.Context, claims models.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// Authenticate verifies the bearer token and attaches the decoded identity
// to the request context. It never performs the admin check itself; routes
// that need it compose AdminOnly explicitly.
func Authenticate(cfg *config.Config) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, "Unauthorized - Missing Token", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				writeError(w, "Unauthorized - Missing Token", http.StatusUnauthorized)
				return
			}

			tokenString := parts[1]

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(cfg.JWTSecretKey), nil
			})

			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					writeError(w, "Unauthorized - Token Expired", http.StatusUnauthorized)
					return
				}
				writeError(w, "Unauthorized - Invalid Token", http.StatusUnauthorized)
				return
			}

			if !token.Valid {
				writeError(w, "Unauthorized - Invalid Token", http.StatusUnauthorized)
				return
			}

			mapClaims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				writeError(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			userID, ok1 := mapClaims["id"].(float64)
			username, ok2 := mapClaims["username"].(string)
			isAdmin, _ := mapClaims["isadmin"].(bool)

			if !ok1 || !ok2 {
				writeError(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims := models.Claims{
				UserID:   int64(userID),
				Username: username,
				IsAdmin:  isAdmin,
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// AdminOnly requires Authenticate to have run first.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			writeError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		if !claims.IsAdmin {
			writeError(w, "Forbidden - User is not an administrator", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func CORSMiddleware(origin string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("Method: %s, URL: %s", r.Method, r.RequestURI)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
