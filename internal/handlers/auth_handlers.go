package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/arcmarket/arc-api/internal/models"
	"github.com/arcmarket/arc-api/internal/services"
)

// WalletLogin handles wallet-signature authentication
func WalletLogin(authService *services.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.WalletAuthRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondValidation(w, "invalid request body")
			return
		}

		token, err := authService.AuthenticateWithWallet(req)
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, token)
	}
}

// AuthMiddleware authenticates requests via a Bearer token and places
// the wallet in the request context
func AuthMiddleware(authService *services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "Invalid Authorization header format", http.StatusUnauthorized)
				return
			}

			wallet, err := authService.ValidateToken(parts[1])
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := NewContextWithWallet(r.Context(), wallet)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
