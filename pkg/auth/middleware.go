package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/nsdBRoficial/stellar-stake-house/pkg/utils"
)

type ContextKey string

const (
	UserIDKey  ContextKey = "userID"
	AddressKey ContextKey = "stellarAddress"
)

func AuthMiddleware(jwtService JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, AddressKey, claims.Address)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
