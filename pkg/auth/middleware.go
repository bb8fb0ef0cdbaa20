package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/pallnetwork/pallmine/pkg/utils"
)

type ContextKey string

// UserIDKey carries the verified identity-provider subject through the
// request context.
const UserIDKey ContextKey = "userID"

const bearerPrefix = "Bearer "

func AuthMiddleware(next http.Handler) http.Handler {
	jwtService := &JWTService{}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return strings.TrimPrefix(header, bearerPrefix)
}
