package middleware

import (
	"net/http"
	"strings"

	"marketflow-be/internal/user"
)

// tokenScheme is the Authorization scheme clients use: "Token <key>".
const tokenScheme = "Token "

// ExtractToken pulls the key out of the Authorization header.
func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, tokenScheme) {
		return strings.TrimPrefix(authHeader, tokenScheme)
	}
	return ""
}

// AuthMiddleware parses the token, if any, and stores the caller's
// identity in the request context. Requests without a valid token pass
// through anonymous; handlers decide whether auth is required.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := ExtractToken(r)
		if tokenStr == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := user.ParseToken(tokenStr)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := WithUser(r.Context(), claims.UserID, claims.Role, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
