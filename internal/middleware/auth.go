package middleware

import (
	"net/http"
	"os"
	"strings"

	"mfgops-be/internal/auth"
	"mfgops-be/internal/respond"

	"github.com/golang-jwt/jwt/v5"
)

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// AuthMiddleware decodes the bearer token into an auth.Identity. Requests
// without a token pass through anonymously; requests with a bad token are
// rejected. Ownership checks happen in the services, not here.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := auth.TokenFromRequest(r)
		if tokenStr == "" {
			next.ServeHTTP(w, r)
			return
		}

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			return jwtSecret(), nil
		})
		if err != nil || !token.Valid {
			respond.Unauthorized(w, "Invalid token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			respond.Unauthorized(w, "Invalid token")
			return
		}

		if id, ok := auth.IdentityFromClaims(claims); ok {
			r = r.WithContext(auth.WithIdentity(r.Context(), id))
		}

		next.ServeHTTP(w, r)
	})
}

// RequireUser rejects anonymous requests.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.IdentityFrom(r.Context()); !ok {
			respond.Unauthorized(w, "No token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole rejects authenticated callers whose role is not in the
// allowed set. Admins pass every role gate.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := auth.IdentityFrom(r.Context())
			if !ok {
				respond.Unauthorized(w, "No token")
				return
			}

			role := strings.ToUpper(id.Role)
			if role == "ADMIN" {
				next.ServeHTTP(w, r)
				return
			}
			for _, allowed := range roles {
				if role == strings.ToUpper(allowed) {
					next.ServeHTTP(w, r)
					return
				}
			}

			respond.Forbidden(w, "Forbidden: insufficient role")
		})
	}
}
