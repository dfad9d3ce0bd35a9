package auth

import (
	"net/http"
	"strings"
)

const accessTokenCookie = "access_token"

// TokenFromRequest returns the caller's access token, preferring the
// access_token cookie over a bearer Authorization header.
func TokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(accessTokenCookie); err == nil && c.Value != "" {
		return c.Value
	}

	const prefix = "Bearer "
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, prefix) {
		return h[len(prefix):]
	}
	return ""
}
