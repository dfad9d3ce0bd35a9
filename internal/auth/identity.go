package auth

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoIdentity = errors.New("no authenticated identity in context")

// Identity is the verified caller extracted from a bearer token.
// Core services take it as an explicit argument rather than reading
// request-scoped state.
type Identity struct {
	UserID    int64
	CompanyID int64
	Role      string
}

type ctxKey string

const identityKey ctxKey = "identity"

// IdentityFromClaims maps the token claims (usr_id, user_company,
// user_role) onto an Identity. Numeric claims arrive as float64 after
// JSON decoding.
func IdentityFromClaims(claims jwt.MapClaims) (Identity, bool) {
	uid, ok := claims["usr_id"].(float64)
	if !ok {
		return Identity{}, false
	}

	id := Identity{UserID: int64(uid)}

	if company, ok := claims["user_company"].(float64); ok {
		id.CompanyID = int64(company)
	}
	if role, ok := claims["user_role"].(string); ok {
		id.Role = role
	}

	return id, true
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
