package common

import "context"

// Roles recognised by the storefront. The core never checks roles itself;
// gating happens at the HTTP layer before a mutating operation is invoked.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Identity describes the authenticated caller attached to a request.
type Identity struct {
	SessionID string
	Role      string
	Name      string
}

type ctxKey string

const identityKey ctxKey = "auth/identity"

// WithIdentity stores the authenticated identity on the provided context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFrom extracts the authenticated identity from the context if present.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	v := ctx.Value(identityKey)
	if v == nil {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}
