package contract

import (
	"context"
)

// AuthClaims is the verified caller identity attached to a request.
type AuthClaims struct {
	UID      string
	Email    string
	Name     string
	PhotoURL string
}

// ITokenVerifier validates a bearer credential with the identity provider and
// yields the caller identity.
type ITokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*AuthClaims, error)
}
