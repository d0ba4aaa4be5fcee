// Package service defines interfaces for core, stateless domain logic and
// for the external collaborators the application delegates to.
package service

import (
	"context"
	"errors"
)

// ErrInvalidIDToken is returned when an ID token fails verification.
var ErrInvalidIDToken = errors.New("invalid id token")

// Identity is the opaque account held by the external identity provider.
// It is created on sign-up and never mutated by this system.
type Identity struct {
	UID   string
	Email string
	Name  string
}

// IdentityProvider wraps the external identity service. Credentials,
// session tokens and password resets all live on the provider side; this
// system only creates accounts, verifies tokens, and deletes accounts it
// created.
type IdentityProvider interface {
	// CreateAccount registers a new account with the provider.
	CreateAccount(ctx context.Context, email, password string) (*Identity, error)

	// VerifyIDToken validates a client-obtained ID token and returns the
	// identity it belongs to. Federated and password sign-ins both
	// surface here; the provider does not distinguish them for us.
	VerifyIDToken(ctx context.Context, idToken string) (*Identity, error)

	// DeleteAccount removes an account from the provider.
	DeleteAccount(ctx context.Context, uid string) error

	// PasswordResetLink generates a password-reset link for the email.
	PasswordResetLink(ctx context.Context, email string) (string, error)
}
