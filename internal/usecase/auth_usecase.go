// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"supermall/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to self-register a profile.
// The caller has already signed in against the identity provider; the
// token proves who they are, the role says what they want to be.
type RegisterInput struct {
	IDToken       string
	Name          string
	Role          string
	ContactNumber string
}

// CompleteRoleSelectionInput finishes a federated first sign-in that has
// an identity but no profile yet.
type CompleteRoleSelectionInput struct {
	IDToken string
	Name    string
	Role    string
}

// --- Output DTOs ---

// SessionOutput describes the resolved session for the caller's token.
type SessionOutput struct {
	Profile *entity.Profile

	// NeedsRoleSelection is true when the identity verified but no
	// profile exists yet. The client must complete role selection
	// before any role-gated page renders.
	NeedsRoleSelection bool
}

// AuthUsecase defines the interface for authentication-related business operations.
type AuthUsecase interface {
	// Register creates a profile for a newly signed-up identity.
	// Admin profiles cannot be self-registered.
	Register(ctx context.Context, input *RegisterInput) (*SessionOutput, error)

	// ResolveSession verifies the token and loads the profile behind it.
	ResolveSession(ctx context.Context, idToken string) (*SessionOutput, error)

	// CompleteRoleSelection creates the missing profile for an identity
	// that signed in through a federated provider.
	CompleteRoleSelection(ctx context.Context, input *CompleteRoleSelectionInput) (*SessionOutput, error)

	// SendPasswordReset generates a password-reset link for the email.
	SendPasswordReset(ctx context.Context, email string) (string, error)
}
