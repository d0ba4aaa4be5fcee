// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer. The backing store is a document database
// with server-assigned document ids; it offers transactions over a set of
// documents (see DocumentTxManager) but no relational constraints, so all
// referential integrity is enforced in the application layer.
package repository

import (
	"context"
	"errors"

	"supermall/internal/domain/entity"
)

// ErrProfileNotFound is a domain-specific error returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the standard operations for profile persistence.
// Profiles are keyed by the identity provider's uid rather than a
// server-assigned id, so Create stores under entity.Profile.UID.
type ProfileRepository interface {
	// FindByUID retrieves a single profile by its identity uid.
	FindByUID(ctx context.Context, uid string) (*entity.Profile, error)

	// FindByEmail retrieves a single profile by email address.
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)

	// ListByRole retrieves all profiles carrying the given role.
	ListByRole(ctx context.Context, role entity.Role) ([]*entity.Profile, error)

	// Create persists a new profile document keyed by its UID.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update replaces an existing profile document.
	Update(ctx context.Context, profile *entity.Profile) error

	// Delete removes a profile document.
	Delete(ctx context.Context, uid string) error
}
