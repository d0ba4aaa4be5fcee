package repository

import (
	"context"
	"errors"

	"supermall/internal/domain/entity"
)

// ErrMallNotFound is a domain-specific error returned when a mall is not found.
var ErrMallNotFound = errors.New("mall not found")

// MallRepository defines the standard operations for mall persistence.
// The capacity ledger reads and writes the merchant counter exclusively
// through this interface, inside a document transaction.
type MallRepository interface {
	// FindByID retrieves a single mall by its document id.
	FindByID(ctx context.Context, id string) (*entity.Mall, error)

	// List retrieves all malls.
	List(ctx context.Context) ([]*entity.Mall, error)

	// Create persists a new mall and fills in the server-assigned id.
	Create(ctx context.Context, mall *entity.Mall) error

	// Update replaces an existing mall document.
	Update(ctx context.Context, mall *entity.Mall) error

	// Delete removes a mall document.
	Delete(ctx context.Context, id string) error
}
