package repository

import "context"

// DocumentTxManager defines the interface for running a set of document
// reads and writes as one atomic unit. The underlying store retries the
// whole function on contention, so the function must be side-effect free
// apart from repository calls. This is what closes the read-then-act race
// on the mall merchant counter: capacity is re-checked on the
// transactional read, not on whatever the caller saw earlier.
type DocumentTxManager interface {
	// Execute runs a function within one document-store transaction.
	// If the function returns an error, none of its writes are committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
// All repository operations obtained from the same factory observe and
// mutate the same transactional snapshot.
type RepositoryFactory interface {
	// ProfileRepo returns a ProfileRepository bound to the current transaction.
	ProfileRepo() ProfileRepository

	// MallRepo returns a MallRepository bound to the current transaction.
	MallRepo() MallRepository

	// ShopRepo returns a ShopRepository bound to the current transaction.
	ShopRepo() ShopRepository

	// ProductRepo returns a ProductRepository bound to the current transaction.
	ProductRepo() ProductRepository

	// OfferRepo returns an OfferRepository bound to the current transaction.
	OfferRepo() OfferRepository
}
