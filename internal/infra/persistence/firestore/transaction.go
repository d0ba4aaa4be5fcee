package firestore

import (
	"context"

	"supermall/internal/domain/repository"

	fs "cloud.google.com/go/firestore"
)

// firestoreTxManager implements the domain's DocumentTxManager interface.
// Firestore retries the whole function on contention and requires every
// read to happen before the first write, so callers load what they need
// up front and write at the end.
type firestoreTxManager struct {
	client *fs.Client
}

// firestoreRepositoryFactory implements the domain's RepositoryFactory
// interface. It holds one running transaction and hands out repository
// instances bound to it.
type firestoreRepositoryFactory struct {
	client *fs.Client
	tx     *fs.Transaction
}

// ProfileRepo returns a profile repository bound to the transaction.
func (f *firestoreRepositoryFactory) ProfileRepo() repository.ProfileRepository {
	return &profileRepository{store: store{client: f.client, tx: f.tx}}
}

// MallRepo returns a mall repository bound to the transaction.
func (f *firestoreRepositoryFactory) MallRepo() repository.MallRepository {
	return &mallRepository{store: store{client: f.client, tx: f.tx}}
}

// ShopRepo returns a shop repository bound to the transaction.
func (f *firestoreRepositoryFactory) ShopRepo() repository.ShopRepository {
	return &shopRepository{store: store{client: f.client, tx: f.tx}}
}

// ProductRepo returns a product repository bound to the transaction.
func (f *firestoreRepositoryFactory) ProductRepo() repository.ProductRepository {
	return &productRepository{store: store{client: f.client, tx: f.tx}}
}

// OfferRepo returns an offer repository bound to the transaction.
func (f *firestoreRepositoryFactory) OfferRepo() repository.OfferRepository {
	return &offerRepository{store: store{client: f.client, tx: f.tx}}
}

// NewTransactionManager is the constructor for firestoreTxManager.
// This function will be used as an Fx provider.
func NewTransactionManager(client *fs.Client) repository.DocumentTxManager {
	return &firestoreTxManager{client: client}
}

// Execute runs the given function within a single Firestore transaction.
func (tm *firestoreTxManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	// RunTransaction surfaces the function's error as-is when the function
	// fails, so business errors pass through to the caller untouched.
	return tm.client.RunTransaction(ctx, func(_ context.Context, tx *fs.Transaction) error {
		factory := &firestoreRepositoryFactory{client: tm.client, tx: tx}

		return fn(factory)
	})
}
