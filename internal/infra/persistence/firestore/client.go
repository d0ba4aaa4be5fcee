// Package firestore contains the concrete implementation of the persistence
// layer on the Google Cloud Firestore document store.
package firestore

import (
	"context"
	"log/slog"

	"supermall/config"
	"supermall/internal/domain/lifecycle"
	"supermall/internal/errors"

	fs "cloud.google.com/go/firestore"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Collection names match what the original web client wrote, so existing
// data keeps working.
const (
	usersCollection      = "users"
	mallsCollection      = "malls"
	shopsCollection      = "shops"
	productsCollection   = "products"
	offersCollection     = "offers"
	categoriesCollection = "categories"
	floorsCollection     = "floors"
	logsCollection       = "logs"
)

// The store rejects disjunctive ('in') filters above this many values,
// so multi-id queries are issued in chunks.
const inQueryChunkSize = 30

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Firestore client and ties its shutdown to the
// application lifecycle.
func New(params Params) (*fs.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	var opts []option.ClientOption
	if path := params.Config.Firebase.CredentialsPath; path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}

	client, err := fs.NewClient(ctx, params.Config.Firebase.ProjectID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
