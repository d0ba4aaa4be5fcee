package firestore

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// store binds repository operations either to the raw client or, when tx
// is non-nil, to one running transaction. Repositories obtained from the
// transactional factory all share the same tx, so their reads observe one
// snapshot and their writes commit or abort together.
type store struct {
	client *fs.Client
	tx     *fs.Transaction
}

func (s *store) get(ctx context.Context, ref *fs.DocumentRef) (*fs.DocumentSnapshot, error) {
	if s.tx != nil {
		return s.tx.Get(ref)
	}

	return ref.Get(ctx)
}

func (s *store) getAll(ctx context.Context, refs []*fs.DocumentRef) ([]*fs.DocumentSnapshot, error) {
	if s.tx != nil {
		return s.tx.GetAll(refs)
	}

	return s.client.GetAll(ctx, refs)
}

func (s *store) docs(ctx context.Context, query fs.Query) *fs.DocumentIterator {
	if s.tx != nil {
		return s.tx.Documents(query)
	}

	return query.Documents(ctx)
}

func (s *store) create(ctx context.Context, ref *fs.DocumentRef, data any) error {
	if s.tx != nil {
		return s.tx.Create(ref, data)
	}

	_, err := ref.Create(ctx, data)

	return err
}

func (s *store) set(ctx context.Context, ref *fs.DocumentRef, data any) error {
	if s.tx != nil {
		return s.tx.Set(ref, data)
	}

	_, err := ref.Set(ctx, data)

	return err
}

func (s *store) delete(ctx context.Context, ref *fs.DocumentRef) error {
	if s.tx != nil {
		return s.tx.Delete(ref)
	}

	_, err := ref.Delete(ctx)

	return err
}

// drain consumes an iterator, handing each snapshot to collect.
func drain(iter *fs.DocumentIterator, collect func(*fs.DocumentSnapshot) error) error {
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return err
		}
		if err := collect(snap); err != nil {
			return err
		}
	}
}

// chunk splits ids into slices no longer than inQueryChunkSize.
func chunk(ids []string) [][]string {
	var out [][]string
	for len(ids) > inQueryChunkSize {
		out = append(out, ids[:inQueryChunkSize])
		ids = ids[inQueryChunkSize:]
	}
	if len(ids) > 0 {
		out = append(out, ids)
	}

	return out
}
