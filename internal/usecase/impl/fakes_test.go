package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"supermall/config"
	"supermall/internal/domain/entity"
	"supermall/internal/domain/repository"
	"supermall/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Mall.DefaultMaxMerchants = 10
	cfg.Audit.ListLimit = 50

	return cfg
}

// memStore is a shared in-memory document store backing all fake
// repositories of one test. Entities are deep-copied on every read and
// write so mutations only become visible through Update, mirroring the
// document store.
type memStore struct {
	mu       sync.Mutex
	nextID   int
	profiles map[string]*entity.Profile
	malls    map[string]*entity.Mall
	shops    map[string]*entity.Shop
	products map[string]*entity.Product
	offers   map[string]*entity.Offer
}

func newMemStore() *memStore {
	return &memStore{
		profiles: make(map[string]*entity.Profile),
		malls:    make(map[string]*entity.Mall),
		shops:    make(map[string]*entity.Shop),
		products: make(map[string]*entity.Product),
		offers:   make(map[string]*entity.Offer),
	}
}

func (s *memStore) id(prefix string) string {
	s.nextID++

	return fmt.Sprintf("%s-%d", prefix, s.nextID)
}

func (s *memStore) snapshot() *memStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := newMemStore()
	out.nextID = s.nextID
	for k, v := range s.profiles {
		out.profiles[k] = cloneProfile(v)
	}
	for k, v := range s.malls {
		out.malls[k] = cloneMall(v)
	}
	for k, v := range s.shops {
		out.shops[k] = cloneShop(v)
	}
	for k, v := range s.products {
		out.products[k] = cloneProduct(v)
	}
	for k, v := range s.offers {
		out.offers[k] = cloneOffer(v)
	}

	return out
}

func (s *memStore) restore(from *memStore) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID = from.nextID
	s.profiles = from.profiles
	s.malls = from.malls
	s.shops = from.shops
	s.products = from.products
	s.offers = from.offers
}

func cloneProfile(p *entity.Profile) *entity.Profile {
	out := *p
	out.SavedItems = slices.Clone(p.SavedItems)

	return &out
}

func cloneMall(m *entity.Mall) *entity.Mall {
	out := *m

	return &out
}

func cloneShop(s *entity.Shop) *entity.Shop {
	out := *s

	return &out
}

func cloneProduct(p *entity.Product) *entity.Product {
	out := *p
	out.Features = slices.Clone(p.Features)

	return &out
}

func cloneOffer(o *entity.Offer) *entity.Offer {
	out := *o

	return &out
}

type fakeProfileRepo struct{ store *memStore }

func (r *fakeProfileRepo) FindByUID(_ context.Context, uid string) (*entity.Profile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.profiles[uid]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}

	return cloneProfile(p), nil
}

func (r *fakeProfileRepo) FindByEmail(_ context.Context, email string) (*entity.Profile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, p := range r.store.profiles {
		if p.Email == email {
			return cloneProfile(p), nil
		}
	}

	return nil, repository.ErrProfileNotFound
}

func (r *fakeProfileRepo) ListByRole(_ context.Context, role entity.Role) ([]*entity.Profile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Profile
	for _, p := range r.store.profiles {
		if p.Role == role {
			out = append(out, cloneProfile(p))
		}
	}

	return out, nil
}

func (r *fakeProfileRepo) Create(_ context.Context, profile *entity.Profile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.profiles[profile.UID]; ok {
		return fmt.Errorf("profile %s already exists", profile.UID)
	}
	r.store.profiles[profile.UID] = cloneProfile(profile)

	return nil
}

func (r *fakeProfileRepo) Update(_ context.Context, profile *entity.Profile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.profiles[profile.UID]; !ok {
		return repository.ErrProfileNotFound
	}
	r.store.profiles[profile.UID] = cloneProfile(profile)

	return nil
}

func (r *fakeProfileRepo) Delete(_ context.Context, uid string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.profiles, uid)

	return nil
}

type fakeMallRepo struct{ store *memStore }

func (r *fakeMallRepo) FindByID(_ context.Context, id string) (*entity.Mall, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	m, ok := r.store.malls[id]
	if !ok {
		return nil, repository.ErrMallNotFound
	}

	return cloneMall(m), nil
}

func (r *fakeMallRepo) List(_ context.Context) ([]*entity.Mall, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Mall
	for _, m := range r.store.malls {
		out = append(out, cloneMall(m))
	}

	return out, nil
}

func (r *fakeMallRepo) Create(_ context.Context, mall *entity.Mall) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	mall.ID = r.store.id("mall")
	r.store.malls[mall.ID] = cloneMall(mall)

	return nil
}

func (r *fakeMallRepo) Update(_ context.Context, mall *entity.Mall) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.malls[mall.ID]; !ok {
		return repository.ErrMallNotFound
	}
	r.store.malls[mall.ID] = cloneMall(mall)

	return nil
}

func (r *fakeMallRepo) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.malls, id)

	return nil
}

type fakeShopRepo struct{ store *memStore }

func (r *fakeShopRepo) FindByID(_ context.Context, id string) (*entity.Shop, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	s, ok := r.store.shops[id]
	if !ok {
		return nil, repository.ErrShopNotFound
	}

	return cloneShop(s), nil
}

func (r *fakeShopRepo) List(_ context.Context) ([]*entity.Shop, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var shops []*entity.Shop
	for _, s := range r.store.shops {
		shops = append(shops, cloneShop(s))
	}

	return shops, nil
}

func (r *fakeShopRepo) ListByMall(_ context.Context, mallID string) ([]*entity.Shop, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Shop
	for _, s := range r.store.shops {
		if s.MallID == mallID {
			out = append(out, cloneShop(s))
		}
	}

	return out, nil
}

func (r *fakeShopRepo) ListByOwner(_ context.Context, ownerUID string) ([]*entity.Shop, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Shop
	for _, s := range r.store.shops {
		if s.OwnerUID == ownerUID {
			out = append(out, cloneShop(s))
		}
	}

	return out, nil
}

func (r *fakeShopRepo) Create(_ context.Context, shop *entity.Shop) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	shop.ID = r.store.id("shop")
	r.store.shops[shop.ID] = cloneShop(shop)

	return nil
}

func (r *fakeShopRepo) Update(_ context.Context, shop *entity.Shop) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.shops[shop.ID]; !ok {
		return repository.ErrShopNotFound
	}
	r.store.shops[shop.ID] = cloneShop(shop)

	return nil
}

func (r *fakeShopRepo) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.shops, id)

	return nil
}

type fakeProductRepo struct{ store *memStore }

func (r *fakeProductRepo) FindByID(_ context.Context, id string) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	return cloneProduct(p), nil
}

func (r *fakeProductRepo) FindByIDs(_ context.Context, ids []string) ([]*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Product
	for _, id := range ids {
		if p, ok := r.store.products[id]; ok {
			out = append(out, cloneProduct(p))
		}
	}

	return out, nil
}

func (r *fakeProductRepo) ListByShop(_ context.Context, shopID string) ([]*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Product
	for _, p := range r.store.products {
		if p.ShopID == shopID {
			out = append(out, cloneProduct(p))
		}
	}

	return out, nil
}

func (r *fakeProductRepo) ListByShops(_ context.Context, shopIDs []string) ([]*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Product
	for _, p := range r.store.products {
		if slices.Contains(shopIDs, p.ShopID) {
			out = append(out, cloneProduct(p))
		}
	}

	return out, nil
}

func (r *fakeProductRepo) ListByOwner(_ context.Context, ownerUID string) ([]*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Product
	for _, p := range r.store.products {
		if p.OwnerUID == ownerUID {
			out = append(out, cloneProduct(p))
		}
	}

	return out, nil
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	product.ID = r.store.id("product")
	r.store.products[product.ID] = cloneProduct(product)

	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.products[product.ID]; !ok {
		return repository.ErrProductNotFound
	}
	r.store.products[product.ID] = cloneProduct(product)

	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.products, id)

	return nil
}

type fakeOfferRepo struct{ store *memStore }

func (r *fakeOfferRepo) FindByID(_ context.Context, id string) (*entity.Offer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	o, ok := r.store.offers[id]
	if !ok {
		return nil, repository.ErrOfferNotFound
	}

	return cloneOffer(o), nil
}

func (r *fakeOfferRepo) ListByProduct(_ context.Context, productID string) ([]*entity.Offer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Offer
	for _, o := range r.store.offers {
		if o.ProductID == productID {
			out = append(out, cloneOffer(o))
		}
	}

	return out, nil
}

func (r *fakeOfferRepo) ListByOwner(_ context.Context, ownerUID string) ([]*entity.Offer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Offer
	for _, o := range r.store.offers {
		if o.OwnerUID == ownerUID {
			out = append(out, cloneOffer(o))
		}
	}

	return out, nil
}

func (r *fakeOfferRepo) ListActiveByProducts(_ context.Context, productIDs []string, now time.Time) ([]*entity.Offer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Offer
	for _, o := range r.store.offers {
		if slices.Contains(productIDs, o.ProductID) && o.IsActive(now) {
			out = append(out, cloneOffer(o))
		}
	}

	return out, nil
}

func (r *fakeOfferRepo) Create(_ context.Context, offer *entity.Offer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	offer.ID = r.store.id("offer")
	r.store.offers[offer.ID] = cloneOffer(offer)

	return nil
}

func (r *fakeOfferRepo) Update(_ context.Context, offer *entity.Offer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.offers[offer.ID]; !ok {
		return repository.ErrOfferNotFound
	}
	r.store.offers[offer.ID] = cloneOffer(offer)

	return nil
}

func (r *fakeOfferRepo) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.offers, id)

	return nil
}

type fakeRepoFactory struct{ store *memStore }

func (f *fakeRepoFactory) ProfileRepo() repository.ProfileRepository { return &fakeProfileRepo{f.store} }
func (f *fakeRepoFactory) MallRepo() repository.MallRepository       { return &fakeMallRepo{f.store} }
func (f *fakeRepoFactory) ShopRepo() repository.ShopRepository       { return &fakeShopRepo{f.store} }
func (f *fakeRepoFactory) ProductRepo() repository.ProductRepository { return &fakeProductRepo{f.store} }
func (f *fakeRepoFactory) OfferRepo() repository.OfferRepository     { return &fakeOfferRepo{f.store} }

// fakeTxManager snapshots the store before running the function and
// restores it when the function fails, so aborted transactions leave no
// partial writes behind.
type fakeTxManager struct {
	store *memStore
	// failWith, when set, aborts every transaction before it runs.
	failWith error
}

func (tm *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if tm.failWith != nil {
		return tm.failWith
	}

	before := tm.store.snapshot()
	if err := fn(&fakeRepoFactory{tm.store}); err != nil {
		tm.store.restore(before)

		return err
	}

	return nil
}

type fakeIdentity struct {
	mu       sync.Mutex
	nextUID  int
	accounts map[string]*service.Identity // keyed by uid
	tokens   map[string]*service.Identity // keyed by id token
	deleted  []string

	createErr error
	resetErr  error
}

func newFakeIdentity() *fakeIdentity {
	return &fakeIdentity{
		accounts: make(map[string]*service.Identity),
		tokens:   make(map[string]*service.Identity),
	}
}

func (f *fakeIdentity) addToken(token string, identity *service.Identity) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens[token] = identity
	f.accounts[identity.UID] = identity
}

func (f *fakeIdentity) CreateAccount(_ context.Context, email, _ string) (*service.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextUID++
	identity := &service.Identity{
		UID:   fmt.Sprintf("uid-%d", f.nextUID),
		Email: email,
		Name:  strings.SplitN(email, "@", 2)[0],
	}
	f.accounts[identity.UID] = identity

	return identity, nil
}

func (f *fakeIdentity) VerifyIDToken(_ context.Context, idToken string) (*service.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	identity, ok := f.tokens[idToken]
	if !ok {
		return nil, service.ErrInvalidIDToken
	}

	return identity, nil
}

func (f *fakeIdentity) DeleteAccount(_ context.Context, uid string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.accounts, uid)
	f.deleted = append(f.deleted, uid)

	return nil
}

func (f *fakeIdentity) PasswordResetLink(_ context.Context, email string) (string, error) {
	if f.resetErr != nil {
		return "", f.resetErr
	}

	return "https://example.com/reset?email=" + email, nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (fakeHasher) Check(password, hash string) bool     { return "hashed:"+password == hash }

type fakeAudit struct {
	mu     sync.Mutex
	events []*service.AuditEvent
}

func (f *fakeAudit) Record(_ context.Context, event *service.AuditEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
}

func (f *fakeAudit) actions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Action)
	}

	return out
}
