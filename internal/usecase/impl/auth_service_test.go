package impl

import (
	"context"
	"testing"

	"supermall/internal/domain/entity"
	domainerrors "supermall/internal/domain/errors"
	"supermall/internal/domain/service"
	"supermall/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service  usecase.AuthUsecase
	store    *memStore
	identity *fakeIdentity
	audit    *fakeAudit
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()
	store := newMemStore()
	identity := newFakeIdentity()
	audit := &fakeAudit{}

	service := NewAuthService(AuthServiceParams{
		ProfileRepo: &fakeProfileRepo{store},
		Identity:    identity,
		Audit:       audit,
		Logger:      newDiscardLogger(),
	})

	return authServiceFixtures{service: service, store: store, identity: identity, audit: audit}
}

func TestAuthService_Register_CreatesProfile(t *testing.T) {
	fx := createTestAuthService(t)
	fx.identity.addToken("token-1", &service.Identity{UID: "uid-1", Email: "shopper@example.com"})

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		IDToken: "token-1",
		Name:    "Shopper",
		Role:    "user",
	})

	require.NoError(t, err)
	assert.Equal(t, "uid-1", output.Profile.UID)
	assert.Equal(t, entity.RoleUser, output.Profile.Role)
	assert.False(t, output.NeedsRoleSelection)
	assert.Contains(t, fx.audit.actions(), "auth.register")
}

func TestAuthService_Register_RejectsAdminRole(t *testing.T) {
	fx := createTestAuthService(t)
	fx.identity.addToken("token-1", &service.Identity{UID: "uid-1", Email: "sneaky@example.com"})

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		IDToken: "token-1",
		Name:    "Sneaky",
		Role:    "admin",
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidRole)
	assert.Empty(t, fx.store.profiles)
}

func TestAuthService_Register_RejectsUnknownRole(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		IDToken: "token-1",
		Name:    "Unknown",
		Role:    "superuser",
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidRole)
}

func TestAuthService_Register_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		IDToken: "forged",
		Name:    "Nobody",
		Role:    "user",
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidIDToken)
}

func TestAuthService_ResolveSession_NeedsRoleSelection(t *testing.T) {
	fx := createTestAuthService(t)
	fx.identity.addToken("token-1", &service.Identity{UID: "uid-1", Email: "new@example.com", Name: "New User"})

	output, err := fx.service.ResolveSession(context.Background(), "token-1")

	require.NoError(t, err)
	assert.True(t, output.NeedsRoleSelection)
	assert.Nil(t, output.Profile)
}

func TestAuthService_ResolveSession_ExistingProfile(t *testing.T) {
	fx := createTestAuthService(t)
	fx.identity.addToken("token-1", &service.Identity{UID: "uid-1", Email: "known@example.com"})
	_ = (&fakeProfileRepo{fx.store}).Create(context.Background(), &entity.Profile{
		UID:  "uid-1",
		Name: "Known User",
		Role: entity.RoleUser,
	})

	output, err := fx.service.ResolveSession(context.Background(), "token-1")

	require.NoError(t, err)
	assert.False(t, output.NeedsRoleSelection)
	assert.Equal(t, "Known User", output.Profile.Name)
}

func TestAuthService_CompleteRoleSelection_UsesIdentityName(t *testing.T) {
	fx := createTestAuthService(t)
	fx.identity.addToken("token-1", &service.Identity{UID: "uid-1", Email: "fed@example.com", Name: "Federated User"})

	output, err := fx.service.CompleteRoleSelection(context.Background(), &usecase.CompleteRoleSelectionInput{
		IDToken: "token-1",
		Role:    "merchant",
	})

	require.NoError(t, err)
	assert.Equal(t, "Federated User", output.Profile.Name)
	assert.Equal(t, entity.RoleMerchant, output.Profile.Role)
}

func TestAuthService_CompleteRoleSelection_RoleConflict(t *testing.T) {
	fx := createTestAuthService(t)
	fx.identity.addToken("token-1", &service.Identity{UID: "uid-1", Email: "fed@example.com", Name: "Federated User"})

	_, err := fx.service.CompleteRoleSelection(context.Background(), &usecase.CompleteRoleSelectionInput{
		IDToken: "token-1",
		Role:    "user",
	})
	require.NoError(t, err)

	// Choosing a different role for the same identity conflicts.
	_, err = fx.service.CompleteRoleSelection(context.Background(), &usecase.CompleteRoleSelectionInput{
		IDToken: "token-1",
		Role:    "merchant",
	})
	require.ErrorIs(t, err, domainerrors.ErrRoleAlreadyChosen)

	// Re-submitting the same role is idempotent.
	output, err := fx.service.CompleteRoleSelection(context.Background(), &usecase.CompleteRoleSelectionInput{
		IDToken: "token-1",
		Role:    "user",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, output.Profile.Role)
}

func TestAuthService_SendPasswordReset_FlattensProviderErrors(t *testing.T) {
	fx := createTestAuthService(t)
	fx.identity.resetErr = errors.New("no such account")

	_, err := fx.service.SendPasswordReset(context.Background(), "unknown@example.com")

	require.ErrorIs(t, err, domainerrors.ErrIdentityProviderFailed)
}

func TestAuthService_SendPasswordReset_InvalidEmail(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.SendPasswordReset(context.Background(), "not-an-email")

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
