package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"supermall/internal/delivery/http/response"
	"supermall/internal/domain/entity"
	"supermall/internal/domain/repository"
	"supermall/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubIdentity struct {
	tokens map[string]*service.Identity
}

func (s *stubIdentity) CreateAccount(context.Context, string, string) (*service.Identity, error) {
	return nil, nil
}

func (s *stubIdentity) VerifyIDToken(_ context.Context, idToken string) (*service.Identity, error) {
	identity, ok := s.tokens[idToken]
	if !ok {
		return nil, service.ErrInvalidIDToken
	}

	return identity, nil
}

func (s *stubIdentity) DeleteAccount(context.Context, string) error { return nil }

func (s *stubIdentity) PasswordResetLink(context.Context, string) (string, error) { return "", nil }

type stubProfileRepo struct {
	profiles map[string]*entity.Profile
	findErr  error
}

func (s *stubProfileRepo) FindByUID(_ context.Context, uid string) (*entity.Profile, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	profile, ok := s.profiles[uid]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}

	return profile, nil
}

func (s *stubProfileRepo) FindByEmail(context.Context, string) (*entity.Profile, error) {
	return nil, repository.ErrProfileNotFound
}

func (s *stubProfileRepo) ListByRole(context.Context, entity.Role) ([]*entity.Profile, error) {
	return nil, nil
}

func (s *stubProfileRepo) Create(context.Context, *entity.Profile) error { return nil }
func (s *stubProfileRepo) Update(context.Context, *entity.Profile) error { return nil }
func (s *stubProfileRepo) Delete(context.Context, string) error          { return nil }

func newGateFixture() *AuthMiddleware {
	identity := &stubIdentity{tokens: map[string]*service.Identity{
		"admin-token":    {UID: "admin-uid"},
		"merchant-token": {UID: "merchant-uid"},
		"user-token":     {UID: "user-uid"},
		"orphan-token":   {UID: "orphan-uid"},
	}}
	profiles := &stubProfileRepo{profiles: map[string]*entity.Profile{
		"admin-uid":    {UID: "admin-uid", Role: entity.RoleAdmin},
		"merchant-uid": {UID: "merchant-uid", Role: entity.RoleMerchant},
		"user-uid":     {UID: "user-uid", Role: entity.RoleUser},
	}}

	return NewAuthMiddleware(identity, profiles)
}

func performGated(t *testing.T, mw *AuthMiddleware, token string, allowed ...entity.Role) (*httptest.ResponseRecorder, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenUID string
	handler := mw.RequireRoles(allowed...)(func(c echo.Context) error {
		seenUID = IdentityUID(c)

		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	return rec, seenUID
}

func decodeRedirect(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error.Redirect
}

func TestRequireRoles_PermittedRoleRenders(t *testing.T) {
	mw := newGateFixture()

	rec, seenUID := performGated(t, mw, "admin-token", entity.RoleAdmin)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin-uid", seenUID)
}

func TestRequireRoles_AnonymousGetsLoginRedirect(t *testing.T) {
	mw := newGateFixture()

	rec, _ := performGated(t, mw, "", entity.RoleUser)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "/login", decodeRedirect(t, rec))
}

func TestRequireRoles_InvalidTokenTreatedAsAnonymous(t *testing.T) {
	mw := newGateFixture()

	rec, _ := performGated(t, mw, "forged-token", entity.RoleUser)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "/login", decodeRedirect(t, rec))
}

func TestRequireRoles_WrongRoleRedirectsToOwnDashboard(t *testing.T) {
	mw := newGateFixture()

	rec, _ := performGated(t, mw, "user-token", entity.RoleAdmin)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "/user", decodeRedirect(t, rec))
}

func TestRequireRoles_EmptyAllowedSetAdmitsAnyAuthenticated(t *testing.T) {
	mw := newGateFixture()

	for _, token := range []string{"admin-token", "merchant-token", "user-token"} {
		rec, _ := performGated(t, mw, token)
		assert.Equal(t, http.StatusOK, rec.Code, "token %s", token)
	}
}

func TestRequireRoles_VerifiedIdentityWithoutProfileIsAnonymous(t *testing.T) {
	mw := newGateFixture()

	rec, _ := performGated(t, mw, "orphan-token", entity.RoleUser)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "/login", decodeRedirect(t, rec))
}

func TestRequireRoles_MalformedAuthorizationHeader(t *testing.T) {
	mw := newGateFixture()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw.RequireRoles(entity.RoleUser)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoles_ProfileStoreFailureIsAnError(t *testing.T) {
	identity := &stubIdentity{tokens: map[string]*service.Identity{
		"user-token": {UID: "user-uid"},
	}}
	profiles := &stubProfileRepo{findErr: errors.New("store unavailable")}
	mw := NewAuthMiddleware(identity, profiles)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer user-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw.RequireRoles(entity.RoleUser)(func(echo.Context) error {
		t.Fatal("handler must not run when the profile store fails")

		return nil
	})

	err := handler(c)
	require.Error(t, err)
	// No denial payload is written; the error handler owns the response.
	assert.Zero(t, rec.Body.Len())
}
