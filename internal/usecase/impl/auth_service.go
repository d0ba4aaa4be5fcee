package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "supermall/internal/delivery/context"
	"supermall/internal/domain/entity"
	domainerrors "supermall/internal/domain/errors"
	"supermall/internal/domain/repository"
	"supermall/internal/domain/service"
	"supermall/internal/usecase"
	"supermall/internal/validation"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface. Credentials live on
// the identity provider; this service owns the profile document and the
// role attached to it.
type authService struct {
	profileRepo repository.ProfileRepository
	identity    service.IdentityProvider
	audit       service.AuditTrail
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Identity    service.IdentityProvider
	Audit       service.AuditTrail
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		profileRepo: params.ProfileRepo,
		identity:    params.Identity,
		audit:       params.Audit,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the profile for a freshly signed-up identity. Roles are
// a closed set and admin is never self-assignable; admin accounts are
// provisioned out of band.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.SessionOutput, error) {
	role := entity.Role(input.Role)
	if !role.IsValid() || role == entity.RoleAdmin {
		return nil, domainerrors.ErrInvalidRole
	}
	if !validation.Required(input.Name) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name is required")
	}

	identity, err := srv.verify(ctx, input.IDToken)
	if err != nil {
		return nil, err
	}

	profile, err := srv.createProfile(ctx, identity, input.Name, input.ContactNumber, role)
	if err != nil {
		return nil, err
	}

	srv.audit.Record(ctx, &service.AuditEvent{
		ActorUID:    profile.UID,
		Action:      "auth.register",
		Description: "profile registered",
		Metadata:    map[string]string{"role": role.String()},
	})

	return &usecase.SessionOutput{Profile: profile}, nil
}

// ResolveSession verifies the token and loads the profile behind it. A
// verified identity without a profile is a first federated sign-in; the
// caller must complete role selection before anything role-gated renders.
func (srv *authService) ResolveSession(ctx context.Context, idToken string) (*usecase.SessionOutput, error) {
	identity, err := srv.verify(ctx, idToken)
	if err != nil {
		return nil, err
	}

	profile, err := srv.profileRepo.FindByUID(ctx, identity.UID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return &usecase.SessionOutput{NeedsRoleSelection: true}, nil
		}

		return nil, errors.Wrap(err, "failed to load profile for session")
	}

	return &usecase.SessionOutput{Profile: profile}, nil
}

// CompleteRoleSelection creates the missing profile for a federated
// identity. The chosen role is permanent; selecting again conflicts.
func (srv *authService) CompleteRoleSelection(ctx context.Context, input *usecase.CompleteRoleSelectionInput) (*usecase.SessionOutput, error) {
	role := entity.Role(input.Role)
	if !role.IsValid() || role == entity.RoleAdmin {
		return nil, domainerrors.ErrInvalidRole
	}

	identity, err := srv.verify(ctx, input.IDToken)
	if err != nil {
		return nil, err
	}

	name := input.Name
	if name == "" {
		name = identity.Name
	}
	if !validation.Required(name) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name is required")
	}

	profile, err := srv.createProfile(ctx, identity, name, "", role)
	if err != nil {
		return nil, err
	}

	srv.audit.Record(ctx, &service.AuditEvent{
		ActorUID:    profile.UID,
		Action:      "auth.role_selected",
		Description: "role selected for federated sign-in",
		Metadata:    map[string]string{"role": role.String()},
	})

	return &usecase.SessionOutput{Profile: profile}, nil
}

// SendPasswordReset generates a password-reset link for the email.
// Unknown emails still return an error from the provider; the handler
// flattens it so the endpoint does not leak which emails exist.
func (srv *authService) SendPasswordReset(ctx context.Context, email string) (string, error) {
	if !validation.Email(email) {
		return "", domainerrors.ErrValidationFailed.WrapMessage("a valid email is required")
	}

	link, err := srv.identity.PasswordResetLink(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("failed to generate password reset link", slog.Any("error", err))

		return "", domainerrors.ErrIdentityProviderFailed
	}

	return link, nil
}

func (srv *authService) verify(ctx context.Context, idToken string) (*service.Identity, error) {
	identity, err := srv.identity.VerifyIDToken(ctx, idToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidIDToken) {
			return nil, domainerrors.ErrInvalidIDToken
		}

		return nil, errors.Wrap(err, "failed to verify id token")
	}

	return identity, nil
}

// createProfile stores the profile document for a verified identity.
// Creation is keyed by uid, so a concurrent double submit loses on the
// document create and surfaces as a role conflict.
func (srv *authService) createProfile(
	ctx context.Context,
	identity *service.Identity,
	name, contactNumber string,
	role entity.Role,
) (*entity.Profile, error) {
	if existing, err := srv.profileRepo.FindByUID(ctx, identity.UID); err == nil {
		if existing.Role != role {
			return nil, domainerrors.ErrRoleAlreadyChosen
		}

		return existing, nil
	} else if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to check existing profile")
	}

	now := time.Now().UTC()
	profile := &entity.Profile{
		UID:           identity.UID,
		Name:          name,
		Email:         identity.Email,
		Role:          role,
		ContactNumber: contactNumber,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := srv.profileRepo.Create(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to create profile")
	}

	return profile, nil
}
