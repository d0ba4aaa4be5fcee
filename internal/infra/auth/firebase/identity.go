// Package firebase implements the identity provider contract on Firebase
// Authentication. Credentials and session tokens live on the Firebase
// side; this package only creates accounts, verifies ID tokens, and
// deletes accounts the admin flow created.
package firebase

import (
	"context"

	"supermall/config"
	domainerrors "supermall/internal/domain/errors"
	"supermall/internal/domain/service"
	"supermall/internal/errors"

	fb "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
}

type identityProvider struct {
	client *auth.Client
}

// NewIdentityProvider builds the Firebase app and returns its auth client
// wrapped as a service.IdentityProvider.
func NewIdentityProvider(params Params) (service.IdentityProvider, error) {
	ctx := context.Background()

	var opts []option.ClientOption
	if path := params.Config.Firebase.CredentialsPath; path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}

	app, err := fb.NewApp(ctx, &fb.Config{ProjectID: params.Config.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase auth client")
	}

	return &identityProvider{client: client}, nil
}

// CreateAccount registers a new email/password account with Firebase.
func (p *identityProvider) CreateAccount(ctx context.Context, email, password string) (*service.Identity, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password)

	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return nil, domainerrors.ErrEmailAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create Firebase account")
	}

	return toIdentity(record.UID, record.Email, record.DisplayName), nil
}

// VerifyIDToken validates a client-obtained ID token. Any verification
// failure maps to service.ErrInvalidIDToken so callers need not know
// Firebase's error taxonomy.
func (p *identityProvider) VerifyIDToken(ctx context.Context, idToken string) (*service.Identity, error) {
	token, err := p.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidIDToken, err.Error())
	}

	email, _ := token.Claims["email"].(string)
	name, _ := token.Claims["name"].(string)

	return toIdentity(token.UID, email, name), nil
}

// DeleteAccount removes an account from Firebase. Deleting an account
// that is already gone is treated as success.
func (p *identityProvider) DeleteAccount(ctx context.Context, uid string) error {
	if err := p.client.DeleteUser(ctx, uid); err != nil {
		if auth.IsUserNotFound(err) {
			return nil
		}

		return errors.Wrap(err, "failed to delete Firebase account")
	}

	return nil
}

// PasswordResetLink generates a password-reset link for the email.
func (p *identityProvider) PasswordResetLink(ctx context.Context, email string) (string, error) {
	link, err := p.client.PasswordResetLink(ctx, email)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate password reset link")
	}

	return link, nil
}

func toIdentity(uid, email, name string) *service.Identity {
	return &service.Identity{
		UID:   uid,
		Email: email,
		Name:  name,
	}
}
