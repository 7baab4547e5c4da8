package services

import (
	"RestoFinder/models"
	"context"
	"time"

	"firebase.google.com/go/auth"
	"github.com/pkg/errors"
)

// FirebaseIdentityProvider delegates identity to Firebase Authentication.
type FirebaseIdentityProvider struct {
	AuthClient *auth.Client
}

func NewFirebaseIdentityProvider(client *auth.Client) *FirebaseIdentityProvider {
	return &FirebaseIdentityProvider{AuthClient: client}
}

func (p *FirebaseIdentityProvider) VerifyToken(ctx context.Context, token string) (string, error) {
	decoded, err := p.AuthClient.VerifyIDToken(ctx, token)
	if err != nil {
		return "", errors.Wrap(err, "verify id token")
	}
	return decoded.UID, nil
}

// CreateUser registers the account with the email already confirmed; no email
// server is configured for the verification flow.
func (p *FirebaseIdentityProvider) CreateUser(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	params := (&auth.UserToCreate{}).
		Email(req.Email).
		Password(req.Password).
		DisplayName(req.Name).
		EmailVerified(true)

	record, err := p.AuthClient.CreateUser(ctx, params)
	if err != nil {
		return nil, err
	}

	createdAt := time.Now().UTC()
	if record.UserMetadata != nil && record.UserMetadata.CreationTimestamp > 0 {
		createdAt = time.UnixMilli(record.UserMetadata.CreationTimestamp).UTC()
	}

	return &models.User{
		ID:        record.UID,
		Email:     record.Email,
		Name:      record.DisplayName,
		CreatedAt: createdAt,
	}, nil
}

var _ IdentityProvider = (*FirebaseIdentityProvider)(nil)
