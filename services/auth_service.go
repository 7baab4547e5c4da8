package services

import (
	"RestoFinder/models"
	"RestoFinder/utils"
	"context"
	"net/mail"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// IdentityProvider issues and verifies the bearer tokens presented by users.
type IdentityProvider interface {
	// VerifyToken returns the user id the token belongs to.
	VerifyToken(ctx context.Context, token string) (string, error)
	CreateUser(ctx context.Context, req models.SignupRequest) (*models.User, error)
}

// PasswordAuthenticator is implemented by providers that can exchange
// credentials for a token on the server side.
type PasswordAuthenticator interface {
	SignIn(ctx context.Context, email, password string) (token string, user *models.User, err error)
}

// AuthService is the gate in front of every favorites operation.
type AuthService struct {
	Provider IdentityProvider
	Logger   *zap.SugaredLogger
}

func NewAuthService(provider IdentityProvider, logger *zap.SugaredLogger) *AuthService {
	return &AuthService{
		Provider: provider,
		Logger:   logger,
	}
}

// ParseBearer extracts the token from an Authorization header value.
func ParseBearer(header string) (string, error) {
	if header == "" {
		return "", utils.Unauthenticated("Missing authorization header")
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", utils.Unauthenticated("Invalid authorization format, use 'Bearer <token>'")
	}
	return parts[1], nil
}

// Resolve maps a bearer token to a user id. It never touches the key-value store.
func (a *AuthService) Resolve(ctx context.Context, token string) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", utils.Unauthenticated("Unauthorized")
	}

	userID, err := a.Provider.VerifyToken(ctx, token)
	if err != nil || userID == "" {
		a.Logger.Debugw("Rejected bearer token", "error", err)
		return "", utils.Unauthenticated("Unauthorized")
	}
	return userID, nil
}

// ResolveHeader is Resolve over a raw Authorization header.
func (a *AuthService) ResolveHeader(ctx context.Context, header string) (string, error) {
	token, err := ParseBearer(header)
	if err != nil {
		return "", err
	}
	return a.Resolve(ctx, token)
}

func (a *AuthService) Signup(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Name = strings.TrimSpace(req.Name)

	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, utils.ValidationFailed("email, password and name are required")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, utils.ValidationFailed("email is not a valid address")
	}

	user, err := a.Provider.CreateUser(ctx, req)
	if err != nil {
		a.Logger.Warnw("Sign up rejected", "email", req.Email, "error", err)
		return nil, asProviderRejection(err)
	}

	a.Logger.Infow("User signed up", "userId", user.ID)
	return user, nil
}

// SignIn is available only when the provider implements PasswordAuthenticator.
func (a *AuthService) SignIn(ctx context.Context, req models.LoginRequest) (string, *models.User, error) {
	authenticator, ok := a.Provider.(PasswordAuthenticator)
	if !ok {
		return "", nil, utils.NotFound("Password sign-in is handled by the identity provider")
	}
	if req.Email == "" || req.Password == "" {
		return "", nil, utils.ValidationFailed("email and password are required")
	}

	token, user, err := authenticator.SignIn(ctx, strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// SupportsSignIn reports whether SignIn can succeed with the configured provider.
func (a *AuthService) SupportsSignIn() bool {
	_, ok := a.Provider.(PasswordAuthenticator)
	return ok
}

// Storage failures keep their classification; anything else is a provider refusal.
func asProviderRejection(err error) error {
	if errors.Is(err, utils.ErrStorageUnavailable) || errors.Is(err, utils.ErrProviderRejected) {
		return err
	}
	return utils.ProviderRejected(err.Error(), err)
}
