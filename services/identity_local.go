package services

import (
	"RestoFinder/models"
	"RestoFinder/store"
	"RestoFinder/utils"
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const (
	// AccountKeyPrefix namespaces local accounts in the key-value store.
	AccountKeyPrefix = "account:"

	tokenIssuer       = "restofinder"
	minPasswordLength = 6
)

func accountKey(email string) string {
	return AccountKeyPrefix + strings.ToLower(email)
}

type localClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// LocalIdentityProvider keeps accounts in the key-value store and signs HS256 tokens.
type LocalIdentityProvider struct {
	Store  store.KeyValueStore
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewLocalIdentityProvider(kv store.KeyValueStore, secret string, ttl time.Duration) (*LocalIdentityProvider, error) {
	if secret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &LocalIdentityProvider{
		Store:  kv,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (p *LocalIdentityProvider) CreateUser(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	if len(req.Password) < minPasswordLength {
		return nil, utils.ProviderRejected("password must be at least 6 characters", nil)
	}

	var existing models.Account
	found, err := store.GetJSON(ctx, p.Store, accountKey(req.Email), &existing)
	if err != nil {
		return nil, utils.StorageUnavailable(err)
	}
	if found {
		return nil, utils.ProviderRejected("A user with this email address has already been registered", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	account := models.Account{
		ID:           uuid.New().String(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hashedPassword),
		CreatedAt:    p.now().UTC(),
	}
	if err := store.SetJSON(ctx, p.Store, accountKey(req.Email), account); err != nil {
		return nil, utils.StorageUnavailable(err)
	}

	user := account.User()
	return &user, nil
}

// SignIn checks the password and issues a token for the account.
func (p *LocalIdentityProvider) SignIn(ctx context.Context, email, password string) (string, *models.User, error) {
	var account models.Account
	found, err := store.GetJSON(ctx, p.Store, accountKey(email), &account)
	if err != nil {
		return "", nil, utils.StorageUnavailable(err)
	}
	if !found {
		return "", nil, utils.Unauthenticated("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", nil, utils.Unauthenticated("Invalid email or password")
	}

	token, err := p.GenerateToken(account)
	if err != nil {
		return "", nil, err
	}
	user := account.User()
	return token, &user, nil
}

func (p *LocalIdentityProvider) GenerateToken(account models.Account) (string, error) {
	if account.ID == "" {
		return "", errors.New("empty account id passed to GenerateToken")
	}

	now := p.now()
	claims := localClaims{
		Email: account.Email,
		Name:  account.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

func (p *LocalIdentityProvider) VerifyToken(ctx context.Context, tokenString string) (string, error) {
	claims := &localClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}
	if claims.Subject == "" {
		return "", errors.New("invalid token claims")
	}
	return claims.Subject, nil
}

var (
	_ IdentityProvider      = (*LocalIdentityProvider)(nil)
	_ PasswordAuthenticator = (*LocalIdentityProvider)(nil)
)
