package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/SwapnilRC1995/movies-api-app/pkg/token"
	"github.com/SwapnilRC1995/movies-api-app/user"
)

var (
	ErrPasswordMismatch   = errors.New("password and confirmation do not match")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("stored credential token failed verification")
	ErrUnknownAPIKey      = errors.New("unknown api key")
)

type Service interface {
	Register(ctx context.Context, name, email, password, confirmPassword string) (user.User, error)
	Login(ctx context.Context, email, password string) (user.User, error)
	VerifyAPIKey(ctx context.Context, key string) (user.User, error)
}

// UserService is the slice of the user domain the auth flows need.
type UserService interface {
	AddUser(ctx context.Context, u user.User) (user.User, error)
	GetUserByEmail(ctx context.Context, email string) (user.User, error)
	GetUserByAPIKey(ctx context.Context, key string) (user.User, error)
}

// TokenProvider wraps credentials into a signed token and recovers them.
// The stored password field is such a token, so login can recover the
// plaintext claim for comparison.
type TokenProvider interface {
	Sign(c token.Credentials) (string, error)
	Verify(signed string) (token.Credentials, error)
}

type Usecase struct {
	users  UserService
	tokens TokenProvider

	// newAPIKey generates the opaque per-user key issued at registration.
	newAPIKey func() string
}

func NewUsecase(users UserService, tokens TokenProvider) *Usecase {
	return &Usecase{
		users:     users,
		tokens:    tokens,
		newAPIKey: uuid.NewString,
	}
}

// Register signs the submitted credentials with the server secret, stores
// the signed token as the user's password field, issues a fresh API key
// and persists the user. A confirmation mismatch never reaches storage.
func (uc *Usecase) Register(ctx context.Context, name, email, password, confirmPassword string) (user.User, error) {
	if password != confirmPassword {
		return user.User{}, ErrPasswordMismatch
	}

	signed, err := uc.tokens.Sign(token.Credentials{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return user.User{}, err
	}

	return uc.users.AddUser(ctx, user.User{
		Name:     name,
		Email:    email,
		Password: signed,
		APIKey:   uc.newAPIKey(),
	})
}

// Login verifies the stored credential token and compares its password
// claim with the submitted plaintext.
func (uc *Usecase) Login(ctx context.Context, email, password string) (user.User, error) {
	u, err := uc.users.GetUserByEmail(ctx, email)
	if err != nil {
		return user.User{}, err
	}

	creds, err := uc.tokens.Verify(u.Password)
	if err != nil {
		return user.User{}, ErrTokenInvalid
	}

	if creds.Password != password {
		return user.User{}, ErrInvalidCredentials
	}

	return u, nil
}

func (uc *Usecase) VerifyAPIKey(ctx context.Context, key string) (user.User, error) {
	if key == "" {
		return user.User{}, ErrUnknownAPIKey
	}
	u, err := uc.users.GetUserByAPIKey(ctx, key)
	if err != nil {
		return user.User{}, ErrUnknownAPIKey
	}
	return u, nil
}
