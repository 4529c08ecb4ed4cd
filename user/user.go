package user

import (
	"strings"

	"github.com/SwapnilRC1995/movies-api-app/errs"
)

var (
	ErrNotFound        = errs.Errorf(errs.ENOTFOUND, "user: not found")
	ErrInvalidName     = errs.Errorf(errs.EINVALID, "user: invalid name")
	ErrInvalidEmail    = errs.Errorf(errs.EINVALID, "user: invalid email")
	ErrInvalidPassword = errs.Errorf(errs.EINVALID, "user: invalid password")
)

// User is a registered account. Password holds a signed credential token
// wrapping the identity claims, not a hash; APIKey is the opaque per-user
// credential accepted by the movie API.
type User struct {
	ID       string `json:"_id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
	APIKey   string `json:"apiKey"`
}

func (u User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return ErrInvalidName
	}
	if strings.TrimSpace(u.Email) == "" {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(u.Password) == "" {
		return ErrInvalidPassword
	}
	return nil
}
