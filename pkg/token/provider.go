// Package token signs and verifies the credential tokens stored with each
// registered user. The stored password field is not a hash: it is an HS256
// token wrapping the identity claims, and login recovers the password claim
// to compare against the submitted plaintext.
package token

import (
	"errors"

	"github.com/golang-jwt/jwt"
)

var ErrInvalidToken = errors.New("invalid credential token")

// Credentials are the claims embedded in a stored credential token.
type Credentials struct {
	Name     string
	Email    string
	Password string
}

type Provider struct {
	Secret string
}

func NewProvider(secret string) *Provider {
	return &Provider{Secret: secret}
}

func (p *Provider) Sign(c Credentials) (string, error) {
	claims := jwt.MapClaims{
		"name":     c.Name,
		"email":    c.Email,
		"password": c.Password,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(p.Secret))
}

func (p *Provider) Verify(signed string) (Credentials, error) {
	parsed, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(p.Secret), nil
	})
	if err != nil || !parsed.Valid {
		return Credentials{}, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Credentials{}, ErrInvalidToken
	}

	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	password, ok := claims["password"].(string)
	if !ok {
		return Credentials{}, ErrInvalidToken
	}

	return Credentials{
		Name:     name,
		Email:    email,
		Password: password,
	}, nil
}
