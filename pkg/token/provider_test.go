package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SwapnilRC1995/movies-api-app/pkg/token"
)

func TestProvider_SignAndVerify(t *testing.T) {
	p := token.NewProvider("spooky secret")

	creds := token.Credentials{
		Name:     "Swapnil",
		Email:    "swapnil@mail.com",
		Password: "hunter2",
	}

	signed, err := p.Sign(creds)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	decoded, err := p.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, creds, decoded)
}

func TestProvider_Verify_WrongSecret(t *testing.T) {
	signed, err := token.NewProvider("secret-a").Sign(token.Credentials{
		Email:    "a@mail.com",
		Password: "pass",
	})
	require.NoError(t, err)

	_, err = token.NewProvider("secret-b").Verify(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestProvider_Verify_Garbage(t *testing.T) {
	_, err := token.NewProvider("secret").Verify("not-a-token")
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}
