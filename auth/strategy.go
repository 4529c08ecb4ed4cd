package auth

import (
	"context"

	"github.com/SwapnilRC1995/movies-api-app/pkg/session"
	"github.com/SwapnilRC1995/movies-api-app/user"
)

// Result is the outcome of one capability check. Routes that accept more
// than one credential compose strategies first-match-wins.
type Result struct {
	User          user.User
	Authenticated bool
}

// Strategy resolves one kind of request credential to a current user.
// The credential is whatever string the transport extracted for it: a
// session cookie value or an apiKey query parameter.
type Strategy interface {
	Authenticate(ctx context.Context, credential string) Result
}

// SessionStrategy resolves a session cookie against the session store.
// The session record itself carries the authenticated identity.
type SessionStrategy struct {
	Sessions session.Store
}

func (s *SessionStrategy) Authenticate(ctx context.Context, sessionID string) Result {
	if sessionID == "" {
		return Result{}
	}
	sess, ok, err := s.Sessions.Get(ctx, sessionID)
	if err != nil || !ok || !sess.Authenticated {
		return Result{}
	}
	return Result{
		User:          user.User{ID: sess.UserID, Email: sess.Email},
		Authenticated: true,
	}
}

// APIKeyStrategy resolves an apiKey query parameter via the user repository.
type APIKeyStrategy struct {
	Auth Service
}

func (s *APIKeyStrategy) Authenticate(ctx context.Context, key string) Result {
	if key == "" {
		return Result{}
	}
	u, err := s.Auth.VerifyAPIKey(ctx, key)
	if err != nil {
		return Result{}
	}
	return Result{User: u, Authenticated: true}
}

// FirstMatch runs checks in order and returns the first authenticated
// result, or an unauthenticated Result when none match.
func FirstMatch(results ...Result) Result {
	for _, r := range results {
		if r.Authenticated {
			return r
		}
	}
	return Result{}
}
