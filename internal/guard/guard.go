// Package guard decides where a user should land given their session.
package guard

import (
	"context"
	"errors"
	"fmt"

	"github.com/platanus-hack-25/lumera-cli/internal/api"
)

// ErrLoginRequired is returned by RequireAuth.
var ErrLoginRequired = errors.New("not logged in; run `lumera login` first")

// Destination is where the user is sent.
type Destination string

const (
	Login      Destination = "/login"
	Onboarding Destination = "/onboarding"
	Home       Destination = "/"
)

// Session is the part of the auth session the guard reads.
type Session interface {
	IsAuthenticated() bool
	User() *api.User
}

// ProfileChecker reports whether a user has a student profile.
type ProfileChecker interface {
	HasProfile(ctx context.Context, userID int64) (bool, error)
}

// Resolve returns Login without a token, Onboarding when the signed-in
// user has no profile yet and Home otherwise. Failing to check the profile
// is an error, never Onboarding.
func Resolve(ctx context.Context, s Session, profiles ProfileChecker) (Destination, error) {
	u := s.User()
	if !s.IsAuthenticated() || u == nil {
		return Login, nil
	}
	ok, err := profiles.HasProfile(ctx, u.ID)
	if err != nil {
		return "", fmt.Errorf("check profile: %w", err)
	}
	if !ok {
		return Onboarding, nil
	}
	return Home, nil
}

// RequireAuth returns ErrLoginRequired unless s holds a token.
func RequireAuth(s Session) error {
	if !s.IsAuthenticated() || s.User() == nil {
		return ErrLoginRequired
	}
	return nil
}
