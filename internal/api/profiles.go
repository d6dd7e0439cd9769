package api

import (
	"context"
	"errors"
	"net/http"
)

const profileNotFound = "Profile not found"

// Profile fetches the profile of userID. A missing profile is KindNotFound.
func (c *Client) Profile(ctx context.Context, userID int64) (*StudentProfile, error) {
	var out StudentProfile
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     pathf("/api/profiles/%s", userID),
		fallback: "Failed to get profile",
		messages: map[int]string{http.StatusNotFound: profileNotFound},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProfile creates a profile. An existing one is KindConflict.
func (c *Client) CreateProfile(ctx context.Context, req CreateProfileRequest) (*StudentProfile, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	if req.ProfileData == nil {
		req.ProfileData = ProfileData{}
	}
	var out StudentProfile
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/api/profiles",
		body:     req,
		fallback: "Failed to create profile",
		messages: map[int]string{http.StatusConflict: "Profile already exists"},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile patches the profile of userID. The backend replaces
// profile_data whole when it is present, so callers send the merged
// object (see package profile).
func (c *Client) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*StudentProfile, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	var out StudentProfile
	err := c.do(ctx, call{
		method:   http.MethodPatch,
		path:     pathf("/api/profiles/%s", userID),
		body:     req,
		fallback: "Failed to update profile",
		messages: map[int]string{http.StatusNotFound: profileNotFound},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// HasProfile reports whether userID has a profile. Only a 404 answers
// false; every other failure is returned.
func (c *Client) HasProfile(ctx context.Context, userID int64) (bool, error) {
	_, err := c.Profile(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
