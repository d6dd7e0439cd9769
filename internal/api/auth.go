package api

import (
	"context"
	"net/http"
)

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	var out AuthResponse
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/api/auth/login",
		body:     req,
		fallback: "Invalid credentials",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and returns its first token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	var out AuthResponse
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/api/auth/register",
		body:     req,
		fallback: "Registration failed",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
