// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the API hub REST interface.
//
// [APIClient] hides the HTTP details from the command-line client: JSON
// bodies, the bearer Authorization header and the mapping of error
// responses to the sentinel errors of errors.go, so callers can use
// [errors.Is] (e.g. [ErrTokenRevoked] for a 403 with reason "revoked").
package adapter

import (
	"context"
	"net/url"

	"github.com/MKhiriev/go-api-hub/models"
)

// APIClient talks to a running API hub server.
type APIClient interface {
	// SetToken stores the bearer token attached to authenticated requests.
	// Signup, Login and Rotate call it on success.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	Me(ctx context.Context) (models.UserView, error)
	Logout(ctx context.Context) error

	// Rotate exchanges the stored token for a new one. The old token is
	// revoked unless req.RevokeOld is false.
	Rotate(ctx context.Context, req models.RotateRequest) (models.RotateResponse, error)
	ListTokens(ctx context.Context) (models.TokenListResponse, error)
	Revoke(ctx context.Context, token string) error

	// RevokeAll revokes every active token of the caller, the stored one
	// included, and returns how many were revoked.
	RevokeAll(ctx context.Context) (int64, error)

	ListTodos(ctx context.Context, query url.Values) (models.Page[models.Todo], error)
	CreateTodo(ctx context.Context, input models.TodoInput) (models.Todo, error)
	CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error)
	Shorten(ctx context.Context, input models.URLInput) (models.URL, error)

	// Version returns the version string reported by the server.
	Version(ctx context.Context) (string, error)
}
