// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Machine-stable reasons reported with authentication failures.
const (
	reasonNoToken       = "no token"
	reasonInvalidFormat = "invalid format"
	reasonRevoked       = "revoked"
	reasonInvalid       = "invalid"
)

// Sentinel errors of the transport layer. Callers can match against them
// with [errors.Is].
var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidID is returned when a path id is not a positive integer.
	ErrInvalidID = errors.New("invalid id")

	// ErrInvalidQuery is returned when paging parameters are malformed.
	ErrInvalidQuery = errors.New("invalid query parameter")

	// ErrTooManyRequests is reported when a client exceeds the signup/login
	// rate limit.
	ErrTooManyRequests = errors.New("too many requests")
)
