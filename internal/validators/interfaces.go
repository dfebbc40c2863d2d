// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the store:
// account credentials in [UserValidator], resource inputs and partial
// updates in [ResourceValidator].
package validators

import "context"

// Validator validates obj. When fields are given only those fields are
// checked; an empty list checks everything that applies to obj's type.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
