// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks credential drafts, submission requests and
// authorization records before they reach the encryption adapter or the
// ledger.
//
// Validators accept an optional list of field names that restricts which
// rules run, so callers can validate a single attribute in isolation.
package validators

import "context"

// Validator validates an arbitrary domain value, optionally only the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
