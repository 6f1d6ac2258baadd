// Copyright (c) EVAuth
// SPDX-License-Identifier: Apache-2.0

// Package authz contains the authorization gate abstraction. Every externally
// reachable operation delegates caller API key validation to an external
// authorization service before any domain logic runs.
package authz

import "context"

// Authorization specifies the external authorization service API.
type Authorization interface {
	// Authorize validates the caller API key. A non-nil error means the key
	// was rejected or the service could not be reached.
	Authorize(ctx context.Context, key string) error

	// IssueKey mints a new API key scoped to the provided akey.
	IssueKey(ctx context.Context, akey string) (string, error)
}
