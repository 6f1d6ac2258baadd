// Copyright (c) EVAuth
// SPDX-License-Identifier: Apache-2.0

package service

import "github.com/evauth/akeys/pkg/errors"

// Wrapper for Service errors.
var (
	// ErrAuthentication indicates that the presented token does not match
	// the token owned by the akey.
	ErrAuthentication = errors.New("failed to authenticate token")

	// ErrMissingAuthentication indicates that no token was presented for
	// verification.
	ErrMissingAuthentication = errors.New("missing authentication token")

	// ErrAuthorization indicates that the external authorization service
	// rejected the caller API key.
	ErrAuthorization = errors.New("failed to perform authorization over the entity")

	// ErrMissingAPIKey indicates that no caller API key was presented.
	ErrMissingAPIKey = errors.New("missing caller api key")

	// ErrUpstream indicates that the external authorization service is
	// unreachable or failing.
	ErrUpstream = errors.New("authorization service unavailable")

	// ErrAPIKeyIssue indicates that the account was created but minting the
	// scoped API key failed.
	ErrAPIKeyIssue = errors.New("account created but api key issuance failed")

	// ErrPasswordFormat indicates that the password is missing or shorter
	// than the required minimum.
	ErrPasswordFormat = errors.New("failed to validate password: minimum length is 6")

	// ErrLogin indicates wrong login credentials.
	ErrLogin = errors.New("invalid akey or password")

	// ErrNotFound indicates a non-existent entity request.
	ErrNotFound = errors.New("entity not found")

	// ErrConflict indicates that entity already exists.
	ErrConflict = errors.New("entity already exists")

	// ErrCreateEntity indicates error in creating entity or entities.
	ErrCreateEntity = errors.New("failed to create entity in the db")

	// ErrViewEntity indicates error in viewing entity or entities.
	ErrViewEntity = errors.New("view entity failed")

	// ErrUniqueID indicates an error in generating a unique identifier.
	ErrUniqueID = errors.New("failed to generate unique identifier")
)
