// Copyright (c) EVAuth
// SPDX-License-Identifier: Apache-2.0

package apiutil

import "github.com/evauth/akeys/pkg/errors"

// Errors defined in this file are used by the LoggingErrorEncoder decorator
// to distinguish and log API request validation errors and avoid that service
// errors are logged twice.
var (
	// ErrValidation indicates that an error was returned by the API.
	ErrValidation = errors.New("something went wrong with the request")

	// ErrBearerKey indicates missing or invalid bearer caller API key.
	ErrBearerKey = errors.New("missing or invalid bearer api key")

	// ErrMissingAKey indicates missing akey path parameter.
	ErrMissingAKey = errors.New("missing akey")

	// ErrMissingPass indicates missing password.
	ErrMissingPass = errors.New("missing password")

	// ErrPasswordFormat indicates a password shorter than the required minimum.
	ErrPasswordFormat = errors.New("password does not meet the minimum length")

	// ErrUnsupportedContentType indicates invalid content type.
	ErrUnsupportedContentType = errors.New("invalid content type")
)
