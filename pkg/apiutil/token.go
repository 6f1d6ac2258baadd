// Copyright (c) EVAuth
// SPDX-License-Identifier: Apache-2.0

package apiutil

import (
	"net/http"
	"strings"
)

// BearerPrefix represents the token prefix for Bearer authentication scheme.
const BearerPrefix = "Bearer "

// AuthenticationHeader carries the account token presented for verification.
const AuthenticationHeader = "Authentication"

// ExtractBearerKey returns the value of the bearer caller API key. If there
// is no bearer key - an empty value is returned.
func ExtractBearerKey(r *http.Request) string {
	key := r.Header.Get("Authorization")

	if !strings.HasPrefix(key, BearerPrefix) {
		return ""
	}

	return strings.TrimPrefix(key, BearerPrefix)
}

// ExtractAuthenticationToken returns the account token presented for
// verification. If the header is absent - an empty value is returned.
func ExtractAuthenticationToken(r *http.Request) string {
	return r.Header.Get(AuthenticationHeader)
}
