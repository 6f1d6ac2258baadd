// Copyright (c) EVAuth
// SPDX-License-Identifier: Apache-2.0

// Package secret provides an opaque token provider.
package secret

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/evauth/akeys"
	"github.com/evauth/akeys/pkg/errors"
)

// TokenBytes is the entropy of every generated token. The hex encoded token
// is twice as long.
const TokenBytes = 10

// ErrGeneratingToken indicates error in generating a token.
var ErrGeneratingToken = errors.New("failed to generate token")

var _ akeys.IDProvider = (*secretProvider)(nil)

type secretProvider struct{}

// New instantiates a hex token provider.
func New() akeys.IDProvider {
	return &secretProvider{}
}

func (sp *secretProvider) ID() (string, error) {
	b := make([]byte, TokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(ErrGeneratingToken, err)
	}

	return hex.EncodeToString(b), nil
}
