// Copyright (c) EVAuth
// SPDX-License-Identifier: Apache-2.0

// Package akey provides an akey identity provider.
package akey

import (
	"crypto/rand"

	"github.com/evauth/akeys"
	"github.com/evauth/akeys/pkg/errors"
)

// Length is the fixed length of every generated akey.
const Length = 6

// Charset holds the 64 characters an akey may consist of, which keeps the
// random byte to character mapping uniform.
const Charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_-"

// ErrGeneratingID indicates error in generating an akey.
var ErrGeneratingID = errors.New("failed to generate akey")

var _ akeys.IDProvider = (*akeyProvider)(nil)

type akeyProvider struct{}

// New instantiates an akey provider.
func New() akeys.IDProvider {
	return &akeyProvider{}
}

func (ap *akeyProvider) ID() (string, error) {
	b := make([]byte, Length)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(ErrGeneratingID, err)
	}

	for i := range b {
		b[i] = Charset[int(b[i])&(len(Charset)-1)]
	}

	return string(b), nil
}
