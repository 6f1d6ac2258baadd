// Copyright (c) EVAuth
// SPDX-License-Identifier: Apache-2.0

package akeys

import (
	"context"
	"time"
)

// Account represents a single registered akey together with its credential
// material. An account is created exactly once at registration and is never
// updated or removed afterwards.
type Account struct {
	AKey         string    `bson:"akey"`
	PasswordHash string    `bson:"password_hash"`
	Token        string    `bson:"token"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

// AccountRepository specifies an account persistence API. The backing store
// must enforce akey uniqueness; Save reports a conflict when a concurrent
// registration wins the race.
type AccountRepository interface {
	// Save persists the account. A conflict error is returned when an
	// account with the same akey already exists.
	Save(ctx context.Context, acc Account) error

	// RetrieveByAKey retrieves the account having the provided akey.
	RetrieveByAKey(ctx context.Context, akey string) (Account, error)
}

// Hasher specifies an API for generating and verifying one-way hashes of
// account passwords.
type Hasher interface {
	// Hash generates the hashed password.
	Hash(pwd string) (string, error)

	// Compare compares plain password with the hashed one. A non-nil error is
	// returned to indicate a mismatch.
	Compare(plain, hashed string) error
}
