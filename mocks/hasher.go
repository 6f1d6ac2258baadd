// Copyright (c) EVAuth
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"github.com/evauth/akeys"
	svcerr "github.com/evauth/akeys/pkg/errors/service"
	"github.com/stretchr/testify/mock"
)

var _ akeys.Hasher = (*Hasher)(nil)

// Hasher is a pass-through hasher for test purposes: Hash returns the
// secret unchanged and Compare succeeds when plain equals hashed.
type Hasher struct {
	mock.Mock
}

func (m *Hasher) Hash(pwd string) (string, error) {
	ret := m.Called(pwd)

	return pwd, ret.Error(1)
}

func (m *Hasher) Compare(plain, hashed string) error {
	ret := m.Called(plain, hashed)

	if plain != hashed {
		return svcerr.ErrLogin
	}

	return ret.Error(0)
}
