// Copyright (c) EVAuth
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"

	"github.com/evauth/akeys"
	"github.com/stretchr/testify/mock"
)

var _ akeys.AccountRepository = (*AccountRepository)(nil)

type AccountRepository struct {
	mock.Mock
}

func (m *AccountRepository) Save(ctx context.Context, account akeys.Account) error {
	ret := m.Called(ctx, account)

	return ret.Error(0)
}

func (m *AccountRepository) RetrieveByAKey(ctx context.Context, akey string) (akeys.Account, error) {
	ret := m.Called(ctx, akey)

	return ret.Get(0).(akeys.Account), ret.Error(1)
}
