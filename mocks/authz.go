// Copyright (c) EVAuth
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"

	"github.com/evauth/akeys/pkg/authz"
	"github.com/stretchr/testify/mock"
)

var _ authz.Authorization = (*Authorization)(nil)

type Authorization struct {
	mock.Mock
}

func (m *Authorization) Authorize(ctx context.Context, key string) error {
	ret := m.Called(ctx, key)

	return ret.Error(0)
}

func (m *Authorization) IssueKey(ctx context.Context, akey string) (string, error) {
	ret := m.Called(ctx, akey)

	return ret.String(0), ret.Error(1)
}
