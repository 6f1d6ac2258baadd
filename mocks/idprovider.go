// Copyright (c) EVAuth
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"github.com/evauth/akeys"
	"github.com/stretchr/testify/mock"
)

var _ akeys.IDProvider = (*IDProvider)(nil)

type IDProvider struct {
	mock.Mock
}

func (m *IDProvider) ID() (string, error) {
	ret := m.Called()

	return ret.String(0), ret.Error(1)
}
