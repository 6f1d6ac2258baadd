// Copyright (c) EVAuth
// SPDX-License-Identifier: Apache-2.0

package secret_test

import (
	"encoding/hex"
	"testing"

	"github.com/evauth/akeys/pkg/secret"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	idp := secret.New()

	token, err := idp.ID()
	require.NoError(t, err)
	assert.Len(t, token, 2*secret.TokenBytes)

	_, err = hex.DecodeString(token)
	assert.NoError(t, err, "token must be lowercase hex")
}

func TestIDUnique(t *testing.T) {
	idp := secret.New()

	first, err := idp.ID()
	require.NoError(t, err)
	second, err := idp.ID()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
