// Copyright (c) EVAuth
// SPDX-License-Identifier: Apache-2.0

package akey_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/evauth/akeys/pkg/akey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	idp := akey.New()

	for i := 0; i < 100; i++ {
		id, err := idp.ID()
		require.NoError(t, err)
		assert.Len(t, id, akey.Length)
		for _, c := range id {
			assert.True(t, strings.ContainsRune(akey.Charset, c), fmt.Sprintf("character %q outside charset", c))
		}
	}
}

func TestIDDistinctness(t *testing.T) {
	idp := akey.New()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := idp.ID()
		require.NoError(t, err)
		assert.False(t, seen[id], fmt.Sprintf("duplicate akey %q after %d draws", id, i))
		seen[id] = true
	}
}
