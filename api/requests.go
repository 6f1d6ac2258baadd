// Copyright (c) EVAuth
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"github.com/evauth/akeys"
	"github.com/evauth/akeys/pkg/apiutil"
)

type allocateReq struct {
	key string
}

func (req allocateReq) validate() error {
	if req.key == "" {
		return apiutil.ErrBearerKey
	}

	return nil
}

type registerReq struct {
	key      string
	akey     string
	Password string `json:"password"`
}

func (req registerReq) validate() error {
	if req.key == "" {
		return apiutil.ErrBearerKey
	}
	if req.akey == "" {
		return apiutil.ErrMissingAKey
	}
	if req.Password == "" {
		return apiutil.ErrMissingPass
	}
	if len(req.Password) < akeys.MinPasswordLen {
		return apiutil.ErrPasswordFormat
	}

	return nil
}

type loginReq struct {
	key      string
	akey     string
	Password string `json:"password"`
}

func (req loginReq) validate() error {
	if req.key == "" {
		return apiutil.ErrBearerKey
	}
	if req.akey == "" {
		return apiutil.ErrMissingAKey
	}
	if req.Password == "" {
		return apiutil.ErrMissingPass
	}
	if len(req.Password) < akeys.MinPasswordLen {
		return apiutil.ErrPasswordFormat
	}

	return nil
}

type verifyReq struct {
	key   string
	akey  string
	token string
}

func (req verifyReq) validate() error {
	if req.key == "" {
		return apiutil.ErrBearerKey
	}
	if req.akey == "" {
		return apiutil.ErrMissingAKey
	}

	return nil
}
