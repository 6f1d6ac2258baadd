// Copyright (c) EVAuth
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"net/http"

	"github.com/evauth/akeys"
)

var (
	_ akeys.Response = (*allocateRes)(nil)
	_ akeys.Response = (*registerRes)(nil)
	_ akeys.Response = (*loginRes)(nil)
	_ akeys.Response = (*verifyRes)(nil)
)

type allocateRes struct {
	AKey string `json:"akey"`
}

func (res allocateRes) Code() int {
	return http.StatusOK
}

func (res allocateRes) Headers() map[string]string {
	return map[string]string{}
}

func (res allocateRes) Empty() bool {
	return false
}

type registerRes struct {
	Token string `json:"token"`
	Key   string `json:"key,omitempty"`
}

func (res registerRes) Code() int {
	return http.StatusCreated
}

func (res registerRes) Headers() map[string]string {
	return map[string]string{}
}

func (res registerRes) Empty() bool {
	return false
}

type loginRes struct {
	Token string `json:"token"`
}

func (res loginRes) Code() int {
	return http.StatusOK
}

func (res loginRes) Headers() map[string]string {
	return map[string]string{}
}

func (res loginRes) Empty() bool {
	return false
}

type verifyRes struct {
	Verified bool `json:"verified"`
}

func (res verifyRes) Code() int {
	return http.StatusOK
}

func (res verifyRes) Headers() map[string]string {
	return map[string]string{}
}

func (res verifyRes) Empty() bool {
	return false
}
