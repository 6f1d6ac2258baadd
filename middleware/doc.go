// Copyright (c) EVAuth
// SPDX-License-Identifier: Apache-2.0

// Package middleware provides service decorators adding logging, metrics
// and tracing facilities to the akeys service.
package middleware
