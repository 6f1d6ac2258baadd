// Copyright (c) EVAuth
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"time"

	"github.com/evauth/akeys"
	"github.com/go-kit/kit/metrics"
)

var _ akeys.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	svc     akeys.Service
}

// MetricsMiddleware instruments core service by tracking request count and latency.
func MetricsMiddleware(svc akeys.Service, counter metrics.Counter, latency metrics.Histogram) akeys.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		svc:     svc,
	}
}

func (ms *metricsMiddleware) Allocate(ctx context.Context, key string) (string, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "allocate_akey").Add(1)
		ms.latency.With("method", "allocate_akey").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.Allocate(ctx, key)
}

func (ms *metricsMiddleware) Register(ctx context.Context, key, akey, password string) (akeys.Credentials, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "register").Add(1)
		ms.latency.With("method", "register").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.Register(ctx, key, akey, password)
}

func (ms *metricsMiddleware) Login(ctx context.Context, key, akey, password string) (string, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "login").Add(1)
		ms.latency.With("method", "login").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.Login(ctx, key, akey, password)
}

func (ms *metricsMiddleware) Verify(ctx context.Context, key, akey, token string) error {
	defer func(begin time.Time) {
		ms.counter.With("method", "verify_token").Add(1)
		ms.latency.With("method", "verify_token").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.Verify(ctx, key, akey, token)
}
