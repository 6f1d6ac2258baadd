// Copyright (c) EVAuth
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"

	"github.com/evauth/akeys"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var _ akeys.Service = (*tracingMiddleware)(nil)

type tracingMiddleware struct {
	tracer trace.Tracer
	svc    akeys.Service
}

// Tracing returns a new akeys service with tracing capabilities.
func Tracing(svc akeys.Service, tracer trace.Tracer) akeys.Service {
	return &tracingMiddleware{
		tracer: tracer,
		svc:    svc,
	}
}

func (tm *tracingMiddleware) Allocate(ctx context.Context, key string) (string, error) {
	ctx, span := tm.tracer.Start(ctx, "allocate_akey")
	defer span.End()

	return tm.svc.Allocate(ctx, key)
}

func (tm *tracingMiddleware) Register(ctx context.Context, key, akey, password string) (akeys.Credentials, error) {
	ctx, span := tm.tracer.Start(ctx, "register", trace.WithAttributes(attribute.String("akey", akey)))
	defer span.End()

	return tm.svc.Register(ctx, key, akey, password)
}

func (tm *tracingMiddleware) Login(ctx context.Context, key, akey, password string) (string, error) {
	ctx, span := tm.tracer.Start(ctx, "login", trace.WithAttributes(attribute.String("akey", akey)))
	defer span.End()

	return tm.svc.Login(ctx, key, akey, password)
}

func (tm *tracingMiddleware) Verify(ctx context.Context, key, akey, token string) error {
	ctx, span := tm.tracer.Start(ctx, "verify_token", trace.WithAttributes(attribute.String("akey", akey)))
	defer span.End()

	return tm.svc.Verify(ctx, key, akey, token)
}
