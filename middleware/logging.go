// Copyright (c) EVAuth
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/evauth/akeys"
)

var _ akeys.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger *slog.Logger
	svc    akeys.Service
}

// LoggingMiddleware adds logging facilities to the core service.
func LoggingMiddleware(svc akeys.Service, logger *slog.Logger) akeys.Service {
	return &loggingMiddleware{
		logger: logger,
		svc:    svc,
	}
}

func (lm *loggingMiddleware) Allocate(ctx context.Context, key string) (akey string, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("akey", akey),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Allocate akey failed", args...)
			return
		}
		lm.logger.Info("Allocate akey completed successfully", args...)
	}(time.Now())

	return lm.svc.Allocate(ctx, key)
}

func (lm *loggingMiddleware) Register(ctx context.Context, key, akey, password string) (creds akeys.Credentials, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("akey", akey),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Register akey failed", args...)
			return
		}
		lm.logger.Info("Register akey completed successfully", args...)
	}(time.Now())

	return lm.svc.Register(ctx, key, akey, password)
}

func (lm *loggingMiddleware) Login(ctx context.Context, key, akey, password string) (token string, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("akey", akey),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Login failed", args...)
			return
		}
		lm.logger.Info("Login completed successfully", args...)
	}(time.Now())

	return lm.svc.Login(ctx, key, akey, password)
}

func (lm *loggingMiddleware) Verify(ctx context.Context, key, akey, token string) (err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("akey", akey),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Verify token failed", args...)
			return
		}
		lm.logger.Info("Verify token completed successfully", args...)
	}(time.Now())

	return lm.svc.Verify(ctx, key, akey, token)
}
