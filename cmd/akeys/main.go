// Copyright (c) EVAuth
// SPDX-License-Identifier: Apache-2.0

// Package main contains akeys main function to start the akeys service.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/url"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/evauth/akeys"
	"github.com/evauth/akeys/api"
	"github.com/evauth/akeys/hasher"
	aklog "github.com/evauth/akeys/logger"
	"github.com/evauth/akeys/middleware"
	"github.com/evauth/akeys/mongodb"
	"github.com/evauth/akeys/pkg/akey"
	"github.com/evauth/akeys/pkg/authz"
	"github.com/evauth/akeys/pkg/authz/authsvc"
	jaegerclient "github.com/evauth/akeys/pkg/jaeger"
	"github.com/evauth/akeys/pkg/prometheus"
	"github.com/evauth/akeys/pkg/secret"
	"github.com/evauth/akeys/pkg/server"
	httpserver "github.com/evauth/akeys/pkg/server/http"
	"github.com/evauth/akeys/pkg/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	svcName        = "akeys"
	envPrefixDB    = "AK_MONGO_"
	envPrefixHTTP  = "AK_HTTP_"
	envPrefixAuthz = "AK_AUTHZ_"
	defSvcHTTPPort = "9021"
)

type config struct {
	LogLevel   string  `env:"AK_LOG_LEVEL"          envDefault:"info"`
	JaegerURL  url.URL `env:"AK_JAEGER_URL"         envDefault:"http://localhost:4318/v1/traces"`
	InstanceID string  `env:"AK_AKEYS_INSTANCE_ID"  envDefault:""`
	TraceRatio float64 `env:"AK_JAEGER_TRACE_RATIO" envDefault:"1.0"`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load %s configuration : %s", svcName, err)
	}

	logger, err := aklog.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %s", err)
	}

	var exitCode int
	defer aklog.ExitWithError(&exitCode)

	if cfg.InstanceID == "" {
		if cfg.InstanceID, err = uuid.New().ID(); err != nil {
			logger.Error(fmt.Sprintf("failed to generate instanceID: %s", err))
			exitCode = 1
			return
		}
	}

	db, err := mongodb.Setup(envPrefixDB)
	if err != nil {
		logger.Error(err.Error())
		exitCode = 1
		return
	}

	authzCfg := authsvc.Config{}
	if err := env.ParseWithOptions(&authzCfg, env.Options{Prefix: envPrefixAuthz}); err != nil {
		logger.Error(fmt.Sprintf("failed to load authorization service configuration : %s", err))
		exitCode = 1
		return
	}
	authzClient := authsvc.New(authzCfg)

	tp, err := jaegerclient.NewProvider(ctx, svcName, cfg.JaegerURL, cfg.InstanceID, cfg.TraceRatio)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to init Jaeger: %s", err))
		exitCode = 1
		return
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("error shutting down tracer provider: %s", err))
		}
	}()
	tracer := tp.Tracer(svcName)

	svc := newService(db, authzClient, logger, tracer)

	httpServerConfig := server.Config{Port: defSvcHTTPPort}
	if err := env.ParseWithOptions(&httpServerConfig, env.Options{Prefix: envPrefixHTTP}); err != nil {
		logger.Error(fmt.Sprintf("failed to load %s HTTP server configuration : %s", svcName, err.Error()))
		exitCode = 1
		return
	}

	hs := httpserver.NewServer(ctx, cancel, svcName, httpServerConfig, api.MakeHandler(svc, logger, cfg.InstanceID), logger)

	g.Go(func() error {
		return hs.Start()
	})

	g.Go(func() error {
		return server.StopSignalHandler(ctx, cancel, logger, svcName, hs)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("%s service terminated: %s", svcName, err))
	}
}

func newService(db *mongo.Database, authzClient authz.Authorization, logger *slog.Logger, tracer trace.Tracer) akeys.Service {
	repo := mongodb.NewAccountRepository(db)

	svc := akeys.New(repo, hasher.New(), authzClient, akey.New(), secret.New())
	svc = middleware.LoggingMiddleware(svc, logger)
	counter, latency := prometheus.MakeMetrics(svcName, "api")
	svc = middleware.MetricsMiddleware(svc, counter, latency)
	svc = middleware.Tracing(svc, tracer)

	return svc
}
