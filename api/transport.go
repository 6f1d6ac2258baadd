// Copyright (c) EVAuth
// SPDX-License-Identifier: Apache-2.0

// Package api contains the HTTP API implementation of the akeys service.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/evauth/akeys"
	"github.com/evauth/akeys/pkg/apiutil"
	"github.com/evauth/akeys/pkg/errors"
	svcerr "github.com/evauth/akeys/pkg/errors/service"
	"github.com/go-chi/chi/v5"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const contentType = "application/json"

const svcName = "akeys"

// MakeHandler returns a HTTP handler for API endpoints.
func MakeHandler(svc akeys.Service, logger *slog.Logger, instanceID string) http.Handler {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(apiutil.LoggingErrorEncoder(logger, encodeError)),
	}

	mux := chi.NewRouter()

	mux.Route("/authentication", func(r chi.Router) {
		r.Get("/akey", otelhttp.NewHandler(kithttp.NewServer(
			allocateEndpoint(svc),
			decodeAllocate,
			encodeResponse,
			opts...,
		), "allocate_akey").ServeHTTP)

		r.Post("/{akey}", otelhttp.NewHandler(kithttp.NewServer(
			registerEndpoint(svc),
			decodeRegister,
			encodeResponse,
			opts...,
		), "register").ServeHTTP)

		r.Post("/{akey}/login", otelhttp.NewHandler(kithttp.NewServer(
			loginEndpoint(svc),
			decodeLogin,
			encodeResponse,
			opts...,
		), "login").ServeHTTP)

		r.Post("/{akey}/verify", otelhttp.NewHandler(kithttp.NewServer(
			verifyEndpoint(svc),
			decodeVerify,
			encodeResponse,
			opts...,
		), "verify_token").ServeHTTP)
	})

	mux.Get("/health", akeys.Health(svcName, instanceID))
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

func decodeAllocate(_ context.Context, r *http.Request) (interface{}, error) {
	req := allocateReq{
		key: apiutil.ExtractBearerKey(r),
	}

	return req, nil
}

func decodeRegister(_ context.Context, r *http.Request) (interface{}, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), contentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}

	req := registerReq{
		key:  apiutil.ExtractBearerKey(r),
		akey: chi.URLParam(r, "akey"),
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, errors.Wrap(errors.ErrMalformedEntity, err))
	}

	return req, nil
}

func decodeLogin(_ context.Context, r *http.Request) (interface{}, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), contentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}

	req := loginReq{
		key:  apiutil.ExtractBearerKey(r),
		akey: chi.URLParam(r, "akey"),
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, errors.Wrap(errors.ErrMalformedEntity, err))
	}

	return req, nil
}

func decodeVerify(_ context.Context, r *http.Request) (interface{}, error) {
	req := verifyReq{
		key:   apiutil.ExtractBearerKey(r),
		akey:  chi.URLParam(r, "akey"),
		token: apiutil.ExtractAuthenticationToken(r),
	}

	return req, nil
}

func encodeResponse(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", contentType)

	if ar, ok := response.(akeys.Response); ok {
		for k, v := range ar.Headers() {
			w.Header().Set(k, v)
		}

		w.WriteHeader(ar.Code())

		if ar.Empty() {
			return nil
		}
	}

	return json.NewEncoder(w).Encode(response)
}

func encodeError(_ context.Context, err error, w http.ResponseWriter) {
	var wrapper error
	if errors.Contains(err, apiutil.ErrValidation) {
		wrapper, err = errors.Unwrap(err)
	}

	w.Header().Set("Content-Type", contentType)
	switch {
	case errors.Contains(err, svcerr.ErrMissingAPIKey),
		errors.Contains(err, apiutil.ErrBearerKey),
		errors.Contains(err, svcerr.ErrMissingAuthentication),
		errors.Contains(err, svcerr.ErrPasswordFormat),
		errors.Contains(err, apiutil.ErrMissingPass),
		errors.Contains(err, apiutil.ErrPasswordFormat),
		errors.Contains(err, apiutil.ErrMissingAKey),
		errors.Contains(err, errors.ErrMalformedEntity):
		w.WriteHeader(http.StatusBadRequest)

	case errors.Contains(err, svcerr.ErrAuthorization),
		errors.Contains(err, svcerr.ErrAuthentication),
		errors.Contains(err, svcerr.ErrLogin):
		w.WriteHeader(http.StatusUnauthorized)

	case errors.Contains(err, svcerr.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)

	case errors.Contains(err, svcerr.ErrConflict),
		errors.Contains(err, svcerr.ErrUniqueID):
		w.WriteHeader(http.StatusConflict)

	case errors.Contains(err, apiutil.ErrUnsupportedContentType):
		w.WriteHeader(http.StatusUnsupportedMediaType)

	case errors.Contains(err, svcerr.ErrUpstream),
		errors.Contains(err, svcerr.ErrAPIKeyIssue):
		w.WriteHeader(http.StatusBadGateway)

	default:
		w.WriteHeader(http.StatusInternalServerError)
	}

	if wrapper != nil {
		err = errors.Wrap(wrapper, err)
	}

	if errorVal, ok := err.(errors.Error); ok {
		if err := json.NewEncoder(w).Encode(errorVal); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
		}
	}
}
