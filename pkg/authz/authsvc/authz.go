// Copyright (c) EVAuth
// SPDX-License-Identifier: Apache-2.0

// Package authsvc provides the HTTP client of the external authorization
// service.
package authsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/evauth/akeys/pkg/apiutil"
	"github.com/evauth/akeys/pkg/authz"
	"github.com/evauth/akeys/pkg/errors"
)

const contentType = "application/json"

var (
	errIssueKey = errors.New("failed to mint api key")
	errKeyShape = errors.New("malformed api key response")
)

// Config defines the options that are used when connecting to the external
// authorization service.
type Config struct {
	URL     string        `env:"URL"     envDefault:"http://localhost:9500/keys"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
}

type client struct {
	url  string
	http *http.Client
}

var _ authz.Authorization = (*client)(nil)

// New instantiates the authorization service HTTP client. Every call is
// bounded by the configured timeout.
func New(cfg Config) authz.Authorization {
	return &client{
		url:  cfg.URL,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *client) Authorize(ctx context.Context, key string) error {
	_, err := c.processRequest(ctx, key, nil, http.StatusOK, http.StatusNoContent)
	return err
}

func (c *client) IssueKey(ctx context.Context, akey string) (string, error) {
	data, err := json.Marshal(map[string][]string{"scopes": {akey}})
	if err != nil {
		return "", errors.Wrap(errIssueKey, err)
	}

	body, sdkerr := c.processRequest(ctx, "", data, http.StatusOK, http.StatusCreated)
	if sdkerr != nil {
		return "", sdkerr
	}

	var res struct {
		Key string `json:"key"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return "", errors.Wrap(errKeyShape, err)
	}
	if res.Key == "" {
		return "", errKeyShape
	}

	return res.Key, nil
}

func (c *client) processRequest(ctx context.Context, key string, data []byte, expectedRespCodes ...int) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(data))
	if err != nil {
		return nil, errors.NewSDKError(err)
	}

	req.Header.Set("Content-Type", contentType)
	if key != "" {
		req.Header.Set("Authorization", apiutil.BearerPrefix+key)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.NewSDKError(err)
	}
	defer resp.Body.Close()

	if sdkerr := errors.CheckError(resp, expectedRespCodes...); sdkerr != nil {
		return nil, sdkerr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewSDKError(err)
	}

	return body, nil
}
