// Copyright (c) EVAuth
// SPDX-License-Identifier: Apache-2.0

package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/evauth/akeys"
	"github.com/evauth/akeys/api"
	"github.com/evauth/akeys/logger"
	"github.com/evauth/akeys/mocks"
	"github.com/evauth/akeys/pkg/apiutil"
	"github.com/evauth/akeys/pkg/errors"
	repoerr "github.com/evauth/akeys/pkg/errors/repository"
	svcerr "github.com/evauth/akeys/pkg/errors/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	validKey      = "service-api-key"
	validAKey     = "a1B2c3"
	validPassword = "secret"
	validToken    = "00112233445566778899"
	contentType   = "application/json"
	instanceID    = "5de9b29a-feb9-11ed-be56-0242ac120002"
)

type testRequest struct {
	client      *http.Client
	method      string
	url         string
	contentType string
	key         string
	token       string
	body        *strings.Reader
}

func (tr testRequest) make() (*http.Response, error) {
	var body *strings.Reader
	if tr.body != nil {
		body = tr.body
	} else {
		body = strings.NewReader("")
	}
	req, err := http.NewRequest(tr.method, tr.url, body)
	if err != nil {
		return nil, err
	}
	if tr.key != "" {
		req.Header.Set("Authorization", apiutil.BearerPrefix+tr.key)
	}
	if tr.token != "" {
		req.Header.Set(apiutil.AuthenticationHeader, tr.token)
	}
	if tr.contentType != "" {
		req.Header.Set("Content-Type", tr.contentType)
	}

	return tr.client.Do(req)
}

func newServer(t *testing.T) (*httptest.Server, *mocks.AccountRepository, *mocks.Authorization) {
	repo := new(mocks.AccountRepository)
	authsvc := new(mocks.Authorization)
	hasher := new(mocks.Hasher)
	akp := new(mocks.IDProvider)
	tkp := new(mocks.IDProvider)
	akp.On("ID").Return(validAKey, nil)
	tkp.On("ID").Return(validToken, nil)

	svc := akeys.New(repo, hasher, authsvc, akp, tkp)
	hasher.On("Hash", mock.Anything).Return("", nil)
	hasher.On("Compare", mock.Anything, mock.Anything).Return(nil)

	mglog, err := logger.New(&strings.Builder{}, "debug")
	require.NoError(t, err)

	return httptest.NewServer(api.MakeHandler(svc, mglog, instanceID)), repo, authsvc
}

func toJSON(data interface{}) string {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return ""
	}

	return string(jsonData)
}

func TestAllocateEndpoint(t *testing.T) {
	ts, repo, authsvc := newServer(t)
	defer ts.Close()

	cases := []struct {
		desc        string
		key         string
		authErr     error
		retrieveErr error
		status      int
	}{
		{
			desc:        "allocate an akey",
			key:         validKey,
			retrieveErr: repoerr.ErrNotFound,
			status:      http.StatusOK,
		},
		{
			desc:   "allocate without bearer key",
			key:    "",
			status: http.StatusBadRequest,
		},
		{
			desc:    "allocate with rejected key",
			key:     "rejected",
			authErr: errors.NewSDKErrorWithStatus(svcerr.ErrAuthorization, http.StatusUnauthorized),
			status:  http.StatusUnauthorized,
		},
		{
			desc:    "allocate with authorization service down",
			key:     validKey,
			authErr: errors.NewSDKError(fmt.Errorf("connection refused")),
			status:  http.StatusBadGateway,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			authCall := authsvc.On("Authorize", mock.Anything, tc.key).Return(tc.authErr)
			repoCall := repo.On("RetrieveByAKey", mock.Anything, validAKey).Return(akeys.Account{}, tc.retrieveErr)
			req := testRequest{
				client: ts.Client(),
				method: http.MethodGet,
				url:    ts.URL + "/authentication/akey",
				key:    tc.key,
			}
			res, err := req.make()
			require.NoError(t, err)
			assert.Equal(t, tc.status, res.StatusCode, fmt.Sprintf("%s: expected status %d got %d", tc.desc, tc.status, res.StatusCode))
			if tc.status == http.StatusOK {
				var body map[string]string
				err = json.NewDecoder(res.Body).Decode(&body)
				require.NoError(t, err)
				assert.Equal(t, validAKey, body["akey"])
			}
			res.Body.Close()
			authCall.Unset()
			repoCall.Unset()
		})
	}
}

func TestRegisterEndpoint(t *testing.T) {
	ts, repo, authsvc := newServer(t)
	defer ts.Close()

	validBody := toJSON(map[string]string{"password": validPassword})

	cases := []struct {
		desc        string
		key         string
		contentType string
		body        string
		retrieveErr error
		saveErr     error
		issueRes    string
		issueErr    error
		status      int
	}{
		{
			desc:        "register new akey",
			key:         validKey,
			contentType: contentType,
			body:        validBody,
			retrieveErr: repoerr.ErrNotFound,
			issueRes:    "minted-api-key",
			status:      http.StatusCreated,
		},
		{
			desc:        "register without bearer key",
			key:         "",
			contentType: contentType,
			body:        validBody,
			status:      http.StatusBadRequest,
		},
		{
			desc:        "register with invalid content type",
			key:         validKey,
			contentType: "text/plain",
			body:        validBody,
			status:      http.StatusUnsupportedMediaType,
		},
		{
			desc:        "register with malformed body",
			key:         validKey,
			contentType: contentType,
			body:        "{",
			status:      http.StatusBadRequest,
		},
		{
			desc:        "register with short password",
			key:         validKey,
			contentType: contentType,
			body:        toJSON(map[string]string{"password": "12345"}),
			status:      http.StatusBadRequest,
		},
		{
			desc:        "register with missing password",
			key:         validKey,
			contentType: contentType,
			body:        "{}",
			status:      http.StatusBadRequest,
		},
		{
			desc:        "register taken akey",
			key:         validKey,
			contentType: contentType,
			body:        validBody,
			retrieveErr: nil,
			status:      http.StatusConflict,
		},
		{
			desc:        "register losing the save race",
			key:         validKey,
			contentType: contentType,
			body:        validBody,
			retrieveErr: repoerr.ErrNotFound,
			saveErr:     repoerr.ErrConflict,
			status:      http.StatusConflict,
		},
		{
			desc:        "register with key minting failure",
			key:         validKey,
			contentType: contentType,
			body:        validBody,
			retrieveErr: repoerr.ErrNotFound,
			issueErr:    errors.NewSDKError(fmt.Errorf("connection refused")),
			status:      http.StatusBadGateway,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			authCall := authsvc.On("Authorize", mock.Anything, tc.key).Return(nil)
			repoCall := repo.On("RetrieveByAKey", mock.Anything, validAKey).Return(akeys.Account{AKey: validAKey}, tc.retrieveErr)
			saveCall := repo.On("Save", mock.Anything, mock.Anything).Return(tc.saveErr)
			issueCall := authsvc.On("IssueKey", mock.Anything, validAKey).Return(tc.issueRes, tc.issueErr)
			req := testRequest{
				client:      ts.Client(),
				method:      http.MethodPost,
				url:         ts.URL + "/authentication/" + validAKey,
				contentType: tc.contentType,
				key:         tc.key,
				body:        strings.NewReader(tc.body),
			}
			res, err := req.make()
			require.NoError(t, err)
			assert.Equal(t, tc.status, res.StatusCode, fmt.Sprintf("%s: expected status %d got %d", tc.desc, tc.status, res.StatusCode))
			if tc.status == http.StatusCreated {
				var body map[string]string
				err = json.NewDecoder(res.Body).Decode(&body)
				require.NoError(t, err)
				assert.Equal(t, validToken, body["token"])
				assert.Equal(t, tc.issueRes, body["key"])
			}
			res.Body.Close()
			authCall.Unset()
			repoCall.Unset()
			saveCall.Unset()
			issueCall.Unset()
		})
	}
}

func TestLoginEndpoint(t *testing.T) {
	ts, repo, authsvc := newServer(t)
	defer ts.Close()

	stored := akeys.Account{
		AKey:         validAKey,
		PasswordHash: validPassword,
		Token:        validToken,
	}
	validBody := toJSON(map[string]string{"password": validPassword})

	cases := []struct {
		desc        string
		key         string
		contentType string
		body        string
		retrieveRes akeys.Account
		retrieveErr error
		status      int
	}{
		{
			desc:        "login with valid credentials",
			key:         validKey,
			contentType: contentType,
			body:        validBody,
			retrieveRes: stored,
			status:      http.StatusOK,
		},
		{
			desc:        "login with wrong password",
			key:         validKey,
			contentType: contentType,
			body:        toJSON(map[string]string{"password": "wrong-password"}),
			retrieveRes: stored,
			status:      http.StatusUnauthorized,
		},
		{
			desc:        "login with unknown akey",
			key:         validKey,
			contentType: contentType,
			body:        validBody,
			retrieveErr: repoerr.ErrNotFound,
			status:      http.StatusNotFound,
		},
		{
			desc:        "login without bearer key",
			key:         "",
			contentType: contentType,
			body:        validBody,
			status:      http.StatusBadRequest,
		},
		{
			desc:        "login with invalid content type",
			key:         validKey,
			contentType: "text/plain",
			body:        validBody,
			status:      http.StatusUnsupportedMediaType,
		},
		{
			desc:        "login with short password",
			key:         validKey,
			contentType: contentType,
			body:        toJSON(map[string]string{"password": "12345"}),
			status:      http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			authCall := authsvc.On("Authorize", mock.Anything, tc.key).Return(nil)
			repoCall := repo.On("RetrieveByAKey", mock.Anything, validAKey).Return(tc.retrieveRes, tc.retrieveErr)
			req := testRequest{
				client:      ts.Client(),
				method:      http.MethodPost,
				url:         ts.URL + "/authentication/" + validAKey + "/login",
				contentType: tc.contentType,
				key:         tc.key,
				body:        strings.NewReader(tc.body),
			}
			res, err := req.make()
			require.NoError(t, err)
			assert.Equal(t, tc.status, res.StatusCode, fmt.Sprintf("%s: expected status %d got %d", tc.desc, tc.status, res.StatusCode))
			if tc.status == http.StatusOK {
				var body map[string]string
				err = json.NewDecoder(res.Body).Decode(&body)
				require.NoError(t, err)
				assert.Equal(t, validToken, body["token"])
			}
			res.Body.Close()
			authCall.Unset()
			repoCall.Unset()
		})
	}
}

func TestVerifyEndpoint(t *testing.T) {
	ts, repo, authsvc := newServer(t)
	defer ts.Close()

	stored := akeys.Account{
		AKey:         validAKey,
		PasswordHash: validPassword,
		Token:        validToken,
	}

	cases := []struct {
		desc        string
		key         string
		token       string
		retrieveRes akeys.Account
		retrieveErr error
		status      int
	}{
		{
			desc:        "verify valid token",
			key:         validKey,
			token:       validToken,
			retrieveRes: stored,
			status:      http.StatusOK,
		},
		{
			desc:        "verify mismatched token",
			key:         validKey,
			token:       "someone-elses-token",
			retrieveRes: stored,
			status:      http.StatusUnauthorized,
		},
		{
			desc:   "verify without authentication header",
			key:    validKey,
			token:  "",
			status: http.StatusBadRequest,
		},
		{
			desc:        "verify with unknown akey",
			key:         validKey,
			token:       validToken,
			retrieveErr: repoerr.ErrNotFound,
			status:      http.StatusNotFound,
		},
		{
			desc:   "verify without bearer key",
			key:    "",
			token:  validToken,
			status: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			authCall := authsvc.On("Authorize", mock.Anything, tc.key).Return(nil)
			repoCall := repo.On("RetrieveByAKey", mock.Anything, validAKey).Return(tc.retrieveRes, tc.retrieveErr)
			req := testRequest{
				client: ts.Client(),
				method: http.MethodPost,
				url:    ts.URL + "/authentication/" + validAKey + "/verify",
				key:    tc.key,
				token:  tc.token,
			}
			res, err := req.make()
			require.NoError(t, err)
			assert.Equal(t, tc.status, res.StatusCode, fmt.Sprintf("%s: expected status %d got %d", tc.desc, tc.status, res.StatusCode))
			if tc.status == http.StatusOK {
				var body map[string]bool
				err = json.NewDecoder(res.Body).Decode(&body)
				require.NoError(t, err)
				assert.True(t, body["verified"])
			}
			res.Body.Close()
			authCall.Unset()
			repoCall.Unset()
		})
	}
}

func TestHealthEndpoint(t *testing.T) {
	ts, _, _ := newServer(t)
	defer ts.Close()

	req := testRequest{
		client: ts.Client(),
		method: http.MethodGet,
		url:    ts.URL + "/health",
	}
	res, err := req.make()
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var info akeys.HealthInfo
	err = json.NewDecoder(res.Body).Decode(&info)
	require.NoError(t, err)
	assert.Equal(t, "pass", info.Status)
	assert.Equal(t, instanceID, info.InstanceID)
}
