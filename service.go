// Copyright (c) EVAuth
// SPDX-License-Identifier: Apache-2.0

package akeys

import (
	"context"
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/evauth/akeys/pkg/authz"
	"github.com/evauth/akeys/pkg/errors"
	repoerr "github.com/evauth/akeys/pkg/errors/repository"
	svcerr "github.com/evauth/akeys/pkg/errors/service"
)

const (
	// MinPasswordLen is the shortest password accepted at registration and
	// login. Passwords of exactly this length are valid.
	MinPasswordLen = 6

	// Candidate draws before akey allocation gives up. A collision on a
	// 6-character random identifier is rare, but not impossible under load.
	allocRetries = 5
)

// Credentials carries the secrets issued to a freshly registered account:
// the long-lived bearer token and, when minting succeeded, the API key
// issued by the external authorization service.
type Credentials struct {
	Token string
	Key   string
}

// Service specifies an API that must be fulfilled by the akeys service
// implementation, and all of its decorators (e.g. logging & metrics).
type Service interface {
	// Allocate returns a randomly generated akey that has no account yet.
	// The akey is not reserved; a concurrent registration of the same akey
	// is resolved by the store uniqueness constraint.
	Allocate(ctx context.Context, key string) (string, error)

	// Register creates the account for the provided akey, hashing the
	// password and issuing the account bearer token. An API key scoped to
	// the akey is requested from the authorization service afterwards; the
	// account is kept even when that secondary call fails.
	Register(ctx context.Context, key, akey, password string) (Credentials, error)

	// Login verifies the password against the stored hash and returns the
	// token issued at registration, unchanged.
	Login(ctx context.Context, key, akey, password string) (string, error)

	// Verify checks that the presented token matches the token owned by the
	// akey. It is read-only and idempotent.
	Verify(ctx context.Context, key, akey, token string) error
}

type service struct {
	accounts AccountRepository
	hasher   Hasher
	authz    authz.Authorization
	akeys    IDProvider
	tokens   IDProvider
}

var _ Service = (*service)(nil)

// New instantiates the akeys service implementation.
func New(accounts AccountRepository, hasher Hasher, authz authz.Authorization, akp, tkp IDProvider) Service {
	return &service{
		accounts: accounts,
		hasher:   hasher,
		authz:    authz,
		akeys:    akp,
		tokens:   tkp,
	}
}

func (svc *service) Allocate(ctx context.Context, key string) (string, error) {
	if err := svc.authorize(ctx, key); err != nil {
		return "", err
	}

	for i := 0; i < allocRetries; i++ {
		candidate, err := svc.akeys.ID()
		if err != nil {
			return "", errors.Wrap(svcerr.ErrUniqueID, err)
		}

		_, err = svc.accounts.RetrieveByAKey(ctx, candidate)
		switch {
		case err == nil:
			continue
		case errors.Contains(err, repoerr.ErrNotFound):
			return candidate, nil
		default:
			return "", errors.Wrap(svcerr.ErrViewEntity, err)
		}
	}

	return "", svcerr.ErrUniqueID
}

func (svc *service) Register(ctx context.Context, key, akey, password string) (Credentials, error) {
	if err := svc.authorize(ctx, key); err != nil {
		return Credentials{}, err
	}
	if len(password) < MinPasswordLen {
		return Credentials{}, svcerr.ErrPasswordFormat
	}

	// Fast-path only: the unique index on akey is the authoritative guard
	// against concurrent registrations.
	if _, err := svc.accounts.RetrieveByAKey(ctx, akey); err == nil {
		return Credentials{}, svcerr.ErrConflict
	} else if !errors.Contains(err, repoerr.ErrNotFound) {
		return Credentials{}, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	hash, err := svc.hasher.Hash(password)
	if err != nil {
		return Credentials{}, errors.Wrap(svcerr.ErrCreateEntity, err)
	}

	token, err := svc.tokens.ID()
	if err != nil {
		return Credentials{}, errors.Wrap(svcerr.ErrCreateEntity, err)
	}

	now := time.Now()
	acc := Account{
		AKey:         akey,
		PasswordHash: hash,
		Token:        token,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := svc.accounts.Save(ctx, acc); err != nil {
		if errors.Contains(err, repoerr.ErrConflict) {
			return Credentials{}, errors.Wrap(svcerr.ErrConflict, err)
		}
		return Credentials{}, errors.Wrap(svcerr.ErrCreateEntity, err)
	}

	apiKey, err := svc.authz.IssueKey(ctx, akey)
	if err != nil {
		// The account is already persisted; do not roll back. Key minting
		// failure is reported distinctly from registration failure.
		return Credentials{Token: token}, errors.Wrap(svcerr.ErrAPIKeyIssue, err)
	}

	return Credentials{Token: token, Key: apiKey}, nil
}

func (svc *service) Login(ctx context.Context, key, akey, password string) (string, error) {
	if err := svc.authorize(ctx, key); err != nil {
		return "", err
	}
	if len(password) < MinPasswordLen {
		return "", svcerr.ErrPasswordFormat
	}

	acc, err := svc.accounts.RetrieveByAKey(ctx, akey)
	if err != nil {
		if errors.Contains(err, repoerr.ErrNotFound) {
			return "", errors.Wrap(svcerr.ErrNotFound, err)
		}
		return "", errors.Wrap(svcerr.ErrViewEntity, err)
	}

	if err := svc.hasher.Compare(password, acc.PasswordHash); err != nil {
		return "", errors.Wrap(svcerr.ErrLogin, err)
	}

	return acc.Token, nil
}

func (svc *service) Verify(ctx context.Context, key, akey, token string) error {
	if err := svc.authorize(ctx, key); err != nil {
		return err
	}
	if token == "" {
		return svcerr.ErrMissingAuthentication
	}

	acc, err := svc.accounts.RetrieveByAKey(ctx, akey)
	if err != nil {
		if errors.Contains(err, repoerr.ErrNotFound) {
			return errors.Wrap(svcerr.ErrNotFound, err)
		}
		return errors.Wrap(svcerr.ErrViewEntity, err)
	}

	if subtle.ConstantTimeCompare([]byte(token), []byte(acc.Token)) != 1 {
		return svcerr.ErrAuthentication
	}

	return nil
}

func (svc *service) authorize(ctx context.Context, key string) error {
	if key == "" {
		return svcerr.ErrMissingAPIKey
	}

	if err := svc.authz.Authorize(ctx, key); err != nil {
		if e, ok := err.(errors.SDKError); ok {
			switch e.StatusCode() {
			case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
				return errors.Wrap(svcerr.ErrAuthorization, err)
			}
		}
		return errors.Wrap(svcerr.ErrUpstream, err)
	}

	return nil
}
