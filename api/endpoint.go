// Copyright (c) EVAuth
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"

	"github.com/evauth/akeys"
	"github.com/evauth/akeys/pkg/apiutil"
	"github.com/evauth/akeys/pkg/errors"
	"github.com/go-kit/kit/endpoint"
)

func allocateEndpoint(svc akeys.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(allocateReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		akey, err := svc.Allocate(ctx, req.key)
		if err != nil {
			return nil, err
		}

		return allocateRes{AKey: akey}, nil
	}
}

func registerEndpoint(svc akeys.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(registerReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		creds, err := svc.Register(ctx, req.key, req.akey, req.Password)
		if err != nil {
			return nil, err
		}

		return registerRes{Token: creds.Token, Key: creds.Key}, nil
	}
}

func loginEndpoint(svc akeys.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(loginReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		token, err := svc.Login(ctx, req.key, req.akey, req.Password)
		if err != nil {
			return nil, err
		}

		return loginRes{Token: token}, nil
	}
}

func verifyEndpoint(svc akeys.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(verifyReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		if err := svc.Verify(ctx, req.key, req.akey, req.token); err != nil {
			return nil, err
		}

		return verifyRes{Verified: true}, nil
	}
}
