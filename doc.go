// Copyright (c) EVAuth
// SPDX-License-Identifier: Apache-2.0

// Package akeys contains the domain concept definitions needed to support
// the akeys credential service. An akey is a short, unique, randomly
// generated account identifier that functions as a username. The service
// allocates collision-free akeys, registers them with a password, issues a
// long-lived bearer token per account and verifies presented tokens, with
// every operation authorized against an external authorization service.
package akeys
