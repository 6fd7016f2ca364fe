// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter connects the heirloom CLI to an encryption gateway.
//
// [HTTPSession] talks to a gateway over its JSON API and implements both
// fhe.Session (encryption and user decryption) and fhe.Registry (input
// proofs and access lists). Gateway status codes are mapped by
// mapHTTPError onto the fhe sentinels, so callers match outcomes with
// [errors.Is] regardless of the transport.
package adapter

import "github.com/SaurabViena/heirloom/internal/fhe"

// GatewayClient is everything the CLI needs from a gateway. Both
// *HTTPSession and the in-process engine.LocalSession satisfy it.
type GatewayClient interface {
	fhe.Session
	fhe.Registry
}

// Gateway API routes.
const (
	routeKeys        = "/api/v1/keys"
	routeInputs      = "/api/v1/inputs"
	routeVerifyInput = "/api/v1/inputs/verify"
	routeUserDecrypt = "/api/v1/user-decrypt"
	routeACL         = "/api/v1/acl"
)
