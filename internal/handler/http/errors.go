// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the bearer-token middleware and request decoding.
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidToken is returned when the token fails signature, issuer or
	// expiry checks.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidRequestBody is returned when a request body is not valid JSON
	// for the endpoint or fails validation.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrTooManyRequests is returned by the rate limiter.
	ErrTooManyRequests = errors.New("too many requests")
)
