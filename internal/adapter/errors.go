package adapter

import "errors"

var (
	ErrBadRequest   = errors.New("gateway rejected the request")
	ErrUnauthorized = errors.New("gateway token missing or invalid")
	ErrRateLimited  = errors.New("gateway rate limit exceeded")
	ErrServerError  = errors.New("gateway internal error")
	ErrInvalidURL   = errors.New("invalid gateway address")
)
