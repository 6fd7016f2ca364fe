package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidName       = errors.New("invalid credential name")
	ErrInvalidAddress    = errors.New("invalid address")
	ErrEmptyHandles      = errors.New("handle list cannot be empty")
	ErrInvalidHandles    = errors.New("handle list does not match credential layout")
	ErrEmptyProof        = errors.New("input proof is required")
	ErrInvalidAuthType   = errors.New("invalid authorization type")
	ErrSelfAuthorization = errors.New("owner cannot authorize itself")
)
