package http

import (
	"errors"
	"net/http"

	"github.com/SaurabViena/heirloom/internal/fhe"
	"github.com/SaurabViena/heirloom/internal/store"
)

// errorStatusMap is checked in order; the first match wins.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{ErrInvalidRequestBody, http.StatusBadRequest},
	{ErrInvalidToken, http.StatusUnauthorized},
	{ErrTooManyRequests, http.StatusTooManyRequests},

	{fhe.ErrValueTooWide, http.StatusBadRequest},
	{fhe.ErrSealedBox, http.StatusBadRequest},
	{fhe.ErrInvalidKey, http.StatusBadRequest},
	{fhe.ErrEncryptionFailed, http.StatusBadRequest},
	{fhe.ErrInvalidProof, http.StatusUnprocessableEntity},
	{fhe.ErrGrantExpired, http.StatusGone},
	{fhe.ErrGrantRejected, http.StatusForbidden},
	{fhe.ErrUnknownHandle, http.StatusNotFound},
	{fhe.ErrNotReady, http.StatusServiceUnavailable},

	{store.ErrHandleExists, http.StatusConflict},
	{store.ErrCiphertextNotFound, http.StatusNotFound},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}
