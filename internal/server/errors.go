// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoListener is returned when neither a listen address nor an HTTP
	// handler is configured, so the gateway would have nothing to serve.
	errNoListener = errors.New("gateway has no HTTP listener configured")
)
