// Package http implements the JSON API of the development encryption
// gateway.
//
// It wires routes, request handlers and middleware. Tracing, access
// logging, CORS, rate limiting of user decryption and bearer-token checks
// on the access-list endpoint all happen here before a request reaches the
// engine.
package http
