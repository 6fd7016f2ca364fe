// Package server runs the gateway's HTTP transport.
//
// It owns listener startup and graceful shutdown: Run blocks until the
// context is cancelled, then drains in-flight requests within the shutdown
// timeout.
package server
