// Package app assembles the development gateway from configuration: master
// key, ciphertext store, engine, HTTP server and background workers.
//
// The CLI reuses [NewEngine] for its embedded adapter mode.
package app
