// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the heirloom CLI runtime.
//
// It wires the signer, the vault, the encryption adapter (HTTP or embedded)
// and the pipeline services into one [App] and turns pipeline errors into
// user-facing guidance.
package client
