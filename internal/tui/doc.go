// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders heirloom CLI output in the terminal: decryption state
// transitions, credential listings, revealed values and the grant approval
// prompt. Styling uses lipgloss; input is read line by line.
package tui
