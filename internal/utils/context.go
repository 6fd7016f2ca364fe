// Package utils provides small helpers shared by the gateway and the CLI:
// typed context keys, JSON response writing, a resty client wrapper, JWT
// issuing and validation for the ACL endpoint, and UUID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so values stored by this
// package never collide with string keys of other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// SubjectCtxKey holds the subject of a validated bearer token.
var SubjectCtxKey = contextKey("subject")

// TraceIDCtxKey holds the per-request trace id.
var TraceIDCtxKey = contextKey("traceID")

// GetSubjectFromContext returns the authenticated token subject, if any.
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectCtxKey).(string)
	return subject, ok && subject != ""
}

// GetTraceIDFromContext returns the request trace id, if any.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
