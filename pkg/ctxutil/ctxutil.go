package ctxutil

import (
	"context"
	"slices"
)

type ctxKey string

const (
	subjectKey   ctxKey = "subject"
	rolesKey     ctxKey = "roles"
	requestIDKey ctxKey = "request_id"
)

// WithSubject stores the authenticated subject (the account email) and its
// roles in the context.
func WithSubject(ctx context.Context, subject string, roles []string) context.Context {
	ctx = context.WithValue(ctx, subjectKey, subject)
	return context.WithValue(ctx, rolesKey, slices.Clone(roles))
}

// SubjectFromCtx extracts the authenticated subject.
// Returns "" and false for anonymous requests.
func SubjectFromCtx(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(subjectKey).(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// RolesFromCtx returns the roles of the authenticated subject, or nil.
func RolesFromCtx(ctx context.Context) []string {
	roles, _ := ctx.Value(rolesKey).([]string)
	return roles
}

// HasRole reports whether the authenticated subject holds role.
func HasRole(ctx context.Context, role string) bool {
	return slices.Contains(RolesFromCtx(ctx), role)
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
