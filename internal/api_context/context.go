package api_context

import "context"

type ctxKey string

const (
	RequestIDKey   ctxKey = "requestID"
	AuthSubjectKey ctxKey = "authSubject"
	AuthRolesKey   ctxKey = "authRoles"
)

func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDKey).(string)
	return id, ok && id != ""
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func AuthSubjectFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(AuthSubjectKey).(string)
	return sub, ok && sub != ""
}

func AuthRolesFromContext(ctx context.Context) ([]string, bool) {
	roles, ok := ctx.Value(AuthRolesKey).([]string)
	return roles, ok
}
