package api_context

import (
	"context"
	"testing"
)

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	if _, ok := RequestIDFromContext(ctx); ok {
		t.Error("expected no request id on empty context")
	}
	if _, ok := AuthSubjectFromContext(ctx); ok {
		t.Error("expected no subject on empty context")
	}

	ctx = WithRequestID(ctx, "req-1")
	ctx = context.WithValue(ctx, AuthSubjectKey, "alice")
	ctx = context.WithValue(ctx, AuthRolesKey, []string{"admin"})

	if id, ok := RequestIDFromContext(ctx); !ok || id != "req-1" {
		t.Errorf("request id = %q, %v", id, ok)
	}
	if sub, ok := AuthSubjectFromContext(ctx); !ok || sub != "alice" {
		t.Errorf("subject = %q, %v", sub, ok)
	}
	if roles, ok := AuthRolesFromContext(ctx); !ok || len(roles) != 1 || roles[0] != "admin" {
		t.Errorf("roles = %v, %v", roles, ok)
	}
}
