package httpadapter

import (
	"context"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
)

func TestRequestIDMiddleware_HonorsInboundHeader(t *testing.T) {
	mw := requestIDMiddleware(nil)
	ctx := &app.RequestContext{}
	ctx.Request.Header.Set(requestIDHeader, "req-abc")

	mw(context.Background(), ctx)

	if got := string(ctx.Response.Header.Peek(requestIDHeader)); got != "req-abc" {
		t.Fatalf("expected echoed request id, got %q", got)
	}
}

func TestRequestIDMiddleware_GeneratesWhenMissing(t *testing.T) {
	mw := requestIDMiddleware(nil)
	ctx := &app.RequestContext{}

	mw(context.Background(), ctx)

	got := string(ctx.Response.Header.Peek(requestIDHeader))
	if got == "" {
		t.Fatalf("expected generated request id")
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Fatalf("expected uuid request id, got %q: %v", got, err)
	}
}

func TestRequestIDFromContext(t *testing.T) {
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty id outside a request, got %q", got)
	}
	ctx := withRequestID(context.Background(), "req-1")
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Fatalf("expected req-1, got %q", got)
	}
}
