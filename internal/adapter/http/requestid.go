package httpadapter

import (
	"context"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-ID"

type requestIDKeyType struct{}

var requestIDKey = requestIDKeyType{}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the correlation id set by the middleware,
// empty outside a request.
func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// requestIDMiddleware honors an inbound X-Request-ID, generates one
// otherwise, echoes it on the response and logs the request outcome.
func requestIDMiddleware(log *logrus.Logger) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		id := strings.TrimSpace(string(ctx.Request.Header.Get(requestIDHeader)))
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Response.Header.Set(requestIDHeader, id)

		start := time.Now()
		ctx.Next(withRequestID(c, id))

		if log != nil {
			log.WithFields(logrus.Fields{
				"request_id":  id,
				"method":      string(ctx.Method()),
				"path":        string(ctx.Path()),
				"status":      ctx.Response.StatusCode(),
				"duration_ms": time.Since(start).Milliseconds(),
			}).Info("request handled")
		}
	}
}
