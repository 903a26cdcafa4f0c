// Package ctxdata carries request-scoped metadata (correlation id) through
// context so every log line and outbound call can reference it.
package ctxdata

import "context"

type contextKey string

const (
	correlationIdKey contextKey = "correlation-id"
	hostKey          contextKey = "host"
)

// Setter mutates one context entry. Combine with Sets.
type Setter func(ctx context.Context) context.Context

func SetCorrelationId(id string) Setter {
	return func(ctx context.Context) context.Context {
		return context.WithValue(ctx, correlationIdKey, id)
	}
}

// Sets applies every setter in order and returns the derived context.
func Sets(ctx context.Context, setters ...Setter) context.Context {
	for _, set := range setters {
		ctx = set(ctx)
	}
	return ctx
}

func SetHost(host string) Setter {
	return func(ctx context.Context) context.Context {
		return context.WithValue(ctx, hostKey, host)
	}
}

func GetCorrelationId(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(correlationIdKey).(string); ok {
		return id
	}
	return ""
}

func GetHost(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if host, ok := ctx.Value(hostKey).(string); ok {
		return host
	}
	return ""
}
