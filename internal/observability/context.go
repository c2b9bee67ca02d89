package observability

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

type contextKey string

const (
	traceIDBytes = 16 // OpenTelemetry trace ID size in bytes
	spanIDBytes  = 8  // OpenTelemetry span ID size in bytes
)

const (
	// TraceIDKey holds the OpenTelemetry trace ID.
	TraceIDKey contextKey = "trace_id"

	// SpanIDKey holds the OpenTelemetry span ID.
	SpanIDKey contextKey = "span_id"

	// RequestIDKey holds the unique request identifier.
	RequestIDKey contextKey = "request_id"

	// QuoteIDKey holds the identifier of the quote being produced.
	QuoteIDKey contextKey = "quote_id"

	// ProjectTypeKey holds the project category being estimated.
	ProjectTypeKey contextKey = "project_type"

	// ComplexityKey holds the complexity tier being estimated.
	ComplexityKey contextKey = "complexity"
)

// WithTraceID injects trace ID into context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// WithSpanID injects span ID into context.
func WithSpanID(ctx context.Context, spanID string) context.Context {
	return context.WithValue(ctx, SpanIDKey, spanID)
}

// WithRequestID injects request ID into context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// WithQuoteID injects quote ID into context.
func WithQuoteID(ctx context.Context, quoteID string) context.Context {
	return context.WithValue(ctx, QuoteIDKey, quoteID)
}

// WithProjectType injects the project category into context.
func WithProjectType(ctx context.Context, projectType string) context.Context {
	return context.WithValue(ctx, ProjectTypeKey, projectType)
}

// WithComplexity injects the complexity tier into context.
func WithComplexity(ctx context.Context, complexity string) context.Context {
	return context.WithValue(ctx, ComplexityKey, complexity)
}

// GetTraceID extracts trace ID from context.
func GetTraceID(ctx context.Context) string {
	return stringValue(ctx, TraceIDKey)
}

// GetSpanID extracts span ID from context.
func GetSpanID(ctx context.Context) string {
	return stringValue(ctx, SpanIDKey)
}

// GetRequestID extracts request ID from context.
func GetRequestID(ctx context.Context) string {
	return stringValue(ctx, RequestIDKey)
}

// GetQuoteID extracts quote ID from context.
func GetQuoteID(ctx context.Context) string {
	return stringValue(ctx, QuoteIDKey)
}

// GetProjectType extracts the project category from context.
func GetProjectType(ctx context.Context) string {
	return stringValue(ctx, ProjectTypeKey)
}

// GetComplexity extracts the complexity tier from context.
func GetComplexity(ctx context.Context) string {
	return stringValue(ctx, ComplexityKey)
}

func stringValue(ctx context.Context, key contextKey) string {
	if value, ok := ctx.Value(key).(string); ok {
		return value
	}
	return ""
}

// GenerateTraceID generates an OpenTelemetry-compatible trace ID (32 hex chars).
func GenerateTraceID() string {
	bytes := make([]byte, traceIDBytes)
	if _, err := rand.Read(bytes); err != nil {
		return uuid.New().String()
	}
	return hex.EncodeToString(bytes)
}

// GenerateSpanID generates an OpenTelemetry-compatible span ID (16 hex chars).
func GenerateSpanID() string {
	bytes := make([]byte, spanIDBytes)
	if _, err := rand.Read(bytes); err != nil {
		return uuid.New().String()[:16]
	}
	return hex.EncodeToString(bytes)
}

// GenerateRequestID generates a unique request identifier (UUID).
func GenerateRequestID() string {
	return uuid.New().String()
}
