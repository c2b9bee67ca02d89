package domain

import "context"

// QuoteSummarizer turns an estimate into a short readable narrative.
type QuoteSummarizer interface {
	// Summarize describes the priced estimate without changing its figures.
	Summarize(ctx context.Context, req *SummaryRequest) (string, error)

	// Name returns the summarizer identifier.
	Name() string
}

// SummarizerRegistry manages available summarizers.
type SummarizerRegistry interface {
	// Register adds a summarizer to the registry.
	Register(ctx context.Context, summarizer QuoteSummarizer) error

	// Get retrieves a summarizer by name.
	Get(ctx context.Context, name string) (QuoteSummarizer, error)

	// List returns all registered summarizer names.
	List(ctx context.Context) ([]string, error)
}

// EventPublisher publishes events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}

// QuoteRecorder records quote outcomes for metrics.
type QuoteRecorder interface {
	// RecordQuote observes a produced quote.
	RecordQuote(quote *Quote)

	// RecordRejection counts an input rejected by validation.
	RecordRejection(reason string)
}
