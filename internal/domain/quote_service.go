package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/davidbz/estimator/internal/observability"
)

const (
	defaultLocale   = "en"
	defaultCacheTTL = 1 * time.Hour

	// EventQuoteCreated is published for every quote returned to a caller.
	EventQuoteCreated = "quote.created"
)

// QuoteOptions tunes quote presentation and caching.
type QuoteOptions struct {
	DefaultSummarizer string
	CacheTTL          time.Duration
}

// QuoteService orchestrates estimation, summaries and caching.
type QuoteService struct {
	estimator   *Estimator
	summarizers SummarizerRegistry
	cache       QuoteCache
	events      EventPublisher
	recorder    QuoteRecorder
	options     QuoteOptions
	now         func() time.Time
	newID       func() string
}

// NewQuoteService creates a new quote service (DI constructor).
// Summarizers, cache, events and recorder are optional and may be nil.
func NewQuoteService(
	estimator *Estimator,
	summarizers SummarizerRegistry,
	cache QuoteCache,
	events EventPublisher,
	recorder QuoteRecorder,
	options QuoteOptions,
) *QuoteService {
	if options.CacheTTL <= 0 {
		options.CacheTTL = defaultCacheTTL
	}

	return &QuoteService{
		estimator:   estimator,
		summarizers: summarizers,
		cache:       cache,
		events:      events,
		recorder:    recorder,
		options:     options,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// CacheEnabled reports whether quotes are cached.
func (s *QuoteService) CacheEnabled() bool {
	return s.cache != nil
}

// Catalog returns the rate catalog the service prices against.
func (s *QuoteService) Catalog() RateCatalog {
	return Catalog(s.estimator.Rates())
}

// CreateQuote validates, prices and summarizes a quote request.
func (s *QuoteService) CreateQuote(ctx context.Context, req *QuoteRequest) (*Quote, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	input, err := s.estimator.Normalize(req.EstimateInput)
	if err != nil {
		s.recordRejection(err)
		return nil, err
	}

	ctx = observability.WithProjectType(ctx, string(input.ProjectType))
	ctx = observability.WithComplexity(ctx, string(input.Complexity))
	logger := observability.FromContext(ctx)

	locale := req.Locale
	if locale == "" {
		locale = defaultLocale
	}

	summarizer := s.resolveSummarizer(ctx, req.Summarizer)
	summarizerName := ""
	if summarizer != nil {
		summarizerName = summarizer.Name()
	}

	cacheKey, keyErr := QuoteCacheKey(input, summarizerName, locale)
	if keyErr != nil {
		logger.Warn("failed to derive cache key, continuing without cache",
			observability.Error(keyErr))
	}

	if keyErr == nil {
		if cached := s.lookup(ctx, cacheKey); cached != nil {
			s.finish(ctx, cached)
			return cached, nil
		}
	}

	result, err := s.estimator.estimateNormalized(input)
	if err != nil {
		return nil, fmt.Errorf("estimate failed: %w", err)
	}

	quote := &Quote{
		ID:        s.newID(),
		Input:     input,
		Result:    *result,
		Locale:    locale,
		CreatedAt: s.now().UTC(),
	}

	ctx = observability.WithQuoteID(ctx, quote.ID)
	logger = observability.FromContext(ctx)

	summarized := true
	if summarizer != nil {
		summary, sumErr := summarizer.Summarize(ctx, &SummaryRequest{
			Input:  input,
			Result: result,
			Locale: locale,
		})
		if sumErr != nil {
			summarized = false
			logger.Warn("quote summary failed, returning figures only",
				observability.String("summarizer", summarizerName),
				observability.Error(sumErr))
		} else {
			quote.Summary = summary
			quote.Summarizer = summarizerName
		}
	}

	// A failed summary is not cached so that the next identical request retries it.
	if s.cache != nil && keyErr == nil && summarized {
		if setErr := s.cache.Set(ctx, cacheKey, quote, s.options.CacheTTL); setErr != nil {
			logger.Warn("failed to store quote in cache",
				observability.Error(setErr))
		}
	}

	s.finish(ctx, quote)
	return quote, nil
}

// lookup returns a cached quote or nil on miss and on cache failure.
func (s *QuoteService) lookup(ctx context.Context, key string) *Quote {
	logger := observability.FromContext(ctx)

	if s.cache == nil {
		logger.Debug("quote cache is disabled (nil cache)")
		return nil
	}

	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			logger.Warn("cache get failed, continuing without cache",
				observability.Error(err))
		}
		logger.Debug("quote cache MISS")
		return nil
	}

	if cached == nil {
		return nil
	}

	logger.Info("quote cache HIT",
		observability.String("quote_id", cached.ID))

	cached.Cached = true
	return cached
}

// resolveSummarizer picks the requested summarizer, falling back to the default.
func (s *QuoteService) resolveSummarizer(ctx context.Context, requested string) QuoteSummarizer {
	if s.summarizers == nil {
		return nil
	}

	logger := observability.FromContext(ctx)

	name := requested
	if name == "" {
		name = s.options.DefaultSummarizer
	}
	if name == "" {
		return nil
	}

	summarizer, err := s.summarizers.Get(ctx, name)
	if err == nil {
		return summarizer
	}

	if name == s.options.DefaultSummarizer || s.options.DefaultSummarizer == "" {
		logger.Warn("summarizer unavailable",
			observability.String("summarizer", name),
			observability.Error(err))
		return nil
	}

	logger.Info("requested summarizer unavailable, using default",
		observability.String("requested", name),
		observability.String("default", s.options.DefaultSummarizer))

	fallback, err := s.summarizers.Get(ctx, s.options.DefaultSummarizer)
	if err != nil {
		logger.Warn("default summarizer unavailable",
			observability.String("summarizer", s.options.DefaultSummarizer),
			observability.Error(err))
		return nil
	}

	return fallback
}

func (s *QuoteService) finish(ctx context.Context, quote *Quote) {
	if s.recorder != nil {
		s.recorder.RecordQuote(quote)
	}

	if s.events != nil {
		s.events.Publish(ctx, EventQuoteCreated, map[string]interface{}{
			"quote_id":         quote.ID,
			"project_type":     string(quote.Input.ProjectType),
			"complexity":       string(quote.Input.Complexity),
			"development_cost": quote.Result.DevelopmentCost,
			"deadline_weeks":   quote.Result.DeadlineWeeks,
			"cached":           quote.Cached,
		})
	}
}

func (s *QuoteService) recordRejection(err error) {
	if s.recorder == nil {
		return
	}

	reason := "invalid"
	var validationErr *ValidationError
	if errors.As(err, &validationErr) && len(validationErr.Fields) > 0 {
		reason = validationErr.Fields[0].Field
	}

	s.recorder.RecordRejection(reason)
}
