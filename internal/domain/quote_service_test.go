package domain_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/davidbz/estimator/internal/domain"
	"github.com/davidbz/estimator/internal/mocks"
	"github.com/davidbz/estimator/internal/observability"
)

// mockRegistry is a mock implementation of SummarizerRegistry for testing.
type mockRegistry struct {
	summarizers map[string]domain.QuoteSummarizer
}

func newMockRegistry() *mockRegistry {
	return &mockRegistry{
		summarizers: make(map[string]domain.QuoteSummarizer),
	}
}

func (m *mockRegistry) add(name string, summarizer domain.QuoteSummarizer) *mockRegistry {
	m.summarizers[name] = summarizer
	return m
}

func (m *mockRegistry) Register(_ context.Context, summarizer domain.QuoteSummarizer) error {
	m.summarizers[summarizer.Name()] = summarizer
	return nil
}

func (m *mockRegistry) Get(_ context.Context, name string) (domain.QuoteSummarizer, error) {
	summarizer, exists := m.summarizers[name]
	if !exists {
		return nil, fmt.Errorf("summarizer %s not found", name)
	}
	return summarizer, nil
}

func (m *mockRegistry) List(_ context.Context) ([]string, error) {
	names := make([]string, 0, len(m.summarizers))
	for name := range m.summarizers {
		names = append(names, name)
	}
	return names, nil
}

// recorderStub captures recorded quotes and rejections.
type recorderStub struct {
	quotes     []*domain.Quote
	rejections []string
}

func (r *recorderStub) RecordQuote(quote *domain.Quote) {
	r.quotes = append(r.quotes, quote)
}

func (r *recorderStub) RecordRejection(reason string) {
	r.rejections = append(r.rejections, reason)
}

var fixedNow = time.Date(2025, time.March, 3, 10, 30, 0, 0, time.FixedZone("CET", 3600))

func newTestService(
	registry domain.SummarizerRegistry,
	cache domain.QuoteCache,
	events domain.EventPublisher,
	recorder domain.QuoteRecorder,
	defaultSummarizer string,
) *domain.QuoteService {
	service := domain.NewQuoteService(
		domain.NewEstimator(domain.NewStandardRateCard()),
		registry,
		cache,
		events,
		recorder,
		domain.QuoteOptions{DefaultSummarizer: defaultSummarizer, CacheTTL: 15 * time.Minute},
	)
	service.SetClock(func() time.Time { return fixedNow }, func() string { return "quote-1" })
	return service
}

func webStandardRequest() *domain.QuoteRequest {
	return &domain.QuoteRequest{
		EstimateInput: domain.EstimateInput{
			ProjectType: domain.ProjectWeb,
			Complexity:  domain.ComplexityStandard,
			Pages:       5,
		},
	}
}

func TestQuoteService_CreateQuote(t *testing.T) {
	t.Run("should create, summarize and cache a quote", func(t *testing.T) {
		summarizer := mocks.NewMockQuoteSummarizer(t)
		summarizer.EXPECT().Name().Return("mock")
		summarizer.EXPECT().
			Summarize(mock.Anything, mock.MatchedBy(func(req *domain.SummaryRequest) bool {
				return req.Locale == "en" && req.Result.DevelopmentCost == 8400
			})).
			Return("A web project.", nil)

		cache := mocks.NewMockQuoteCache(t)
		cache.EXPECT().Get(mock.Anything, mock.AnythingOfType("string")).Return(nil, domain.ErrCacheMiss)
		cache.EXPECT().Set(mock.Anything, mock.AnythingOfType("string"), mock.Anything, 15*time.Minute).Return(nil)

		events := mocks.NewMockEventPublisher(t)
		events.EXPECT().
			Publish(mock.Anything, domain.EventQuoteCreated, mock.MatchedBy(func(data map[string]interface{}) bool {
				return data["quote_id"] == "quote-1" &&
					data["development_cost"] == int64(8400) &&
					data["cached"] == false
			})).
			Return()

		recorder := &recorderStub{}
		service := newTestService(newMockRegistry().add("mock", summarizer), cache, events, recorder, "mock")

		quote, err := service.CreateQuote(context.Background(), webStandardRequest())
		require.NoError(t, err)

		require.Equal(t, "quote-1", quote.ID)
		require.Equal(t, fixedNow.UTC(), quote.CreatedAt)
		require.Equal(t, "en", quote.Locale)
		require.Equal(t, "mock", quote.Summarizer)
		require.Equal(t, "A web project.", quote.Summary)
		require.False(t, quote.Cached)
		require.Equal(t, int64(8400), quote.Result.DevelopmentCost)
		require.Equal(t, int64(1260), quote.Result.SupportCost)
		require.Equal(t, 5, quote.Result.DeadlineWeeks)
		require.Len(t, recorder.quotes, 1)
		require.Empty(t, recorder.rejections)
	})

	t.Run("should return cached quote on hit without summarizing", func(t *testing.T) {
		summarizer := mocks.NewMockQuoteSummarizer(t)
		summarizer.EXPECT().Name().Return("mock")

		stored := &domain.Quote{
			ID:      "quote-0",
			Input:   webStandardRequest().EstimateInput,
			Result:  domain.EstimateResult{DevelopmentCost: 8400, DeadlineWeeks: 5, SupportCost: 1260},
			Summary: "A web project.",
			Locale:  "en",
		}

		cache := mocks.NewMockQuoteCache(t)
		cache.EXPECT().Get(mock.Anything, mock.AnythingOfType("string")).Return(stored, nil)

		recorder := &recorderStub{}
		service := newTestService(newMockRegistry().add("mock", summarizer), cache, nil, recorder, "mock")

		quote, err := service.CreateQuote(context.Background(), webStandardRequest())
		require.NoError(t, err)
		require.Equal(t, "quote-0", quote.ID)
		require.True(t, quote.Cached)
		require.Len(t, recorder.quotes, 1)
	})

	t.Run("should return error when request is nil", func(t *testing.T) {
		service := newTestService(nil, nil, nil, nil, "")

		quote, err := service.CreateQuote(context.Background(), nil)
		require.Error(t, err)
		require.Nil(t, quote)
		require.Contains(t, err.Error(), "request cannot be nil")
	})

	t.Run("should reject invalid input and record the failing field", func(t *testing.T) {
		// Cache and summarizer mocks fail the test if they are touched.
		cache := mocks.NewMockQuoteCache(t)
		summarizer := mocks.NewMockQuoteSummarizer(t)

		recorder := &recorderStub{}
		service := newTestService(newMockRegistry().add("mock", summarizer), cache, nil, recorder, "mock")

		req := webStandardRequest()
		req.Pages = -1

		quote, err := service.CreateQuote(context.Background(), req)
		require.Nil(t, quote)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		require.Equal(t, []string{"pages"}, recorder.rejections)
		require.Empty(t, recorder.quotes)
	})

	t.Run("should reject oversized page counts before touching the cache", func(t *testing.T) {
		cache := mocks.NewMockQuoteCache(t)

		recorder := &recorderStub{}
		service := newTestService(nil, cache, nil, recorder, "")

		req := webStandardRequest()
		req.Pages = 1 << 62

		quote, err := service.CreateQuote(context.Background(), req)
		require.Nil(t, quote)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		require.Equal(t, []string{"pages"}, recorder.rejections)
	})

	t.Run("should return figures without caching when summary fails", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		observability.SetLogger(zap.New(core))
		t.Cleanup(func() { observability.SetLogger(zap.NewNop()) })

		summarizer := mocks.NewMockQuoteSummarizer(t)
		summarizer.EXPECT().Name().Return("mock")
		summarizer.EXPECT().Summarize(mock.Anything, mock.Anything).Return("", errors.New("upstream timeout"))

		cache := mocks.NewMockQuoteCache(t)
		cache.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, domain.ErrCacheMiss)

		service := newTestService(newMockRegistry().add("mock", summarizer), cache, nil, nil, "mock")

		quote, err := service.CreateQuote(context.Background(), webStandardRequest())
		require.NoError(t, err)
		require.Empty(t, quote.Summary)
		require.Empty(t, quote.Summarizer)
		require.Equal(t, int64(8400), quote.Result.DevelopmentCost)

		entries := logs.FilterMessage("quote summary failed, returning figures only").All()
		require.Len(t, entries, 1)
		require.Equal(t, "quote-1", entries[0].ContextMap()["quote_id"])
	})

	t.Run("should continue when the cache backend fails", func(t *testing.T) {
		cache := mocks.NewMockQuoteCache(t)
		cache.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))
		cache.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection refused"))

		service := newTestService(nil, cache, nil, nil, "")

		quote, err := service.CreateQuote(context.Background(), webStandardRequest())
		require.NoError(t, err)
		require.Equal(t, int64(8400), quote.Result.DevelopmentCost)
		require.False(t, quote.Cached)
	})

	t.Run("should fall back to default summarizer when requested one is unknown", func(t *testing.T) {
		fallback := mocks.NewMockQuoteSummarizer(t)
		fallback.EXPECT().Name().Return("echo")
		fallback.EXPECT().Summarize(mock.Anything, mock.Anything).Return("echo summary", nil)

		service := newTestService(newMockRegistry().add("echo", fallback), nil, nil, nil, "echo")

		req := webStandardRequest()
		req.Summarizer = "unknown"
		req.Locale = "de"

		quote, err := service.CreateQuote(context.Background(), req)
		require.NoError(t, err)
		require.Equal(t, "echo", quote.Summarizer)
		require.Equal(t, "echo summary", quote.Summary)
		require.Equal(t, "de", quote.Locale)
	})

	t.Run("should price without optional dependencies", func(t *testing.T) {
		service := newTestService(nil, nil, nil, nil, "echo")
		require.False(t, service.CacheEnabled())

		quote, err := service.CreateQuote(context.Background(), webStandardRequest())
		require.NoError(t, err)
		require.Empty(t, quote.Summary)
		require.Equal(t, int64(8400), quote.Result.DevelopmentCost)
	})

	t.Run("should normalize input before pricing and caching", func(t *testing.T) {
		var keys []string
		cache := mocks.NewMockQuoteCache(t)
		cache.EXPECT().Get(mock.Anything, mock.Anything).
			Run(func(_ context.Context, key string) { keys = append(keys, key) }).
			Return(nil, domain.ErrCacheMiss)
		cache.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		service := newTestService(nil, cache, nil, nil, "")

		first := &domain.QuoteRequest{EstimateInput: domain.EstimateInput{
			ProjectType: domain.ProjectMobile,
			Complexity:  domain.ComplexityMVP,
			Features:    []domain.Feature{domain.FeatureGPS, domain.FeatureCamera},
		}}
		second := &domain.QuoteRequest{EstimateInput: domain.EstimateInput{
			ProjectType: domain.ProjectMobile,
			Complexity:  domain.ComplexityMVP,
			Features:    []domain.Feature{domain.FeatureCamera, domain.FeatureGPS, domain.FeatureCamera},
		}}

		quote, err := service.CreateQuote(context.Background(), first)
		require.NoError(t, err)
		require.Equal(t, []domain.Feature{domain.FeatureCamera, domain.FeatureGPS}, quote.Input.Features)

		_, err = service.CreateQuote(context.Background(), second)
		require.NoError(t, err)

		require.Len(t, keys, 2)
		require.Equal(t, keys[0], keys[1])
	})
}

func TestQuoteService_Catalog(t *testing.T) {
	service := newTestService(nil, nil, nil, nil, "")

	catalog := service.Catalog()
	require.Equal(t, int64(5000), catalog.BaseCosts[domain.ProjectWeb])
	require.InDelta(t, 1.5, catalog.ComplexityMultipliers[domain.ComplexityStandard], 0.0001)
	require.Equal(t, int64(120), catalog.PagePrice)
}
