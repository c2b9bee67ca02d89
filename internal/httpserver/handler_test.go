package httpserver //nolint:testpackage // Need access to unexported setCacheHeader function

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/estimator/internal/config"
	"github.com/davidbz/estimator/internal/domain"
	"github.com/davidbz/estimator/internal/httpserver/middleware"
	"github.com/davidbz/estimator/internal/metrics"
	"github.com/davidbz/estimator/internal/mocks"
	"github.com/davidbz/estimator/internal/summary/echo"
	"github.com/davidbz/estimator/internal/summary/registry"
)

func newQuoteService(t *testing.T, cache domain.QuoteCache) *domain.QuoteService {
	t.Helper()

	summarizers := registry.NewRegistry()
	require.NoError(t, summarizers.Register(context.Background(), echo.NewSummarizer()))

	return domain.NewQuoteService(
		domain.NewEstimator(domain.NewStandardRateCard()),
		summarizers,
		cache,
		nil,
		nil,
		domain.QuoteOptions{DefaultSummarizer: "echo"},
	)
}

func postEstimate(handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/estimates", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandleEstimate_Success(t *testing.T) {
	handler := NewHandler(newQuoteService(t, nil))

	rec := postEstimate(handler.HandleEstimate, `{"projectType":"web","complexity":"standard","pages":5}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Empty(t, rec.Header().Get(headerCache), "no cache header when caching is disabled")

	var quote domain.Quote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quote))
	require.NotEmpty(t, quote.ID)
	require.Equal(t, int64(8400), quote.Result.DevelopmentCost)
	require.Equal(t, int64(1260), quote.Result.SupportCost)
	require.Equal(t, 5, quote.Result.DeadlineWeeks)
	require.Equal(t, int64(600), quote.Result.Breakdown.PagesCost)
	require.Equal(t, "echo", quote.Summarizer)
	require.Contains(t, quote.Summary, "$8,400")
}

func TestHandleEstimate_CacheHit_SetsHeader(t *testing.T) {
	mockCache := mocks.NewMockQuoteCache(t)
	mockCache.EXPECT().
		Get(mock.Anything, mock.AnythingOfType("string")).
		Return(&domain.Quote{
			ID:     "quote-cached",
			Result: domain.EstimateResult{DevelopmentCost: 9500, DeadlineWeeks: 5, SupportCost: 1425},
		}, nil)

	handler := NewHandler(newQuoteService(t, mockCache))

	rec := postEstimate(handler.HandleEstimate,
		`{"projectType":"mobile","complexity":"mvp","features":["camera","gps"],"techStack":["flutter"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "HIT", rec.Header().Get(headerCache))

	var quote domain.Quote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quote))
	require.Equal(t, "quote-cached", quote.ID)
	require.True(t, quote.Cached)
}

func TestHandleEstimate_CacheMiss_SetsHeader(t *testing.T) {
	mockCache := mocks.NewMockQuoteCache(t)
	mockCache.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, domain.ErrCacheMiss)
	mockCache.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	handler := NewHandler(newQuoteService(t, mockCache))

	rec := postEstimate(handler.HandleEstimate, `{"projectType":"telegram","complexity":"mvp"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "MISS", rec.Header().Get(headerCache))
}

func TestHandleEstimate_Errors(t *testing.T) {
	handler := NewHandler(newQuoteService(t, nil))

	tests := []struct {
		name          string
		method        string
		body          string
		expectedCode  int
		expectedError string
		expectedField string
	}{
		{
			name:          "wrong method",
			method:        http.MethodGet,
			expectedCode:  http.StatusMethodNotAllowed,
			expectedError: "method not allowed",
		},
		{
			name:          "malformed json",
			method:        http.MethodPost,
			body:          `{"projectType":`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "fractional pages",
			method:        http.MethodPost,
			body:          `{"projectType":"web","complexity":"mvp","pages":2.5}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "unknown project type",
			method:        http.MethodPost,
			body:          `{"projectType":"spaceship","complexity":"mvp"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid estimate input",
			expectedField: "projectType",
		},
		{
			name:          "pages at the integer limit",
			method:        http.MethodPost,
			body:          `{"projectType":"web","complexity":"standard","pages":9223372036854775807}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid estimate input",
			expectedField: "pages",
		},
		{
			name:          "pages above the form limit",
			method:        http.MethodPost,
			body:          `{"projectType":"web","complexity":"standard","pages":10001}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid estimate input",
			expectedField: "pages",
		},
		{
			name:          "trailing data after the json object",
			method:        http.MethodPost,
			body:          `{"projectType":"web","complexity":"mvp"}garbage`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "unexpected data after JSON object",
		},
		{
			name:          "second json object",
			method:        http.MethodPost,
			body:          `{"projectType":"web","complexity":"mvp"} {"projectType":"mobile"}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "unexpected data after JSON object",
		},
		{
			name:          "negative pages",
			method:        http.MethodPost,
			body:          `{"projectType":"web","complexity":"mvp","pages":-1}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid estimate input",
			expectedField: "pages",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/estimates", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.HandleEstimate(rec, req)

			require.Equal(t, tt.expectedCode, rec.Code)

			var body errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Contains(t, body.Error, tt.expectedError)

			if tt.expectedField != "" {
				require.Len(t, body.Fields, 1)
				require.Equal(t, tt.expectedField, body.Fields[0].Field)
			}
		})
	}
}

func TestHandleEstimate_TrailingWhitespaceAccepted(t *testing.T) {
	handler := NewHandler(newQuoteService(t, nil))

	rec := postEstimate(handler.HandleEstimate, "{\"projectType\":\"web\",\"complexity\":\"mvp\"}\n\n")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleEstimate_BodyTooLarge(t *testing.T) {
	handler := NewHandler(newQuoteService(t, nil))

	padding := bytes.Repeat([]byte(" "), maxRequestBodyBytes+1)
	body := append(padding, []byte(`{"projectType":"web","complexity":"mvp"}`)...)

	rec := postEstimate(handler.HandleEstimate, string(body))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRates(t *testing.T) {
	handler := NewHandler(newQuoteService(t, nil))

	rec := httptest.NewRecorder()
	handler.HandleRates(rec, httptest.NewRequest(http.MethodGet, "/v1/rates", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "public, max-age=300", rec.Header().Get("Cache-Control"))

	var catalog domain.RateCatalog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &catalog))
	require.Equal(t, int64(8000), catalog.BaseCosts[domain.ProjectMobile])
	require.Equal(t, int64(1500), catalog.FeaturePrices[domain.FeaturePayments])
	require.Equal(t, int64(120), catalog.PagePrice)

	rec = httptest.NewRecorder()
	handler.HandleRates(rec, httptest.NewRequest(http.MethodPost, "/v1/rates", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSetCacheHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	setCacheHeader(rec, true)
	require.Equal(t, "HIT", rec.Header().Get(headerCache))

	rec = httptest.NewRecorder()
	setCacheHeader(rec, false)
	require.Equal(t, "MISS", rec.Header().Get(headerCache))
}

func TestServer_Routes(t *testing.T) {
	reg := prometheus.NewRegistry()
	httpMetrics, err := metrics.NewHTTPMetrics(reg)
	require.NoError(t, err)

	chain := middleware.BuildMiddlewareChain(&config.CORSConfig{
		AllowedOrigins: []string{"https://agency.example"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	server := NewServer(
		&config.ServerConfig{Port: 0, ReadTimeout: 5, WriteTimeout: 5},
		NewHandler(newQuoteService(t, nil)),
		chain,
		httpMetrics,
		reg,
	)

	ts := httptest.NewServer(server.Routes())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/v1/estimates", "application/json",
		strings.NewReader(`{"projectType":"web","complexity":"standard","pages":5}`))
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	resp, err = http.Get(ts.URL + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	require.Contains(t, buf.String(), `estimator_http_requests_total{code="200",method="post",path="/v1/estimates"} 1`)
}
