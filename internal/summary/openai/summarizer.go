// Package openai provides a quote summarizer backed by the OpenAI chat
// completions API using the official SDK. It implements the
// domain.QuoteSummarizer interface; the prompt carries the already computed
// figures so the model only phrases them and never prices anything itself.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/davidbz/estimator/internal/domain"
	"github.com/davidbz/estimator/internal/observability"
)

const (
	summarizerName = "openai"
	temperature    = 0.3
)

const systemPrompt = "You write short, friendly cost estimate summaries for a software development agency. " +
	"Use only the figures provided, never recompute or change them, and state amounts in USD. " +
	"Answer in at most four sentences."

// Summarizer implements the domain.QuoteSummarizer interface for OpenAI.
type Summarizer struct {
	client    openai.Client
	name      string
	model     string
	maxTokens int
}

// NewSummarizer creates a new OpenAI summarizer.
func NewSummarizer(config Config) (*Summarizer, error) {
	if config.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(config.Timeout)*time.Second))
	}

	if config.MaxRetries > 0 {
		opts = append(opts, option.WithMaxRetries(config.MaxRetries))
	}

	if config.Model == "" {
		config.Model = string(openai.ChatModelGPT4oMini)
	}

	return &Summarizer{
		client:    openai.NewClient(opts...),
		name:      summarizerName,
		model:     config.Model,
		maxTokens: config.MaxTokens,
	}, nil
}

// Summarize asks the model to phrase the quote figures.
func (s *Summarizer) Summarize(ctx context.Context, req *domain.SummaryRequest) (string, error) {
	if req == nil || req.Result == nil {
		return "", errors.New("summary request must carry a result")
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling OpenAI API", observability.String("model", s.model))

	params, err := s.toSDKParams(req)
	if err != nil {
		return "", err
	}

	resp, err := s.client.Chat.Completions.New(ctx, params)
	if err != nil {
		logger.Error("OpenAI API call failed", observability.Error(err))
		return "", fmt.Errorf("OpenAI API call failed: %w", err)
	}

	logger.Debug("OpenAI API call succeeded",
		observability.Int("prompt_tokens", int(resp.Usage.PromptTokens)),
		observability.Int("completion_tokens", int(resp.Usage.CompletionTokens)),
	)

	if len(resp.Choices) == 0 {
		return "", errors.New("OpenAI returned no choices")
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", errors.New("OpenAI returned an empty summary")
	}

	return summary, nil
}

// Name returns the summarizer identifier.
func (s *Summarizer) Name() string {
	return s.name
}

// toSDKParams builds the chat completion request for a quote.
func (s *Summarizer) toSDKParams(req *domain.SummaryRequest) (openai.ChatCompletionNewParams, error) {
	prompt, err := BuildPrompt(req)
	if err != nil {
		return openai.ChatCompletionNewParams{}, err
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(temperature),
	}

	if s.maxTokens > 0 {
		params.MaxTokens = openai.Int(int64(s.maxTokens))
	}

	return params, nil
}

// BuildPrompt renders the user message sent to the model.
func BuildPrompt(req *domain.SummaryRequest) (string, error) {
	figures, err := json.Marshal(struct {
		Input  domain.EstimateInput   `json:"input"`
		Result *domain.EstimateResult `json:"result"`
	}{
		Input:  req.Input,
		Result: req.Result,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal quote figures: %w", err)
	}

	locale := req.Locale
	if locale == "" {
		locale = "en"
	}

	return fmt.Sprintf("Language: %s\nQuote figures (JSON): %s", locale, figures), nil
}
