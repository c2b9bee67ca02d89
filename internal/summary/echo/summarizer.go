// Package echo provides a deterministic summarizer that renders quote figures
// into a fixed English template. It implements the domain.QuoteSummarizer
// interface without making external calls, which makes it the default for
// development and the fallback when no model-backed summarizer is configured.
package echo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/davidbz/estimator/internal/domain"
	"github.com/davidbz/estimator/internal/observability"
)

const summarizerName = "echo"

// Summarizer implements the domain.QuoteSummarizer interface with a template.
type Summarizer struct {
	name string
}

// NewSummarizer creates a new echo summarizer.
func NewSummarizer() *Summarizer {
	return &Summarizer{
		name: summarizerName,
	}
}

// Summarize renders the quote figures as a short paragraph.
func (s *Summarizer) Summarize(ctx context.Context, req *domain.SummaryRequest) (string, error) {
	if req == nil || req.Result == nil {
		return "", errors.New("summary request must carry a result")
	}

	logger := observability.FromContext(ctx)
	logger.Debug("rendering echo summary")

	result := req.Result
	input := req.Input

	var b strings.Builder

	fmt.Fprintf(&b, "%s project (%s", titleCase(string(input.ProjectType)), input.Complexity)
	if len(input.Platforms) > 0 {
		fmt.Fprintf(&b, ", %s", joinKeys(input.Platforms))
	}
	fmt.Fprintf(&b, "): estimated development cost %s over %s.",
		usd(result.DevelopmentCost), weeks(result.DeadlineWeeks))

	fmt.Fprintf(&b, " Base %s", usd(result.Breakdown.BaseCost))
	if len(input.Features) > 0 {
		fmt.Fprintf(&b, ", features (%s) %s", joinKeys(input.Features), usd(result.Breakdown.FeaturesCost))
	}
	if input.Pages > 0 {
		fmt.Fprintf(&b, ", %d pages %s", input.Pages, usd(result.Breakdown.PagesCost))
	}
	fmt.Fprintf(&b, ", complexity x%s", factor(result.Breakdown.ComplexityMultiplier))
	if len(input.TechStack) > 0 {
		fmt.Fprintf(&b, ", stack (%s) x%s", joinKeys(input.TechStack), factor(result.Breakdown.TechAdjustmentFactor))
	}
	b.WriteString(".")

	fmt.Fprintf(&b, " First-year support: %s.", usd(result.SupportCost))

	return b.String(), nil
}

// Name returns the summarizer identifier.
func (s *Summarizer) Name() string {
	return s.name
}

func usd(amount int64) string {
	return "$" + humanize.Comma(amount)
}

func weeks(n int) string {
	if n == 1 {
		return "1 week"
	}
	return strconv.Itoa(n) + " weeks"
}

func factor(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func joinKeys[T ~string](keys []T) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}
