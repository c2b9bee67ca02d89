package domain

import (
	"fmt"
	"math"
	"slices"

	"github.com/shopspring/decimal"
)

// maxAmountUSD is the largest amount an EstimateResult field can carry.
//
//nolint:gochecknoglobals // Immutable bound
var maxAmountUSD = decimal.NewFromInt(math.MaxInt64)

// Estimator prices project selections against a rate card.
// It holds no mutable state and is safe for concurrent use.
type Estimator struct {
	rates     RateCard
	validator *InputValidator
}

// NewEstimator creates an estimator bound to the given rate card (DI constructor).
func NewEstimator(rates RateCard) *Estimator {
	return &Estimator{
		rates:     rates,
		validator: NewInputValidator(),
	}
}

// Rates returns the rate card the estimator prices against.
func (e *Estimator) Rates() RateCard {
	return e.rates
}

// Normalize validates input and returns its canonical form: optional sets
// deduplicated and sorted, unknown keys dropped, platforms kept for mobile only.
func (e *Estimator) Normalize(input EstimateInput) (EstimateInput, error) {
	if err := e.validator.Validate(input); err != nil {
		return EstimateInput{}, err
	}

	normalized := EstimateInput{
		ProjectType: input.ProjectType,
		Complexity:  input.Complexity,
		Pages:       input.Pages,
		Features: canonicalSet(input.Features, func(f Feature) bool {
			_, ok := e.rates.FeaturePrice(f)
			return ok
		}),
		TechStack: canonicalSet(input.TechStack, func(t Tech) bool {
			_, ok := e.rates.TechAdjustment(t)
			return ok
		}),
	}

	if input.ProjectType == ProjectMobile {
		normalized.Platforms = canonicalSet(input.Platforms, Platform.IsValid)
	}

	return normalized, nil
}

// Estimate computes the development cost, deadline and support cost for input.
// Invalid input is rejected with an error wrapping ErrInvalidInput.
func (e *Estimator) Estimate(input EstimateInput) (*EstimateResult, error) {
	normalized, err := e.Normalize(input)
	if err != nil {
		return nil, err
	}

	return e.estimateNormalized(normalized)
}

// estimateNormalized prices input that has already passed Normalize.
func (e *Estimator) estimateNormalized(normalized EstimateInput) (*EstimateResult, error) {
	base, ok := e.rates.BaseCost(normalized.ProjectType)
	if !ok {
		return nil, fmt.Errorf("%w: no base cost for project type %q", ErrInvalidInput, normalized.ProjectType)
	}

	multiplier, ok := e.rates.ComplexityMultiplier(normalized.Complexity)
	if !ok {
		return nil, fmt.Errorf("%w: no multiplier for complexity %q", ErrInvalidInput, normalized.Complexity)
	}

	featuresCost := decimal.Zero
	for _, f := range normalized.Features {
		price, _ := e.rates.FeaturePrice(f)
		featuresCost = featuresCost.Add(price)
	}

	pagesCost := e.rates.PagePrice().Mul(decimal.NewFromInt(int64(normalized.Pages)))

	techFactor := decimal.NewFromInt(1)
	for _, t := range normalized.TechStack {
		factor, _ := e.rates.TechAdjustment(t)
		techFactor = techFactor.Mul(factor)
	}

	// Round once, after every multiplier has been applied.
	developmentCost := base.Add(featuresCost).Add(pagesCost).
		Mul(multiplier).
		Mul(techFactor).
		Round(0)

	supportCost := developmentCost.Mul(e.rates.SupportRate()).Round(0)

	for _, amount := range []decimal.Decimal{base, featuresCost, pagesCost, developmentCost, supportCost} {
		if amount.GreaterThan(maxAmountUSD) {
			return nil, fmt.Errorf("%w: amount %s exceeds the representable range", ErrInvalidInput, amount)
		}
	}

	return &EstimateResult{
		DevelopmentCost: developmentCost.IntPart(),
		DeadlineWeeks:   e.deadlineWeeks(developmentCost),
		SupportCost:     supportCost.IntPart(),
		Breakdown: Breakdown{
			BaseCost:             base.IntPart(),
			ComplexityMultiplier: multiplier.InexactFloat64(),
			FeaturesCost:         featuresCost.IntPart(),
			PagesCost:            pagesCost.IntPart(),
			TechAdjustmentFactor: techFactor.InexactFloat64(),
		},
	}, nil
}

// deadlineWeeks maps cost to calendar weeks at a fixed weekly throughput.
func (e *Estimator) deadlineWeeks(developmentCost decimal.Decimal) int {
	weeks := max(e.rates.MinDeadlineWeeks(), 1)

	throughput := e.rates.WeeklyThroughput()
	if !throughput.IsPositive() {
		return weeks
	}

	computed := int(developmentCost.Div(throughput).Ceil().IntPart())
	return max(computed, weeks)
}

// canonicalSet drops unknown and duplicate keys and sorts the rest.
func canonicalSet[T ~string](values []T, known func(T) bool) []T {
	if len(values) == 0 {
		return nil
	}

	set := make([]T, 0, len(values))
	for _, v := range values {
		if known(v) && !slices.Contains(set, v) {
			set = append(set, v)
		}
	}

	if len(set) == 0 {
		return nil
	}

	slices.Sort(set)
	return set
}
