package domain

import "time"

// EstimateInput holds the selections made in the estimator form.
type EstimateInput struct {
	ProjectType ProjectType `json:"projectType"          validate:"required,project_type"`
	Complexity  Complexity  `json:"complexity"           validate:"required,complexity"`
	Features    []Feature   `json:"features,omitempty"`
	Pages       int         `json:"pages"                validate:"min=0,max=10000"`
	Platforms   []Platform  `json:"platforms,omitempty"`
	TechStack   []Tech      `json:"techStack,omitempty"`
}

// EstimateResult is the priced outcome of an estimate.
type EstimateResult struct {
	DevelopmentCost int64     `json:"developmentCost"` // USD
	DeadlineWeeks   int       `json:"deadlineWeeks"`
	SupportCost     int64     `json:"supportCost"` // USD, first year
	Breakdown       Breakdown `json:"breakdown"`
}

// Breakdown itemizes the components of the development cost.
type Breakdown struct {
	BaseCost             int64   `json:"baseCost"`
	ComplexityMultiplier float64 `json:"complexityMultiplier"`
	FeaturesCost         int64   `json:"featuresCost"`
	PagesCost            int64   `json:"pagesCost"`
	TechAdjustmentFactor float64 `json:"techAdjustmentFactor"`
}

// QuoteRequest is an estimate request together with presentation options.
type QuoteRequest struct {
	EstimateInput

	Summarizer string `json:"summarizer,omitempty"`
	Locale     string `json:"locale,omitempty"`
}

// Quote wraps an estimate with identity and a readable summary.
type Quote struct {
	ID         string         `json:"id"`
	Input      EstimateInput  `json:"input"`
	Result     EstimateResult `json:"result"`
	Summary    string         `json:"summary,omitempty"`
	Summarizer string         `json:"summarizer,omitempty"`
	Locale     string         `json:"locale"`
	CreatedAt  time.Time      `json:"createdAt"`
	Cached     bool           `json:"cached"`
}

// SummaryRequest carries what a summarizer needs to describe a quote.
type SummaryRequest struct {
	Input  EstimateInput
	Result *EstimateResult
	Locale string
}
