package domain

import "github.com/shopspring/decimal"

// RateCard exposes the static price table used by the estimator.
// Lookups report false for keys outside the table.
type RateCard interface {
	// BaseCost returns the starting price for a project category in USD.
	BaseCost(projectType ProjectType) (decimal.Decimal, bool)

	// ComplexityMultiplier returns the scope multiplier for a tier.
	ComplexityMultiplier(complexity Complexity) (decimal.Decimal, bool)

	// FeaturePrice returns the additive price of a feature in USD.
	FeaturePrice(feature Feature) (decimal.Decimal, bool)

	// TechAdjustment returns the multiplicative factor for a technology.
	TechAdjustment(tech Tech) (decimal.Decimal, bool)

	// PagePrice returns the price of a single page or screen in USD.
	PagePrice() decimal.Decimal

	// SupportRate returns the share of development cost charged for a year of support.
	SupportRate() decimal.Decimal

	// WeeklyThroughput returns the development cost delivered per week.
	WeeklyThroughput() decimal.Decimal

	// MinDeadlineWeeks returns the shortest deadline ever quoted.
	MinDeadlineWeeks() int
}

// RateCatalog is a serializable view of a rate card for form rendering.
type RateCatalog struct {
	BaseCosts             map[ProjectType]int64  `json:"baseCosts"`
	ComplexityMultipliers map[Complexity]float64 `json:"complexityMultipliers"`
	FeaturePrices         map[Feature]int64      `json:"featurePrices"`
	TechAdjustments       map[Tech]float64       `json:"techAdjustments"`
	Platforms             []Platform             `json:"platforms"`
	PagePrice             int64                  `json:"pagePrice"`
	SupportRate           float64                `json:"supportRate"`
}

// Catalog renders every entry of the rate card.
func Catalog(rates RateCard) RateCatalog {
	catalog := RateCatalog{
		BaseCosts:             make(map[ProjectType]int64, len(ProjectTypes())),
		ComplexityMultipliers: make(map[Complexity]float64, len(Complexities())),
		FeaturePrices:         make(map[Feature]int64, len(Features())),
		TechAdjustments:       make(map[Tech]float64, len(Techs())),
		Platforms:             Platforms(),
		PagePrice:             rates.PagePrice().IntPart(),
		SupportRate:           rates.SupportRate().InexactFloat64(),
	}

	for _, p := range ProjectTypes() {
		if cost, ok := rates.BaseCost(p); ok {
			catalog.BaseCosts[p] = cost.IntPart()
		}
	}

	for _, c := range Complexities() {
		if multiplier, ok := rates.ComplexityMultiplier(c); ok {
			catalog.ComplexityMultipliers[c] = multiplier.InexactFloat64()
		}
	}

	for _, f := range Features() {
		if price, ok := rates.FeaturePrice(f); ok {
			catalog.FeaturePrices[f] = price.IntPart()
		}
	}

	for _, t := range Techs() {
		if factor, ok := rates.TechAdjustment(t); ok {
			catalog.TechAdjustments[t] = factor.InexactFloat64()
		}
	}

	return catalog
}
