package domain

import "github.com/shopspring/decimal"

const (
	pagePriceUSD        = 120
	supportRate         = 0.15
	weeklyThroughputUSD = 2000
	minDeadlineWeeks    = 1
)

// StandardRateCard is the agency's published price table.
// It holds no state; every lookup is a closed switch over the enum.
type StandardRateCard struct{}

// NewStandardRateCard returns the published price table.
func NewStandardRateCard() StandardRateCard {
	return StandardRateCard{}
}

// BaseCost returns the starting price for a project category in USD.
func (StandardRateCard) BaseCost(projectType ProjectType) (decimal.Decimal, bool) {
	switch projectType {
	case ProjectMobile:
		return decimal.NewFromInt(8000), true
	case ProjectWeb:
		return decimal.NewFromInt(5000), true
	case ProjectTelegram:
		return decimal.NewFromInt(2500), true
	case ProjectDesktop:
		return decimal.NewFromInt(7000), true
	case ProjectOther:
		return decimal.NewFromInt(4000), true
	default:
		return decimal.Zero, false
	}
}

// ComplexityMultiplier returns the scope multiplier for a tier.
func (StandardRateCard) ComplexityMultiplier(complexity Complexity) (decimal.Decimal, bool) {
	switch complexity {
	case ComplexityMVP:
		return decimal.NewFromInt(1), true
	case ComplexityStandard:
		return decimal.NewFromFloat(1.5), true
	case ComplexityEnterprise:
		return decimal.NewFromInt(2), true
	default:
		return decimal.Zero, false
	}
}

// FeaturePrice returns the additive price of a feature in USD.
func (StandardRateCard) FeaturePrice(feature Feature) (decimal.Decimal, bool) {
	switch feature {
	case FeatureCamera:
		return decimal.NewFromInt(1000), true
	case FeatureGPS:
		return decimal.NewFromInt(1000), true
	case FeatureNotifications:
		return decimal.NewFromInt(700), true
	case FeaturePayments:
		return decimal.NewFromInt(1500), true
	case FeatureChat:
		return decimal.NewFromInt(2500), true
	case FeatureOffline:
		return decimal.NewFromInt(1200), true
	default:
		return decimal.Zero, false
	}
}

// TechAdjustment returns the multiplicative factor for a technology.
// Cross-platform frameworks are discounted, native toolchains carry a premium.
func (StandardRateCard) TechAdjustment(tech Tech) (decimal.Decimal, bool) {
	switch tech {
	case TechReact, TechVue, TechNodeJS, TechPython:
		return decimal.NewFromInt(1), true
	case TechNextJS, TechAngular, TechGolang:
		return decimal.NewFromFloat(1.1), true
	case TechFlutter, TechReactNative:
		return decimal.NewFromFloat(0.95), true
	case TechSwift, TechKotlin:
		return decimal.NewFromFloat(1.2), true
	case TechElectron:
		return decimal.NewFromFloat(0.9), true
	default:
		return decimal.Zero, false
	}
}

// PagePrice returns the price of a single page or screen in USD.
func (StandardRateCard) PagePrice() decimal.Decimal {
	return decimal.NewFromInt(pagePriceUSD)
}

// SupportRate returns the share of development cost charged for a year of support.
func (StandardRateCard) SupportRate() decimal.Decimal {
	return decimal.NewFromFloat(supportRate)
}

// WeeklyThroughput returns the development cost delivered per week.
func (StandardRateCard) WeeklyThroughput() decimal.Decimal {
	return decimal.NewFromInt(weeklyThroughputUSD)
}

// MinDeadlineWeeks returns the shortest deadline ever quoted.
func (StandardRateCard) MinDeadlineWeeks() int {
	return minDeadlineWeeks
}
