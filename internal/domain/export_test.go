package domain

import "time"

// SetClock pins quote timestamps and identifiers in tests.
func (s *QuoteService) SetClock(now func() time.Time, newID func() string) {
	s.now = now
	s.newID = newID
}

// EstimateNormalized exposes the pricing step used by QuoteService.
func (e *Estimator) EstimateNormalized(normalized EstimateInput) (*EstimateResult, error) {
	return e.estimateNormalized(normalized)
}
