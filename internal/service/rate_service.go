package service

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Contribution rates are percentages applied to approved purchases and must
// stay within [0, 10].
const (
	MinContributionRate = 0.0
	MaxContributionRate = 10.0
)

var ErrRateOutOfRange = errors.New("contribution rate must be between 0% and 10%")

// ValidContributionRate reports whether rate is within the allowed range.
func ValidContributionRate(rate float64) bool {
	return rate >= MinContributionRate && rate <= MaxContributionRate
}

// RateService owns the merchant's store-level contribution rate. An
// out-of-range save leaves the committed rate untouched.
type RateService interface {
	Rate() float64
	Save(ctx context.Context, rate float64) (float64, error)
}

type rateService struct {
	mu    sync.RWMutex
	rate  float64
	delay time.Duration
}

func NewRateService(initial float64, delay time.Duration) RateService {
	return &rateService{rate: initial, delay: delay}
}

func (s *rateService) Rate() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rate
}

func (s *rateService) Save(ctx context.Context, rate float64) (float64, error) {
	if !ValidContributionRate(rate) {
		return s.Rate(), ErrRateOutOfRange
	}

	if err := wait(ctx, s.delay); err != nil {
		return s.Rate(), err
	}

	s.mu.Lock()
	s.rate = rate
	s.mu.Unlock()
	return rate, nil
}
