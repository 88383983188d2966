package service

import (
	"context"
	"errors"
	"time"

	"go-loyalty-admin/internal/model"
	"go-loyalty-admin/internal/repository"
)

// ErrLookupUnavailable marks a failed lookup as retryable instead of
// silently returning an empty result set.
var ErrLookupUnavailable = errors.New("customer lookup is temporarily unavailable")

type CustomerService interface {
	Search(ctx context.Context, term string) ([]model.Customer, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
	delay        time.Duration
}

func NewCustomerService(customerRepo repository.CustomerRepository, delay time.Duration) CustomerService {
	return &customerService{customerRepo: customerRepo, delay: delay}
}

func (s *customerService) Search(ctx context.Context, term string) ([]model.Customer, error) {
	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}

	customers, err := s.customerRepo.Search(term)
	if err != nil {
		return nil, ErrLookupUnavailable
	}
	return customers, nil
}
