package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-loyalty-admin/internal/model"
	"go-loyalty-admin/internal/repository"
)

type failingCustomerRepo struct{}

func (failingCustomerRepo) FindAll() ([]model.Customer, error) {
	return nil, errors.New("upstream down")
}

func (failingCustomerRepo) Search(string) ([]model.Customer, error) {
	return nil, errors.New("upstream down")
}

func TestCustomerSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty term returns the whole collection", func(t *testing.T) {
		svc := NewCustomerService(repository.NewCustomerRepo(), 0)

		customers, err := svc.Search(ctx, "")
		require.NoError(t, err)
		assert.Len(t, customers, 4)
	})

	t.Run("Matches name email and id", func(t *testing.T) {
		svc := NewCustomerService(repository.NewCustomerRepo(), 0)

		byName, err := svc.Search(ctx, "emma")
		require.NoError(t, err)
		require.Len(t, byName, 1)
		assert.Equal(t, "CUST-003", byName[0].ID)

		byID, err := svc.Search(ctx, "cust-002")
		require.NoError(t, err)
		require.Len(t, byID, 1)
		assert.Equal(t, "Michael Chen", byID[0].Name)
	})

	t.Run("No match yields empty result, not an error", func(t *testing.T) {
		svc := NewCustomerService(repository.NewCustomerRepo(), 0)

		customers, err := svc.Search(ctx, "zzz")
		require.NoError(t, err)
		assert.Empty(t, customers)
	})

	t.Run("Failed lookup is surfaced as retryable, not swallowed", func(t *testing.T) {
		svc := NewCustomerService(failingCustomerRepo{}, 0)

		_, err := svc.Search(ctx, "sarah")
		assert.ErrorIs(t, err, ErrLookupUnavailable)
	})
}
