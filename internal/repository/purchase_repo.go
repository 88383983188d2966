package repository

import (
	"errors"
	"sync"

	"go-loyalty-admin/internal/model"
)

var ErrPurchaseNotFound = errors.New("purchase not found")

type PurchaseRepository interface {
	FindAll() ([]model.Purchase, error)
	FindByID(id string) (*model.Purchase, error)
	UpdateStatus(id string, status model.PurchaseStatus) (*model.Purchase, error)
	CountByStatus(status model.PurchaseStatus) (int, error)
}

type purchaseRepo struct {
	mu        sync.RWMutex
	purchases []model.Purchase
}

func NewPurchaseRepo() PurchaseRepository {
	return &purchaseRepo{purchases: seedPurchases()}
}

func (r *purchaseRepo) FindAll() ([]model.Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Purchase, len(r.purchases))
	copy(out, r.purchases)
	return out, nil
}

func (r *purchaseRepo) FindByID(id string) (*model.Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.purchases {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, ErrPurchaseNotFound
}

// UpdateStatus patches exactly the purchase with the given id and returns
// the updated copy.
func (r *purchaseRepo) UpdateStatus(id string, status model.PurchaseStatus) (*model.Purchase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.purchases {
		if r.purchases[i].ID == id {
			r.purchases[i].Status = status
			cp := r.purchases[i]
			return &cp, nil
		}
	}
	return nil, ErrPurchaseNotFound
}

func (r *purchaseRepo) CountByStatus(status model.PurchaseStatus) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, p := range r.purchases {
		if p.Status == status {
			n++
		}
	}
	return n, nil
}

func seedPurchases() []model.Purchase {
	return []model.Purchase{
		{
			ID:            "PUR-001",
			CustomerName:  "Sarah Johnson",
			CustomerEmail: "sarah.j@email.com",
			Amount:        299.99,
			Product:       "Premium Subscription",
			Date:          "2025-01-20",
			Status:        model.PurchasePending,
		},
		{
			ID:            "PUR-002",
			CustomerName:  "Michael Chen",
			CustomerEmail: "michael.chen@email.com",
			Amount:        89.50,
			Product:       "Digital Course",
			Date:          "2025-01-20",
			Status:        model.PurchasePending,
		},
		{
			ID:            "PUR-003",
			CustomerName:  "Emma Rodriguez",
			CustomerEmail: "emma.r@email.com",
			Amount:        159.00,
			Product:       "Consultation Package",
			Date:          "2025-01-19",
			Status:        model.PurchasePending,
		},
		{
			ID:            "PUR-004",
			CustomerName:  "James Wilson",
			CustomerEmail: "j.wilson@email.com",
			Amount:        45.99,
			Product:       "Monthly Plan",
			Date:          "2025-01-19",
			Status:        model.PurchaseApproved,
		},
	}
}
