package repository

import (
	"strings"
	"sync"

	"go-loyalty-admin/internal/model"
)

type CustomerRepository interface {
	FindAll() ([]model.Customer, error)
	Search(term string) ([]model.Customer, error)
}

type customerRepo struct {
	mu        sync.RWMutex
	customers []model.Customer
}

func NewCustomerRepo() CustomerRepository {
	return &customerRepo{customers: seedCustomers()}
}

func (r *customerRepo) FindAll() ([]model.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Customer, len(r.customers))
	copy(out, r.customers)
	return out, nil
}

// Search matches term case-insensitively against name, email and id. An
// empty term returns the whole collection. The backing slice is never
// mutated.
func (r *customerRepo) Search(term string) ([]model.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	term = strings.ToLower(term)
	out := []model.Customer{}
	for _, c := range r.customers {
		if term == "" ||
			strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(strings.ToLower(c.Email), term) ||
			strings.Contains(strings.ToLower(c.ID), term) {
			out = append(out, c)
		}
	}
	return out, nil
}

func seedCustomers() []model.Customer {
	return []model.Customer{
		{
			ID:         "CUST-001",
			Name:       "Sarah Johnson",
			Email:      "sarah.j@email.com",
			Phone:      "+1 (555) 123-4567",
			Address:    "123 Main St, New York, NY 10001",
			JoinDate:   "2024-03-15",
			TotalSpent: 1250.99,
			Orders:     8,
			Status:     model.CustomerActive,
		},
		{
			ID:         "CUST-002",
			Name:       "Michael Chen",
			Email:      "michael.chen@email.com",
			Phone:      "+1 (555) 987-6543",
			Address:    "456 Oak Ave, Los Angeles, CA 90210",
			JoinDate:   "2024-01-22",
			TotalSpent: 899.50,
			Orders:     5,
			Status:     model.CustomerActive,
		},
		{
			ID:         "CUST-003",
			Name:       "Emma Rodriguez",
			Email:      "emma.r@email.com",
			Phone:      "+1 (555) 456-7890",
			Address:    "789 Pine St, Chicago, IL 60601",
			JoinDate:   "2023-11-08",
			TotalSpent: 2100.00,
			Orders:     12,
			Status:     model.CustomerActive,
		},
		{
			ID:         "CUST-004",
			Name:       "James Wilson",
			Email:      "j.wilson@email.com",
			Phone:      "+1 (555) 321-0987",
			Address:    "321 Elm St, Houston, TX 77001",
			JoinDate:   "2024-02-14",
			TotalSpent: 567.25,
			Orders:     3,
			Status:     model.CustomerInactive,
		},
	}
}
