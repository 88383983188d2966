package repository

import (
	"errors"
	"sync"

	"go-loyalty-admin/internal/model"
)

var (
	ErrMemberNotFound   = errors.New("member not found")
	ErrMerchantNotFound = errors.New("merchant not found")
)

// DashboardRepository owns the admin shadow aggregates and the member points
// fixture. The member/merchant records here are intentionally separate from
// the user management collection.
type DashboardRepository interface {
	Members() ([]model.Member, error)
	Merchants() ([]model.Merchant, error)
	ToggleMemberStatus(id int) (*model.Member, error)
	ToggleMerchantStatus(id int) (*model.Merchant, error)
	DeleteMember(id int) error
	DeleteMerchant(id int) error
	SetMemberContributionRate(id int, rate float64) (*model.Member, error)
	PointsSummary() (*model.PointsSummary, error)
}

type dashboardRepo struct {
	mu        sync.RWMutex
	members   []model.Member
	merchants []model.Merchant
	points    model.PointsSummary
}

func NewDashboardRepo() DashboardRepository {
	return &dashboardRepo{
		members: []model.Member{
			{ID: 1, Name: "John Doe", Email: "john@example.com", Points: 120, ContributionRate: 5, Status: model.CustomerActive},
			{ID: 2, Name: "Alice Smith", Email: "alice@example.com", Points: 200, ContributionRate: 10, Status: model.CustomerActive},
		},
		merchants: []model.Merchant{
			{ID: 1, StoreName: "SuperMart", Email: "super@mart.com", Status: model.CustomerActive},
			{ID: 2, StoreName: "QuickShop", Email: "quick@shop.com", Status: model.CustomerInactive},
		},
		points: seedPointsSummary(),
	}
}

func (r *dashboardRepo) Members() ([]model.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Member, len(r.members))
	copy(out, r.members)
	return out, nil
}

func (r *dashboardRepo) Merchants() ([]model.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Merchant, len(r.merchants))
	copy(out, r.merchants)
	return out, nil
}

func (r *dashboardRepo) ToggleMemberStatus(id int) (*model.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.members {
		if r.members[i].ID == id {
			r.members[i].Status = toggled(r.members[i].Status)
			cp := r.members[i]
			return &cp, nil
		}
	}
	return nil, ErrMemberNotFound
}

func (r *dashboardRepo) ToggleMerchantStatus(id int) (*model.Merchant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.merchants {
		if r.merchants[i].ID == id {
			r.merchants[i].Status = toggled(r.merchants[i].Status)
			cp := r.merchants[i]
			return &cp, nil
		}
	}
	return nil, ErrMerchantNotFound
}

func (r *dashboardRepo) DeleteMember(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.members {
		if r.members[i].ID == id {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return nil
		}
	}
	return ErrMemberNotFound
}

func (r *dashboardRepo) DeleteMerchant(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.merchants {
		if r.merchants[i].ID == id {
			r.merchants = append(r.merchants[:i], r.merchants[i+1:]...)
			return nil
		}
	}
	return ErrMerchantNotFound
}

func (r *dashboardRepo) SetMemberContributionRate(id int, rate float64) (*model.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.members {
		if r.members[i].ID == id {
			r.members[i].ContributionRate = rate
			cp := r.members[i]
			return &cp, nil
		}
	}
	return nil, ErrMemberNotFound
}

func (r *dashboardRepo) PointsSummary() (*model.PointsSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cp := r.points
	cp.RecentTransactions = make([]model.PointsTransaction, len(r.points.RecentTransactions))
	copy(cp.RecentTransactions, r.points.RecentTransactions)
	return &cp, nil
}

func toggled(s model.CustomerStatus) model.CustomerStatus {
	if s == model.CustomerActive {
		return model.CustomerInactive
	}
	return model.CustomerActive
}

func seedPointsSummary() model.PointsSummary {
	return model.PointsSummary{
		TotalPoints:      2847,
		LifetimeEarned:   5420,
		LifetimeRedeemed: 2573,
		CurrentTier:      "Gold",
		NextTier:         "Platinum",
		PointsToNextTier: 653,
		RecentTransactions: []model.PointsTransaction{
			{ID: "TXN-001", Type: "earned", Amount: 125, Description: "Purchase at TechStore Pro", Date: "2025-01-20", Merchant: "TechStore Pro"},
			{ID: "TXN-002", Type: "earned", Amount: 89, Description: "Bonus points promotion", Date: "2025-01-19"},
			{ID: "TXN-003", Type: "redeemed", Amount: -200, Description: "Gift card redemption", Date: "2025-01-18"},
			{ID: "TXN-004", Type: "earned", Amount: 67, Description: "Purchase at Fashion Hub", Date: "2025-01-17", Merchant: "Fashion Hub"},
			{ID: "TXN-005", Type: "earned", Amount: 45, Description: "Referral bonus", Date: "2025-01-16"},
		},
	}
}
