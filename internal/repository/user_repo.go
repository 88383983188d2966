package repository

import (
	"errors"
	"strings"
	"sync"

	"go-loyalty-admin/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	FindAll() ([]model.User, error)
	Find(filter model.UserFilter) ([]model.User, error)
	FindByID(id string) (*model.User, error)
	UpdateStatus(id string, status model.UserStatus) (*model.User, error)
	Delete(id string) error
	CountByStatus(status model.UserStatus) (int, error)
}

type userRepo struct {
	mu    sync.RWMutex
	users []model.User
}

func NewUserRepo() UserRepository {
	return &userRepo{users: seedUsers()}
}

func (r *userRepo) FindAll() ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

// Find intersects the search term with the role and status filters,
// preserving seed order. "all" or empty filter fields match everything.
func (r *userRepo) Find(filter model.UserFilter) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	term := strings.ToLower(filter.Search)
	out := []model.User{}
	for _, u := range r.users {
		if term != "" &&
			!strings.Contains(strings.ToLower(u.Name), term) &&
			!strings.Contains(strings.ToLower(u.Email), term) &&
			!strings.Contains(strings.ToLower(u.ID), term) {
			continue
		}
		if filter.Role != "" && filter.Role != "all" && string(u.Role) != filter.Role {
			continue
		}
		if filter.Status != "" && filter.Status != "all" && string(u.Status) != filter.Status {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *userRepo) FindByID(id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			cp := u
			return &cp, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *userRepo) UpdateStatus(id string, status model.UserStatus) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].Status = status
			cp := r.users[i]
			return &cp, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *userRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return ErrUserNotFound
}

func (r *userRepo) CountByStatus(status model.UserStatus) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, u := range r.users {
		if u.Status == status {
			n++
		}
	}
	return n, nil
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func seedUsers() []model.User {
	return []model.User{
		{
			ID: "USR-001", Name: "Sarah Johnson", Email: "sarah.j@email.com",
			Role: model.RoleMember, Status: model.UserActive,
			JoinDate: "2024-03-15", LastActive: "2025-01-20",
			TotalPoints: intPtr(2847), Location: "New York, NY",
		},
		{
			ID: "USR-002", Name: "TechStore Pro", Email: "admin@techstore.com",
			Role: model.RoleMerchant, Status: model.UserActive,
			JoinDate: "2024-01-10", LastActive: "2025-01-20",
			TotalSales: floatPtr(45600), Location: "San Francisco, CA",
		},
		{
			ID: "USR-003", Name: "Michael Chen", Email: "michael.chen@email.com",
			Role: model.RoleMember, Status: model.UserActive,
			JoinDate: "2024-02-22", LastActive: "2025-01-19",
			TotalPoints: intPtr(1523), Location: "Los Angeles, CA",
		},
		{
			ID: "USR-004", Name: "Fashion Hub", Email: "contact@fashionhub.com",
			Role: model.RoleMerchant, Status: model.UserActive,
			JoinDate: "2023-11-05", LastActive: "2025-01-18",
			TotalSales: floatPtr(78900), Location: "Miami, FL",
		},
		{
			ID: "USR-005", Name: "Emma Rodriguez", Email: "emma.r@email.com",
			Role: model.RoleMember, Status: model.UserSuspended,
			JoinDate: "2024-04-12", LastActive: "2025-01-15",
			TotalPoints: intPtr(892), Location: "Chicago, IL",
		},
		{
			ID: "USR-006", Name: "James Wilson", Email: "j.wilson@email.com",
			Role: model.RoleAdmin, Status: model.UserActive,
			JoinDate: "2023-08-20", LastActive: "2025-01-20",
			Location: "Seattle, WA",
		},
		{
			ID: "USR-007", Name: "Coffee Corner", Email: "hello@coffeecorner.com",
			Role: model.RoleMerchant, Status: model.UserInactive,
			JoinDate: "2024-05-30", LastActive: "2024-12-15",
			TotalSales: floatPtr(12400), Location: "Portland, OR",
		},
		{
			ID: "USR-008", Name: "Alex Thompson", Email: "alex.t@email.com",
			Role: model.RoleMember, Status: model.UserActive,
			JoinDate: "2024-06-18", LastActive: "2025-01-19",
			TotalPoints: intPtr(3456), Location: "Austin, TX",
		},
	}
}
