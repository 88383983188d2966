package repository

import (
	"errors"
	"strings"
	"sync"

	"go-loyalty-admin/internal/model"
)

var ErrAccountNotFound = errors.New("account not found")

type AccountRepository interface {
	// FindByLogin resolves an account by role and login identifier: email for
	// admins, store name for merchants, email or phone for members.
	FindByLogin(role model.Role, identifier string) (*model.Account, error)
	Create(account *model.Account) error
}

type accountRepo struct {
	mu       sync.RWMutex
	accounts []model.Account
}

func NewAccountRepo() AccountRepository {
	return &accountRepo{}
}

func (r *accountRepo) FindByLogin(role model.Role, identifier string) (*model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ident := strings.ToLower(strings.TrimSpace(identifier))
	for _, a := range r.accounts {
		if a.Role != role {
			continue
		}
		switch role {
		case model.RoleMerchant:
			if strings.ToLower(a.StoreName) == ident {
				cp := a
				return &cp, nil
			}
		case model.RoleMember:
			if strings.ToLower(a.Email) == ident {
				cp := a
				return &cp, nil
			}
			// Only match by phone when both sides actually carry digits;
			// otherwise a phone-less account would match any digit-free
			// identifier through the empty normalized form.
			if phone := normalizePhone(a.Phone); phone != "" && phone == normalizePhone(identifier) {
				cp := a
				return &cp, nil
			}
		default:
			if strings.ToLower(a.Email) == ident {
				cp := a
				return &cp, nil
			}
		}
	}
	return nil, ErrAccountNotFound
}

func (r *accountRepo) Create(account *model.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts = append(r.accounts, *account)
	return nil
}

// normalizePhone strips formatting so "+1 (555) 123-4567" and
// "15551234567" compare equal.
func normalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
