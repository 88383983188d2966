package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-loyalty-admin/internal/model"
)

func newAccountRepo(t *testing.T) AccountRepository {
	t.Helper()

	repo := NewAccountRepo()
	seed := []model.Account{
		{ID: "ACC-001", Role: model.RoleAdmin, Name: "James Wilson", Email: "admin@loyalty.local", IsActive: true},
		{ID: "ACC-002", Role: model.RoleMerchant, Name: "TechStore Pro", Email: "admin@techstore.com", StoreName: "TechStore Pro", IsActive: true},
		{ID: "ACC-003", Role: model.RoleMember, Name: "Sarah Johnson", Email: "sarah.j@email.com", Phone: "+1 (555) 123-4567", IsActive: true},
		{ID: "ACC-004", Role: model.RoleMember, Name: "Closed Account", Email: "closed@email.com", IsActive: false},
	}
	for i := range seed {
		require.NoError(t, repo.Create(&seed[i]))
	}
	return repo
}

func TestFindByLogin(t *testing.T) {
	t.Run("Member resolves by email", func(t *testing.T) {
		repo := newAccountRepo(t)

		account, err := repo.FindByLogin(model.RoleMember, "Sarah.J@email.com")
		require.NoError(t, err)
		assert.Equal(t, "ACC-003", account.ID)
	})

	t.Run("Member resolves by phone regardless of formatting", func(t *testing.T) {
		repo := newAccountRepo(t)

		account, err := repo.FindByLogin(model.RoleMember, "15551234567")
		require.NoError(t, err)
		assert.Equal(t, "ACC-003", account.ID)
	})

	t.Run("Digit-free identifier never matches a phone-less member", func(t *testing.T) {
		repo := newAccountRepo(t)

		// ACC-004 has no phone; an unknown email must not resolve it
		// through an empty-to-empty phone comparison.
		_, err := repo.FindByLogin(model.RoleMember, "attacker@evil.com")
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})

	t.Run("Merchant resolves by store name only", func(t *testing.T) {
		repo := newAccountRepo(t)

		account, err := repo.FindByLogin(model.RoleMerchant, "techstore pro")
		require.NoError(t, err)
		assert.Equal(t, "ACC-002", account.ID)

		_, err = repo.FindByLogin(model.RoleMerchant, "admin@techstore.com")
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})

	t.Run("Role scopes the lookup", func(t *testing.T) {
		repo := newAccountRepo(t)

		_, err := repo.FindByLogin(model.RoleAdmin, "sarah.j@email.com")
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}
