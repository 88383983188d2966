package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-loyalty-admin/internal/model"
	"go-loyalty-admin/internal/repository"
	"go-loyalty-admin/pkg/jwt"
)

func newAuthFixture(t *testing.T) (AuthService, repository.SessionStore) {
	t.Helper()

	accountRepo := repository.NewAccountRepo()
	seed := []struct {
		account  model.Account
		password string
	}{
		{model.Account{ID: "ACC-001", Role: model.RoleAdmin, Name: "James Wilson", Email: "admin@loyalty.local", IsActive: true}, "admin123"},
		{model.Account{ID: "ACC-002", Role: model.RoleMerchant, Name: "TechStore Pro", Email: "admin@techstore.com", StoreName: "TechStore Pro", IsActive: true}, "merchant123"},
		{model.Account{ID: "ACC-003", Role: model.RoleMember, Name: "Sarah Johnson", Email: "sarah.j@email.com", Phone: "+1 (555) 123-4567", IsActive: true}, "member123"},
		{model.Account{ID: "ACC-004", Role: model.RoleMember, Name: "Closed Account", Email: "closed@email.com", IsActive: false}, "closed123"},
	}
	for _, s := range seed {
		require.NoError(t, s.account.SetPassword(s.password))
		require.NoError(t, accountRepo.Create(&s.account))
	}

	store := repository.NewMemorySessionStore()
	return NewAuthService(accountRepo, store), store
}

func TestAuthLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Admin login persists the full session", func(t *testing.T) {
		svc, store := newAuthFixture(t)

		resp, err := svc.Login(ctx, model.RoleAdmin, "admin@loyalty.local", "admin123")
		require.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, resp.Session.Role)
		assert.Equal(t, "James Wilson", resp.Session.Name)

		claims, err := jwt.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, resp.Session.ID, claims.SessionID)

		saved, err := store.Find(ctx, resp.Session.ID)
		require.NoError(t, err)
		assert.Equal(t, resp.Session.Email, saved.Email)
	})

	t.Run("Merchant logs in with store name", func(t *testing.T) {
		svc, _ := newAuthFixture(t)

		resp, err := svc.Login(ctx, model.RoleMerchant, "TechStore Pro", "merchant123")
		require.NoError(t, err)
		assert.Equal(t, model.RoleMerchant, resp.Session.Role)
		assert.Equal(t, "TechStore Pro", resp.Session.StoreName)
	})

	t.Run("Member logs in with email or phone", func(t *testing.T) {
		svc, _ := newAuthFixture(t)

		byEmail, err := svc.Login(ctx, model.RoleMember, "sarah.j@email.com", "member123")
		require.NoError(t, err)
		assert.Equal(t, model.RoleMember, byEmail.Session.Role)

		byPhone, err := svc.Login(ctx, model.RoleMember, "+1 (555) 123-4567", "member123")
		require.NoError(t, err)
		assert.Equal(t, "Sarah Johnson", byPhone.Session.Name)
	})

	t.Run("Wrong password", func(t *testing.T) {
		svc, _ := newAuthFixture(t)

		_, err := svc.Login(ctx, model.RoleAdmin, "admin@loyalty.local", "not-the-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown account", func(t *testing.T) {
		svc, _ := newAuthFixture(t)

		_, err := svc.Login(ctx, model.RoleAdmin, "nobody@loyalty.local", "admin123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Role and identifier must match together", func(t *testing.T) {
		svc, _ := newAuthFixture(t)

		_, err := svc.Login(ctx, model.RoleMerchant, "admin@loyalty.local", "admin123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown member email does not resolve a phone-less account", func(t *testing.T) {
		svc, _ := newAuthFixture(t)

		// ACC-004 has no phone; the error must stay invalid-credentials
		// rather than reveal that a closed account exists.
		_, err := svc.Login(ctx, model.RoleMember, "attacker@evil.com", "closed123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Inactive account", func(t *testing.T) {
		svc, _ := newAuthFixture(t)

		_, err := svc.Login(ctx, model.RoleMember, "closed@email.com", "closed123")
		assert.ErrorIs(t, err, ErrAccountInactive)
	})
}

func TestAuthLogoutAndRestore(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture(t)

	resp, err := svc.Login(ctx, model.RoleMember, "sarah.j@email.com", "member123")
	require.NoError(t, err)

	restored, err := svc.Restore(ctx, resp.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", restored.Name)
	assert.Equal(t, "+1 (555) 123-4567", restored.Phone)

	require.NoError(t, svc.Logout(ctx, resp.Session.ID))

	_, err = svc.Restore(ctx, resp.Session.ID)
	assert.ErrorIs(t, err, ErrSessionExpired)
}
