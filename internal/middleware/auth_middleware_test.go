package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-loyalty-admin/internal/model"
	"go-loyalty-admin/internal/repository"
	"go-loyalty-admin/pkg/jwt"
)

func newGuardedApp(store repository.SessionStore) *fiber.App {
	app := fiber.New()
	for _, role := range []model.Role{model.RoleAdmin, model.RoleMerchant, model.RoleMember} {
		role := role
		app.Get("/dashboard/"+string(role), RequireRole(store, role), func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"role": role})
		})
	}
	app.Get("/session", RequireAuth(store), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func loginAs(t *testing.T, store repository.SessionStore, role model.Role) string {
	t.Helper()
	session := model.Session{ID: "sess-" + string(role), Role: role, Name: "Test", CreatedAt: time.Now()}
	require.NoError(t, store.Save(context.Background(), &session, jwt.TokenTTL))
	token, err := jwt.GenerateToken(session.ID, string(role), session.Name, "", "")
	require.NoError(t, err)
	return token
}

func TestRequireRole(t *testing.T) {
	roles := []model.Role{model.RoleAdmin, model.RoleMerchant, model.RoleMember}

	t.Run("Unauthenticated requests redirect to the role's login", func(t *testing.T) {
		store := repository.NewMemorySessionStore()
		app := newGuardedApp(store)

		for _, role := range roles {
			req := httptest.NewRequest(http.MethodGet, "/dashboard/"+string(role), nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusFound, resp.StatusCode)
			assert.Equal(t, "/login/"+string(role), resp.Header.Get("Location"))
		}
	})

	t.Run("Wrong role redirects to the required role's login, never its own dashboard", func(t *testing.T) {
		store := repository.NewMemorySessionStore()
		app := newGuardedApp(store)

		for _, sessionRole := range roles {
			token := loginAs(t, store, sessionRole)
			for _, required := range roles {
				if required == sessionRole {
					continue
				}
				req := httptest.NewRequest(http.MethodGet, "/dashboard/"+string(required), nil)
				req.Header.Set("Authorization", "Bearer "+token)
				resp, err := app.Test(req)
				require.NoError(t, err)
				assert.Equal(t, fiber.StatusFound, resp.StatusCode)
				assert.Equal(t, "/login/"+string(required), resp.Header.Get("Location"))
			}
		}
	})

	t.Run("Matching role renders the guarded content", func(t *testing.T) {
		store := repository.NewMemorySessionStore()
		app := newGuardedApp(store)

		for _, role := range roles {
			token := loginAs(t, store, role)
			req := httptest.NewRequest(http.MethodGet, "/dashboard/"+string(role), nil)
			req.Header.Set("Authorization", "Bearer "+token)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		}
	})

	t.Run("Valid token with a deleted session is treated as logged out", func(t *testing.T) {
		store := repository.NewMemorySessionStore()
		app := newGuardedApp(store)

		token := loginAs(t, store, model.RoleAdmin)
		require.NoError(t, store.Delete(context.Background(), "sess-admin"))

		req := httptest.NewRequest(http.MethodGet, "/dashboard/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode)
		assert.Equal(t, "/login/admin", resp.Header.Get("Location"))
	})

	t.Run("Garbage token redirects", func(t *testing.T) {
		store := repository.NewMemorySessionStore()
		app := newGuardedApp(store)

		req := httptest.NewRequest(http.MethodGet, "/dashboard/merchant", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode)
		assert.Equal(t, "/login/merchant", resp.Header.Get("Location"))
	})
}

func TestRequireAuth(t *testing.T) {
	store := repository.NewMemorySessionStore()
	app := newGuardedApp(store)

	t.Run("No token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/session", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Any authenticated role passes", func(t *testing.T) {
		for _, role := range []model.Role{model.RoleAdmin, model.RoleMerchant, model.RoleMember} {
			token := loginAs(t, store, role)
			req := httptest.NewRequest(http.MethodGet, "/session", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		}
	})

	t.Run("Malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/session", nil)
		req.Header.Set("Authorization", "Token abc")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
