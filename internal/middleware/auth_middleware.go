package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"go-loyalty-admin/internal/model"
	"go-loyalty-admin/internal/repository"
	"go-loyalty-admin/pkg/jwt"
)

// resolveSession validates the bearer token and checks that its durable
// session object still exists. A valid token whose session was deleted
// (logout, expiry) counts as logged out.
func resolveSession(c *fiber.Ctx, store repository.SessionStore) (*jwt.Claims, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, jwt.ErrMissingToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return nil, jwt.ErrInvalidToken
	}

	claims, err := jwt.ValidateToken(parts[1])
	if err != nil {
		return nil, err
	}

	if _, err := store.Find(c.Context(), claims.SessionID); err != nil {
		return nil, jwt.ErrInvalidToken
	}
	return claims, nil
}

func setLocals(c *fiber.Ctx, claims *jwt.Claims) {
	c.Locals("session_id", claims.SessionID)
	c.Locals("role", claims.Role)
	c.Locals("name", claims.Name)
	c.Locals("email", claims.Email)
	c.Locals("store_name", claims.StoreName)
}

// RequireAuth admits any authenticated session, regardless of role.
func RequireAuth(store repository.SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := resolveSession(c, store)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Missing or invalid authorization token"})
		}
		setLocals(c, claims)
		return c.Next()
	}
}

// RequireRole guards a dashboard requiring one role. Unauthenticated
// sessions and sessions holding a different role are both redirected to the
// login page of the required role, never to their own dashboard.
func RequireRole(store repository.SessionStore, role model.Role) fiber.Handler {
	loginPath := "/login/" + string(role)
	return func(c *fiber.Ctx) error {
		claims, err := resolveSession(c, store)
		if err != nil {
			return c.Redirect(loginPath, fiber.StatusFound)
		}
		if claims.Role != string(role) {
			return c.Redirect(loginPath, fiber.StatusFound)
		}
		setLocals(c, claims)
		return c.Next()
	}
}
