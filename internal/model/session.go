package model

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role is the dashboard a session is allowed into.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleMerchant Role = "merchant"
	RoleMember   Role = "member"
)

var ErrUnknownRole = errors.New("unknown role")

// ParseRole maps a URL segment to a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleMerchant, RoleMember:
		return Role(s), nil
	}
	return "", ErrUnknownRole
}

// Session is the full authenticated profile. It is persisted as one
// serialized object under a single key so a reload restores every field,
// not just the role.
type Session struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	StoreName string    `json:"store_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Account is a login credential record in the seeded directory.
type Account struct {
	ID           string `json:"id"`
	Role         Role   `json:"role"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	StoreName    string `json:"store_name,omitempty"`
	PasswordHash string `json:"-"`
	IsActive     bool   `json:"is_active"`
}

// SetPassword hashes and sets the account's password.
func (a *Account) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hashed)
	return nil
}

// CheckPassword verifies a password against the stored hash.
func (a *Account) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
}

// AdminLoginRequest is the admin login form.
type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// MerchantLoginRequest is the merchant login form.
type MerchantLoginRequest struct {
	StoreName string `json:"store_name" validate:"required"`
	Password  string `json:"password" validate:"required,min=6"`
}

// MemberLoginRequest is the member login form. The identifier accepts an
// email address or a phone number.
type MemberLoginRequest struct {
	Identifier string `json:"identifier" validate:"required,email_or_phone"`
	Password   string `json:"password" validate:"required,min=6"`
}
