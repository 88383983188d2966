package model

// UserStatus is the lifecycle state of a managed user.
type UserStatus string

const (
	UserActive    UserStatus = "active"
	UserInactive  UserStatus = "inactive"
	UserSuspended UserStatus = "suspended"
)

// ValidUserStatus reports whether s is one of the declared states.
func ValidUserStatus(s UserStatus) bool {
	switch s {
	case UserActive, UserInactive, UserSuspended:
		return true
	}
	return false
}

// User is a platform account as shown in the admin user management view.
// TotalPoints is set for members, TotalSales for merchants.
type User struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        Role       `json:"role"`
	Status      UserStatus `json:"status"`
	JoinDate    string     `json:"join_date"`
	LastActive  string     `json:"last_active"`
	TotalPoints *int       `json:"total_points,omitempty"`
	TotalSales  *float64   `json:"total_sales,omitempty"`
	Location    string     `json:"location,omitempty"`
}

// UserFilter narrows the user list. Empty or "all" fields impose no
// constraint; Search matches name, email and id case-insensitively.
type UserFilter struct {
	Search string
	Role   string
	Status string
}
