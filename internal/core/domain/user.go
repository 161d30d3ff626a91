package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleVoter = "voter"
)

// User models a registered voter or the platform administrator.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Age          int       `json:"age"`
	Email        string    `json:"email"`
	Mobile       string    `json:"mobile,omitempty"`
	Address      string    `json:"address"`
	Role         string    `json:"role"`
	HasVoted     bool      `json:"has_voted"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleVoter
}
