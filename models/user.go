package models

import "time"

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleCustomer UserRole = "customer"
	RoleDriver   UserRole = "driver"
)

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r UserRole) bool {
	return r == RoleAdmin || r == RoleCustomer || r == RoleDriver
}

type User struct {
	ID           string    `json:"id"`
	Role         UserRole  `json:"role"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserPatch carries a partial user update. Nil fields are left untouched on
// merge; non-nil fields overwrite the stored value.
type UserPatch struct {
	ID           string
	Role         *UserRole
	Name         *string
	Email        *string
	Phone        *string
	PasswordHash *string
	Verified     *bool
}
