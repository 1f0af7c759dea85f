package domain

import (
	"errors"
	"time"
)

// Role is the closed set of privilege levels a user can hold.
type Role string

const (
	// RoleAdmin satisfies every role requirement (the override role).
	RoleAdmin        Role = "admin"
	RoleVet          Role = "vet"
	RoleReceptionist Role = "receptionist"
)

// ValidRole reports whether r is one of the declared roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleVet, RoleReceptionist:
		return true
	}
	return false
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrTooManyAttempts    = errors.New("too many login attempts")
	ErrResetTokenInvalid  = errors.New("reset token invalid or expired")
)

// User is the persisted identity record. PasswordHash and the reset-token
// fields never leave the persistence and auth layers.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	LastName     string    `json:"last_name,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Specialty    string    `json:"specialty,omitempty"`
	Active       bool      `json:"active"`
	ResetDigest  string    `json:"-"`
	ResetExpiry  time.Time `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the request-scoped projection of a User handed to handlers
// after authentication. It carries no secret material and is rebuilt from
// the current user record on every request, so role and active-status edits
// take effect immediately.
type Identity struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Specialty string `json:"specialty,omitempty"`
	Active    bool   `json:"active"`
}

// Identity projects the user into its safe request-scoped view.
func (u *User) Identity() Identity {
	return Identity{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Specialty: u.Specialty,
		Active:    u.Active,
	}
}
