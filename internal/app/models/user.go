package models

import "time"

// Role of an authenticated user.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleStaff Role = "STAFF"
)

// IsValid checks if the role is a known value.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleStaff
}

// User represents an authenticated account.
type User struct {
	ID          int64
	Email       string
	Password    string // bcrypt hash
	FirstName   string
	LastName    string
	Role        Role
	IsActive    bool
	LastLoginAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// RefreshToken is an opaque server-side refresh token.
type RefreshToken struct {
	ID        int64
	UserID    int64
	Token     string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}

// IsExpired checks whether the token is past its expiry.
func (t *RefreshToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
