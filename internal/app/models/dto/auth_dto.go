package dto

import "time"

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email" example:"staff@studenthub.edu"`
	Password  string `json:"password" binding:"required,min=8" example:"Password1!"`
	FirstName string `json:"firstName" binding:"required,min=2,max=100" example:"Ayşe"`
	LastName  string `json:"lastName" binding:"required,min=2,max=100" example:"Demir"`
	Role      string `json:"role" binding:"omitempty,oneof=ADMIN STAFF" example:"STAFF"`
}

// LoginRequest authenticates an account.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"staff@studenthub.edu"`
	Password string `json:"password" binding:"required" example:"Password1!"`
}

// RefreshTokenRequest exchanges a refresh token for a new pair.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries an issued token pair.
type TokenResponse struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID          int64      `json:"id" example:"1"`
	Email       string     `json:"email" example:"staff@studenthub.edu"`
	FirstName   string     `json:"firstName" example:"Ayşe"`
	LastName    string     `json:"lastName" example:"Demir"`
	Role        string     `json:"role" example:"STAFF"`
	IsActive    bool       `json:"isActive" example:"true"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}
