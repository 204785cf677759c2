package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is a registered account
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	AuthProvider string    `json:"authProvider" bson:"auth_provider"` // "local"
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
}

// UserClaims are the JWT claims for an authenticated user
type UserClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// RegisterRequest is the request body for POST /v1/auth/register
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for POST /v1/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned after register/login
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	UserID      string `json:"userId"`
	Email       string `json:"email"`
	Name        string `json:"name"`
}
