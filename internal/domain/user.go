package domain

import "time"

// Role is the authorization role carried by a user profile.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the principal that authenticates against the API.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	InvalidToken InvalidationMarker
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
