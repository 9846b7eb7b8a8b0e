package model

import "time"

// Roles assigned to users. The role travels in the JWT "role" claim and
// is the only input to authorization decisions.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole reports whether s is a known role name.
func ValidRole(s string) bool { return s == RoleAdmin || s == RoleUser }

// User represents an application user record as stored in the `users`
// table. Handlers define separate response types with JSON tags; this
// struct is used by the repository layer only.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Email        – unique, lower-cased email address.
//  Name         – display name shown in responses.
//  PasswordHash – bcrypt hashed password.
//  Role         – "admin" or "user".
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64
	Email        string
	Name         string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken models an entry in the `refresh_tokens` table. Each
// refresh token belongs to a user; only the SHA-256 hash of the raw
// token value is stored.
type RefreshToken struct {
	ID        uint64
	UserID    uint64
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}
