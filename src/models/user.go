package models

import "time"

// RoleAdmin is the only role the system knows about.
const RoleAdmin = "admin"

// User represents an admin account. The password hash is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
