package entity

import "time"

// Dashboard roles.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User is a dashboard account.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | staff
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
