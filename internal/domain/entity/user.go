package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// User es un operador del back-office.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
