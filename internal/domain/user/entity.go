package user

import "time"

// User is a dashboard account, distinct from employees. The API ships
// with a single admin account but the schema does not assume that.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)
