package user

import "time"

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RolePKL   Role = "PKL"
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RolePKL),
}

type User struct {
	ID           int64
	Nama         string
	Username     string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
