package user

import "errors"

// User domain errors
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUsernameExists         = errors.New("username already taken")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrPKLRoleRequired        = errors.New("only PKL users can submit attendance")
)
