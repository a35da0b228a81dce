package user

import "context"

// UserService defines admin user management operations.
type UserService interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	List(ctx context.Context) ([]UserResponse, error)
	Search(ctx context.Context, query string) ([]UserResponse, error)
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, id int64) error
}
