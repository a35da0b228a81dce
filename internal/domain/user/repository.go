package user

import "context"

// UserRepository defines data access methods for users.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	List(ctx context.Context) ([]User, error)
	Search(ctx context.Context, query string) ([]User, error)
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id int64) error
}
