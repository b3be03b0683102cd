package ports

import (
	"context"

	"github.com/Apurer/go-storefront-api/internal/domains/users/domain"
)

// RegisterInput carries the fields required to create an account. The
// password arrives pre-hashed from the identity layer.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// Service exposes user directory use cases to adapters.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	IsAdmin(ctx context.Context, username string) (bool, error)
	Delete(ctx context.Context, username string) error
	List(ctx context.Context) ([]*domain.User, error)
}
