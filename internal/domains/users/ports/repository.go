package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-storefront-api/internal/domains/users/domain"
)

var ErrNotFound = errors.New("user not found")

type Repository interface {
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Delete(ctx context.Context, username string) error
	List(ctx context.Context) ([]*domain.User, error)
}
