package application

import (
	"context"
	"errors"
	"strings"

	"github.com/Apurer/go-storefront-api/internal/domains/users/domain"
	"github.com/Apurer/go-storefront-api/internal/domains/users/ports"
)

// Service exposes the user directory use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// Register creates an account after the duplicate and role checks. Username
// and email must both be unique across the directory.
func (s *Service) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	role := strings.TrimSpace(input.Role)
	if role == "" {
		role = domain.RoleUser
	}
	user, err := domain.NewUser(input.Username, input.Email, input.Password, role)
	if err != nil {
		return nil, mapError(err)
	}
	if _, err := s.repo.GetByUsername(ctx, user.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, ports.ErrNotFound) {
		return nil, err
	}
	if _, err := s.repo.GetByEmail(ctx, user.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ports.ErrNotFound) {
		return nil, err
	}
	saved, err := s.repo.Save(ctx, user)
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.GetByUsername(ctx, username)
}

// IsAdmin resolves the user and reports whether the role set contains the
// administrator role. Pure read, no side effects.
func (s *Service) IsAdmin(ctx context.Context, username string) (bool, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

func (s *Service) Delete(ctx context.Context, username string) error {
	return s.repo.Delete(ctx, username)
}

func (s *Service) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

var _ ports.Service = (*Service)(nil)
