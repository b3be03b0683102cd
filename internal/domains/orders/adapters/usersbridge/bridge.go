// Package usersbridge adapts the users bounded context to the account port
// consumed by the order workflow.
package usersbridge

import (
	"context"
	"errors"
	"fmt"

	ordersports "github.com/Apurer/go-storefront-api/internal/domains/orders/ports"
	usersports "github.com/Apurer/go-storefront-api/internal/domains/users/ports"
)

var _ ordersports.Directory = (*Bridge)(nil)

// Bridge exposes the user repository as the order workflow's account
// directory.
type Bridge struct {
	users usersports.Repository
}

func New(users usersports.Repository) *Bridge {
	return &Bridge{users: users}
}

func (b *Bridge) GetByUsername(ctx context.Context, username string) (ordersports.UserView, error) {
	user, err := b.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, usersports.ErrNotFound) {
			return ordersports.UserView{}, fmt.Errorf("%w: %w", ordersports.ErrUserNotFound, err)
		}
		return ordersports.UserView{}, err
	}
	return ordersports.UserView{
		Username: user.Username,
		Email:    user.Email,
		Admin:    user.IsAdmin(),
	}, nil
}
