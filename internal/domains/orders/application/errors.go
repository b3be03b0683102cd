package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/go-storefront-api/internal/domains/orders/domain"
	"github.com/Apurer/go-storefront-api/internal/domains/orders/ports"
)

var (
	// ErrInvalidInput signals the request violated a workflow invariant.
	ErrInvalidInput = errors.New("invalid order input")
	// ErrEmptyProductSet rejects a create with no usable product keys.
	ErrEmptyProductSet = errors.New("order must reference at least one product")
	// ErrCancelWindowExpired rejects a self-cancel after the three-day window.
	ErrCancelWindowExpired = errors.New("cancellation window of 3 days has expired")
	// ErrNotOwner rejects a mutation by a caller who neither owns the order
	// nor holds the administrator role.
	ErrNotOwner = errors.New("order belongs to another user")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrInvalidStatus) ||
		errors.Is(err, domain.ErrEmptyItems) ||
		errors.Is(err, domain.ErrEmptyOwner) ||
		errors.Is(err, ports.ErrOutOfStock) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
