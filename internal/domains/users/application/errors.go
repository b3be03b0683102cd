package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/go-storefront-api/internal/domains/users/domain"
)

var (
	// ErrInvalidInput signals the request violated a directory invariant.
	ErrInvalidInput = errors.New("invalid user input")
	// ErrUsernameTaken and ErrEmailTaken surface duplicate registrations;
	// the transport maps them to a conflict response.
	ErrUsernameTaken = errors.New("username already registered")
	ErrEmailTaken    = errors.New("email already registered")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyUsername) ||
		errors.Is(err, domain.ErrEmptyPassword) ||
		errors.Is(err, domain.ErrInvalidEmail) ||
		errors.Is(err, domain.ErrUnknownRole) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
