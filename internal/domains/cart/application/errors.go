package application

import (
	"errors"
	"fmt"

	"github.com/wollylully/storefront/internal/domains/cart/domain"
)

var (
	// ErrInvalidInput signals the request violated a cart invariant.
	ErrInvalidInput = errors.New("invalid cart input")
	// ErrSizeRequired signals an add-to-cart without a selected size. The
	// transport turns it into a transient notice plus a shake cue.
	ErrSizeRequired = errors.New("size selection required")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptySize) {
		return fmt.Errorf("%w: %w", ErrSizeRequired, err)
	}
	if errors.Is(err, domain.ErrEmptyProductID) || errors.Is(err, domain.ErrInvalidPrice) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
