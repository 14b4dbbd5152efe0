package application

import (
	"errors"
	"fmt"

	"github.com/wollylully/storefront/internal/domains/catalog/domain"
)

var (
	// ErrInvalidInput signals an unrecognized filter facet or action.
	ErrInvalidInput = errors.New("invalid filter input")
)

func errUnknownFacet(facet domain.Facet) error {
	return fmt.Errorf("%w: unknown facet %q", ErrInvalidInput, string(facet))
}

func errUnknownAction(kind string) error {
	return fmt.Errorf("%w: unknown action %q", ErrInvalidInput, kind)
}
