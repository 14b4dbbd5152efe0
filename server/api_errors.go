package storefrontserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	cartapp "github.com/wollylully/storefront/internal/domains/cart/application"
	catalogapp "github.com/wollylully/storefront/internal/domains/catalog/application"
	chromeapp "github.com/wollylully/storefront/internal/domains/chrome/application"
	apierrors "github.com/wollylully/storefront/internal/shared/errors"
)

// sizeRequiredNotice is shown when add-to-cart runs without a size.
const sizeRequiredNotice = "Please select a size first"

// respondProblem maps a ProblemDetail through the shared responder.
func respondProblem(c *gin.Context, problem apierrors.ProblemDetail) {
	apierrors.Respond(c, problem)
}

// respondError preserves plain status call sites while returning RFC 7807
// responses.
func respondError(c *gin.Context, status int, err error) {
	if err == nil {
		return
	}
	var problem apierrors.ProblemDetail
	switch status {
	case http.StatusBadRequest:
		problem = apierrors.ErrBadRequest.WithDetail(err.Error())
	case http.StatusNotFound:
		problem = apierrors.ErrNotFound.WithDetail(err.Error())
	default:
		problem = apierrors.ErrInternal.WithDetail(err.Error())
	}
	respondProblem(c, problem)
}

// sizeGateNotice returns the notice text for a size-gate rejection, empty
// for every other error.
func sizeGateNotice(err error) string {
	if errors.Is(err, cartapp.ErrSizeRequired) {
		return sizeRequiredNotice
	}
	return ""
}

// respondServiceError translates bounded context errors into problems. The
// size gate carries the notice the page should show alongside the 400.
func respondServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, cartapp.ErrSizeRequired):
		respondProblem(c, apierrors.NewSizeRequiredProblem(sizeRequiredNotice, "shake"))
	case errors.Is(err, cartapp.ErrInvalidInput),
		errors.Is(err, catalogapp.ErrInvalidInput),
		errors.Is(err, chromeapp.ErrInvalidInput):
		respondProblem(c, apierrors.ErrValidation.WithDetail(err.Error()))
	default:
		respondProblem(c, apierrors.ErrInternal.WithDetail(err.Error()))
	}
}
