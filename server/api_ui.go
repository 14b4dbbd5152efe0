package storefrontserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	chrometypes "github.com/wollylully/storefront/internal/domains/chrome/application/types"
	chromedomain "github.com/wollylully/storefront/internal/domains/chrome/domain"
	chromeports "github.com/wollylully/storefront/internal/domains/chrome/ports"
)

// UIAPI wires HTTP transport with the chrome bounded context service.
type UIAPI struct {
	service chromeports.Service
}

// NewUIAPI creates a UIAPI backed by the provided service.
func NewUIAPI(service chromeports.Service) UIAPI {
	return UIAPI{service: service}
}

// HeaderStateResponse reports the collapsed-header flag for a scroll
// offset.
type HeaderStateResponse struct {
	Offset   float64 `json:"offset"`
	Scrolled bool    `json:"scrolled"`
}

// Get /v1/ui/state
// Current chrome render for the session
func (api *UIAPI) GetUIState(c *gin.Context) {
	view, err := api.service.State(c.Request.Context(), sessionKey(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Get /v1/ui/header
// Header state for a scroll offset
func (api *UIAPI) GetHeaderState(c *gin.Context) {
	offset, err := strconv.ParseFloat(c.DefaultQuery("offset", "0"), 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	c.JSON(http.StatusOK, HeaderStateResponse{
		Offset:   offset,
		Scrolled: chromedomain.HeaderScrolled(offset),
	})
}

// Post /v1/ui/panels/:panel/open
// Open a slide-over panel
func (api *UIAPI) OpenPanel(c *gin.Context) {
	view, err := api.service.OpenPanel(c.Request.Context(), sessionKey(c), c.Param("panel"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Post /v1/ui/panels/:panel/close
// Close a slide-over panel
func (api *UIAPI) ClosePanel(c *gin.Context) {
	view, err := api.service.ClosePanel(c.Request.Context(), sessionKey(c), c.Param("panel"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Post /v1/ui/selection
// Update the product page colour/size selection
func (api *UIAPI) UpdateSelection(c *gin.Context) {
	var input chrometypes.SelectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	view, err := api.service.Select(c.Request.Context(), sessionKey(c), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ToggleAccordionPayload names the accordion item to toggle.
type ToggleAccordionPayload struct {
	Item string `json:"item" binding:"required"`
}

// Post /v1/ui/accordions/:group/toggle
// Toggle an accordion item within its group
func (api *UIAPI) ToggleAccordion(c *gin.Context) {
	var payload ToggleAccordionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	view, err := api.service.ToggleAccordion(c.Request.Context(), sessionKey(c), c.Param("group"), payload.Item)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
