package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPanels_ScrollLockHeldUntilLastPanelCloses(t *testing.T) {
	var p Panels

	p = p.Open(PanelNav)
	p = p.Open(PanelCart)
	assert.True(t, p.ScrollLocked())

	p = p.Close(PanelNav)
	assert.True(t, p.ScrollLocked(), "cart panel still open")

	p = p.Close(PanelCart)
	assert.False(t, p.ScrollLocked())
}

func TestPanels_ReopenAndStrayCloseAreNoOps(t *testing.T) {
	var p Panels

	p = p.Open(PanelCart).Open(PanelCart)
	assert.Equal(t, Panels{PanelCart}, p)

	p = p.Close(PanelFilters)
	assert.Equal(t, Panels{PanelCart}, p)
}

func TestHeaderScrolled(t *testing.T) {
	assert.False(t, HeaderScrolled(0))
	assert.False(t, HeaderScrolled(20))
	assert.True(t, HeaderScrolled(21))
}

func TestSelection_FitLabelTracksSize(t *testing.T) {
	s := Selection{}
	assert.Empty(t, s.FitLabel())
	assert.Equal(t, "Navy", s.StickyMeta())

	s = s.WithSize("M")
	assert.Equal(t, "Classic Fit — true to standard sizing", s.FitLabel())
	assert.Equal(t, "Navy · Size M", s.StickyMeta())

	s = s.WithColour("Camel").WithSize("XL")
	assert.Equal(t, "Relaxed Fit — falls softly, generous through the body", s.FitLabel())
	assert.Equal(t, "Camel · Size XL", s.StickyMeta())
}

func TestAddToCartLabel(t *testing.T) {
	assert.Equal(t, "ADD TO CART — CHF 285", AddToCartLabel(285))
}

func TestAccordions_SingleOpenPerGroup(t *testing.T) {
	var a Accordions

	a = a.Toggle("details", "composition")
	assert.Equal(t, "composition", a.Open("details"))

	a = a.Toggle("details", "care")
	assert.Equal(t, "care", a.Open("details"), "opening one closes the other")

	a = a.Toggle("faq", "shipping")
	assert.Equal(t, "care", a.Open("details"), "groups are independent")
	assert.Equal(t, "shipping", a.Open("faq"))

	a = a.Toggle("details", "care")
	assert.Empty(t, a.Open("details"), "toggling the open item collapses the group")
}

func TestNotice_ExpiryResetsOnReplace(t *testing.T) {
	base := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

	n := NewNotice("Please select a size", CueShake, base)
	assert.True(t, n.Active(base.Add(NoticeTTL-time.Millisecond)))
	assert.False(t, n.Active(base.Add(NoticeTTL)))

	replaced := NewNotice("Added to cart", "", base.Add(2*time.Second))
	assert.True(t, replaced.Active(base.Add(4*time.Second)))

	var gone *Notice
	assert.False(t, gone.Active(base))
}
