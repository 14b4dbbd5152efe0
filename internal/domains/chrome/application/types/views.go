package types

import (
	"time"

	"github.com/wollylully/storefront/internal/domains/chrome/domain"
)

// SelectInput updates the product page selection. Empty fields leave the
// corresponding part of the selection untouched; Price feeds the sticky
// add-to-cart label.
type SelectInput struct {
	Colour string  `json:"colour"`
	Size   string  `json:"size"`
	Price  float64 `json:"price"`
}

// SelectionView is the rendered product page selection.
type SelectionView struct {
	Colour         string `json:"colour"`
	Size           string `json:"size"`
	SizeChosen     bool   `json:"sizeChosen"`
	FitLabel       string `json:"fitLabel,omitempty"`
	StickyMeta     string `json:"stickyMeta"`
	AddToCartLabel string `json:"addToCartLabel,omitempty"`
}

// NoticeView is the currently visible transient notice.
type NoticeView struct {
	Message string `json:"message"`
	Cue     string `json:"cue,omitempty"`
}

// UIView is the full chrome render for one session.
type UIView struct {
	OpenPanels   []string          `json:"openPanels"`
	ScrollLocked bool              `json:"scrollLocked"`
	Selection    SelectionView     `json:"selection"`
	Accordions   map[string]string `json:"accordions"`
	Notice       *NoticeView       `json:"notice,omitempty"`
}

// BuildUIView renders session state at the given instant. Expired notices
// are dropped here rather than by a background sweep.
func BuildUIView(state domain.SessionState, now time.Time) *UIView {
	sel := SelectionView{
		Colour:     state.Selection.EffectiveColour(),
		Size:       state.Selection.Size,
		SizeChosen: state.Selection.SizeChosen(),
		FitLabel:   state.Selection.FitLabel(),
		StickyMeta: state.Selection.StickyMeta(),
	}
	if state.ProductPrice > 0 {
		sel.AddToCartLabel = domain.AddToCartLabel(state.ProductPrice)
	}

	view := &UIView{
		OpenPanels:   append([]string{}, state.Panels...),
		ScrollLocked: state.Panels.ScrollLocked(),
		Selection:    sel,
		Accordions:   map[string]string{},
	}
	for group, open := range state.Accordions {
		view.Accordions[group] = open
	}
	if state.Notice.Active(now) {
		view.Notice = &NoticeView{Message: state.Notice.Message, Cue: state.Notice.Cue}
	}
	return view
}
