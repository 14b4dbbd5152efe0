package domain

// Known slide-over panels.
const (
	PanelNav       = "nav"
	PanelCart      = "cart"
	PanelFilters   = "filters"
	PanelSizeGuide = "size-guide"
)

// HeaderScrollOffset is the scroll depth past which the header collapses.
const HeaderScrollOffset = 20.0

// Panels tracks the set of open slide-over panels in open order. Body
// scroll stays locked while any panel is open, so closing one panel while
// another remains open cannot unlock the page, and closing the last one
// always releases the lock.
type Panels []string

// Open adds the panel; already-open panels are left in place.
func (p Panels) Open(name string) Panels {
	if p.IsOpen(name) {
		return p
	}
	return append(append(Panels{}, p...), name)
}

// Close removes the panel. Closing an absent panel is a no-op.
func (p Panels) Close(name string) Panels {
	next := make(Panels, 0, len(p))
	for _, open := range p {
		if open == name {
			continue
		}
		next = append(next, open)
	}
	return next
}

// IsOpen reports whether the panel is currently open.
func (p Panels) IsOpen(name string) bool {
	for _, open := range p {
		if open == name {
			return true
		}
	}
	return false
}

// ScrollLocked reports whether the body scroll lock is held.
func (p Panels) ScrollLocked() bool { return len(p) > 0 }

// HeaderScrolled reports whether the header shows its collapsed state at
// the given scroll offset.
func HeaderScrolled(offset float64) bool { return offset > HeaderScrollOffset }
