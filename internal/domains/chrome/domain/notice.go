package domain

import "time"

// NoticeTTL is how long a transient notice stays visible. Showing a new
// notice replaces the current one and restarts the clock, so only the
// latest is ever visible.
const NoticeTTL = 2800 * time.Millisecond

// Known notice cues.
const (
	CueShake = "shake"
)

// Notice is one transient, non-blocking notification.
type Notice struct {
	Message   string
	Cue       string
	ExpiresAt time.Time
}

// NewNotice creates a notice expiring one TTL after now.
func NewNotice(message, cue string, now time.Time) *Notice {
	return &Notice{Message: message, Cue: cue, ExpiresAt: now.Add(NoticeTTL)}
}

// Active reports whether the notice is still visible at now.
func (n *Notice) Active(now time.Time) bool {
	return n != nil && now.Before(n.ExpiresAt)
}

// SessionState is everything the UI chrome remembers for one visitor.
// ProductPrice is the price of the product whose page the selection
// belongs to; it feeds the sticky add-to-cart label.
type SessionState struct {
	Panels       Panels
	Selection    Selection
	ProductPrice float64
	Accordions   Accordions
	Notice       *Notice
}
