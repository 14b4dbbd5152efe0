package ports

import (
	"context"

	"github.com/wollylully/storefront/internal/domains/chrome/domain"
)

// StateStore persists per-session chrome state. A missing session loads
// as the zero state.
type StateStore interface {
	Load(ctx context.Context, sessionID string) (domain.SessionState, error)
	Save(ctx context.Context, sessionID string, state domain.SessionState) error
}
