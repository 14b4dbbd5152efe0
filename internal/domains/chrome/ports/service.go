package ports

import (
	"context"

	"github.com/wollylully/storefront/internal/domains/chrome/application/types"
)

// Service drives the storefront's UI chrome: slide-over panels with a
// shared scroll lock, the product page selection, accordion groups and
// transient notices.
type Service interface {
	State(ctx context.Context, sessionID string) (*types.UIView, error)
	OpenPanel(ctx context.Context, sessionID, panel string) (*types.UIView, error)
	ClosePanel(ctx context.Context, sessionID, panel string) (*types.UIView, error)
	Select(ctx context.Context, sessionID string, input types.SelectInput) (*types.UIView, error)
	ToggleAccordion(ctx context.Context, sessionID, group, item string) (*types.UIView, error)
	Notify(ctx context.Context, sessionID, message, cue string) (*types.UIView, error)
}
