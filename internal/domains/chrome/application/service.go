package application

import (
	"context"
	"fmt"
	"time"

	"github.com/wollylully/storefront/internal/domains/chrome/application/types"
	"github.com/wollylully/storefront/internal/domains/chrome/domain"
	"github.com/wollylully/storefront/internal/domains/chrome/ports"
)

var knownPanels = map[string]bool{
	domain.PanelNav:       true,
	domain.PanelCart:      true,
	domain.PanelFilters:   true,
	domain.PanelSizeGuide: true,
}

// Service orchestrates the UI chrome use cases. Every operation loads the
// session state, applies the pure domain transition and persists the whole
// state back, then renders a fresh view from it.
type Service struct {
	store ports.StateStore
	now   func() time.Time
}

// Option configures optional service dependencies.
type Option func(*Service)

// WithClock overrides the wall clock, used by notice expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService wires the chrome service with its state store.
func NewService(store ports.StateStore, opts ...Option) *Service {
	s := &Service{store: store, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State renders the current chrome without mutating it.
func (s *Service) State(ctx context.Context, sessionID string) (*types.UIView, error) {
	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return types.BuildUIView(state, s.now()), nil
}

// OpenPanel opens the named slide-over and takes the scroll lock.
func (s *Service) OpenPanel(ctx context.Context, sessionID, panel string) (*types.UIView, error) {
	if !knownPanels[panel] {
		return nil, fmt.Errorf("%w: unknown panel %q", ErrInvalidInput, panel)
	}
	return s.update(ctx, sessionID, func(state domain.SessionState) domain.SessionState {
		state.Panels = state.Panels.Open(panel)
		return state
	})
}

// ClosePanel closes the named slide-over; the scroll lock is released only
// when no other panel remains open.
func (s *Service) ClosePanel(ctx context.Context, sessionID, panel string) (*types.UIView, error) {
	if !knownPanels[panel] {
		return nil, fmt.Errorf("%w: unknown panel %q", ErrInvalidInput, panel)
	}
	return s.update(ctx, sessionID, func(state domain.SessionState) domain.SessionState {
		state.Panels = state.Panels.Close(panel)
		return state
	})
}

// Select updates the product page selection. Empty input fields leave
// their part of the selection alone.
func (s *Service) Select(ctx context.Context, sessionID string, input types.SelectInput) (*types.UIView, error) {
	return s.update(ctx, sessionID, func(state domain.SessionState) domain.SessionState {
		if input.Colour != "" {
			state.Selection = state.Selection.WithColour(input.Colour)
		}
		if input.Size != "" {
			state.Selection = state.Selection.WithSize(input.Size)
		}
		if input.Price > 0 {
			state.ProductPrice = input.Price
		}
		return state
	})
}

// ToggleAccordion opens the item in its group, closing any sibling, or
// collapses the group when the item was already open.
func (s *Service) ToggleAccordion(ctx context.Context, sessionID, group, item string) (*types.UIView, error) {
	if group == "" || item == "" {
		return nil, fmt.Errorf("%w: accordion group and item are required", ErrInvalidInput)
	}
	return s.update(ctx, sessionID, func(state domain.SessionState) domain.SessionState {
		state.Accordions = state.Accordions.Toggle(group, item)
		return state
	})
}

// Notify shows a transient notice, replacing the current one and
// restarting its expiry.
func (s *Service) Notify(ctx context.Context, sessionID, message, cue string) (*types.UIView, error) {
	if message == "" {
		return nil, fmt.Errorf("%w: notice message is required", ErrInvalidInput)
	}
	return s.update(ctx, sessionID, func(state domain.SessionState) domain.SessionState {
		state.Notice = domain.NewNotice(message, cue, s.now())
		return state
	})
}

func (s *Service) update(ctx context.Context, sessionID string, apply func(domain.SessionState) domain.SessionState) (*types.UIView, error) {
	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	next := apply(state)
	if err := s.store.Save(ctx, sessionID, next); err != nil {
		return nil, err
	}
	return types.BuildUIView(next, s.now()), nil
}

var _ ports.Service = (*Service)(nil)
