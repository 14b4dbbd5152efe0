package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wollylully/storefront/internal/domains/chrome/application/types"
	"github.com/wollylully/storefront/internal/domains/chrome/domain"
)

type fakeStateStore struct {
	states map[string]domain.SessionState
}

func newFakeStateStore() *fakeStateStore {
	return &fakeStateStore{states: map[string]domain.SessionState{}}
}

func (f *fakeStateStore) Load(_ context.Context, sessionID string) (domain.SessionState, error) {
	return f.states[sessionID], nil
}

func (f *fakeStateStore) Save(_ context.Context, sessionID string, state domain.SessionState) error {
	f.states[sessionID] = state
	return nil
}

func frozenClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestOpenPanel_LocksScrollUntilLastCloses(t *testing.T) {
	svc := NewService(newFakeStateStore())
	ctx := context.Background()

	view, err := svc.OpenPanel(ctx, "s1", domain.PanelNav)
	require.NoError(t, err)
	assert.True(t, view.ScrollLocked)

	view, err = svc.OpenPanel(ctx, "s1", domain.PanelCart)
	require.NoError(t, err)
	assert.Equal(t, []string{domain.PanelNav, domain.PanelCart}, view.OpenPanels)

	view, err = svc.ClosePanel(ctx, "s1", domain.PanelNav)
	require.NoError(t, err)
	assert.True(t, view.ScrollLocked, "cart panel still holds the lock")

	view, err = svc.ClosePanel(ctx, "s1", domain.PanelCart)
	require.NoError(t, err)
	assert.False(t, view.ScrollLocked)
	assert.Empty(t, view.OpenPanels)
}

func TestOpenPanel_RejectsUnknownPanel(t *testing.T) {
	svc := NewService(newFakeStateStore())

	_, err := svc.OpenPanel(context.Background(), "s1", "basement")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSelect_DerivesFitLabelAndStickyBar(t *testing.T) {
	svc := NewService(newFakeStateStore())
	ctx := context.Background()

	view, err := svc.Select(ctx, "s1", types.SelectInput{Price: 285})
	require.NoError(t, err)
	assert.Equal(t, "Navy", view.Selection.Colour, "default swatch preselected")
	assert.False(t, view.Selection.SizeChosen)
	assert.Empty(t, view.Selection.FitLabel)
	assert.Equal(t, "ADD TO CART — CHF 285", view.Selection.AddToCartLabel)

	view, err = svc.Select(ctx, "s1", types.SelectInput{Size: "M"})
	require.NoError(t, err)
	assert.True(t, view.Selection.SizeChosen)
	assert.Equal(t, "Classic Fit — true to standard sizing", view.Selection.FitLabel)
	assert.Equal(t, "Navy · Size M", view.Selection.StickyMeta)

	view, err = svc.Select(ctx, "s1", types.SelectInput{Colour: "Camel"})
	require.NoError(t, err)
	assert.Equal(t, "M", view.Selection.Size, "colour change keeps the size")
	assert.Equal(t, "Camel · Size M", view.Selection.StickyMeta)
}

func TestToggleAccordion_SingleOpenPerGroup(t *testing.T) {
	svc := NewService(newFakeStateStore())
	ctx := context.Background()

	view, err := svc.ToggleAccordion(ctx, "s1", "details", "composition")
	require.NoError(t, err)
	assert.Equal(t, "composition", view.Accordions["details"])

	view, err = svc.ToggleAccordion(ctx, "s1", "details", "care")
	require.NoError(t, err)
	assert.Equal(t, "care", view.Accordions["details"])

	view, err = svc.ToggleAccordion(ctx, "s1", "details", "care")
	require.NoError(t, err)
	assert.Empty(t, view.Accordions["details"])

	_, err = svc.ToggleAccordion(ctx, "s1", "", "care")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNotify_ReplacementRestartsExpiry(t *testing.T) {
	store := newFakeStateStore()
	base := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	now := base
	svc := NewService(store, WithClock(func() time.Time { return now }))
	ctx := context.Background()

	view, err := svc.Notify(ctx, "s1", "Please select a size", domain.CueShake)
	require.NoError(t, err)
	require.NotNil(t, view.Notice)
	assert.Equal(t, "shake", view.Notice.Cue)

	// A second notice just before the first expires starts a fresh window.
	now = base.Add(2 * time.Second)
	view, err = svc.Notify(ctx, "s1", "Added to cart", "")
	require.NoError(t, err)
	require.NotNil(t, view.Notice)
	assert.Equal(t, "Added to cart", view.Notice.Message)

	now = base.Add(4 * time.Second)
	view, err = svc.State(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, view.Notice, "replacement reset the expiry")

	now = base.Add(5 * time.Second)
	view, err = svc.State(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, view.Notice, "expired after its own window")
}

func TestNotify_RequiresMessage(t *testing.T) {
	svc := NewService(newFakeStateStore(), WithClock(frozenClock(time.Now())))

	_, err := svc.Notify(context.Background(), "s1", "", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestState_FreshSessionIsZero(t *testing.T) {
	svc := NewService(newFakeStateStore())

	view, err := svc.State(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, view.OpenPanels)
	assert.False(t, view.ScrollLocked)
	assert.False(t, view.Selection.SizeChosen)
	assert.Nil(t, view.Notice)
}
