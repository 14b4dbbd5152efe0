package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	carttypes "github.com/wollylully/storefront/internal/domains/cart/application/types"
	"github.com/wollylully/storefront/internal/domains/cart/ports"
)

const tracerName = "github.com/wollylully/storefront/internal/domains/cart/adapters/observability/service"

// Service decorates the cart application port with tracing, logging, and
// metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core cart service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

// Drawer rebuilds the drawer projection with instrumentation.
func (s *Service) Drawer(ctx context.Context, cartKey string) (*carttypes.DrawerView, error) {
	ctx, span := s.startSpan(ctx, "Service.Drawer")
	defer span.End()

	view, err := s.inner.Drawer(ctx, cartKey)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to build cart drawer")
	}
	span.SetAttributes(attribute.Int("cart.lines", len(view.Items)))
	return view, nil
}

// Badge returns the header badge projection.
func (s *Service) Badge(ctx context.Context, cartKey string) (*carttypes.BadgeView, error) {
	ctx, span := s.startSpan(ctx, "Service.Badge")
	defer span.End()

	view, err := s.inner.Badge(ctx, cartKey)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to build cart badge")
	}
	span.SetAttributes(attribute.Int("cart.count", view.Count))
	return view, nil
}

// AddItem merges an item into the cart.
func (s *Service) AddItem(ctx context.Context, input carttypes.AddItemInput) (*carttypes.DrawerView, error) {
	ctx, span := s.startSpan(ctx, "Service.AddItem",
		attribute.String("cart.product_id", input.Item.ProductID),
		attribute.String("cart.size", input.Item.Size),
	)
	defer span.End()

	s.logInfo(ctx, "adding cart item", slog.String("product_id", input.Item.ProductID), slog.String("size", input.Item.Size))
	view, err := s.inner.AddItem(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to add cart item", slog.String("product_id", input.Item.ProductID))
	}
	s.metrics.recordItemAdded(ctx, input.Item.ProductID)
	s.logInfo(ctx, "cart item added", slog.String("product_id", input.Item.ProductID), slog.Int("cart.lines", len(view.Items)))
	return view, nil
}

// RemoveItem drops a cart line.
func (s *Service) RemoveItem(ctx context.Context, ref carttypes.LineRef) (*carttypes.DrawerView, error) {
	ctx, span := s.startSpan(ctx, "Service.RemoveItem",
		attribute.String("cart.product_id", ref.ProductID),
		attribute.String("cart.size", ref.Size),
	)
	defer span.End()

	s.logInfo(ctx, "removing cart item", slog.String("product_id", ref.ProductID), slog.String("size", ref.Size))
	view, err := s.inner.RemoveItem(ctx, ref)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to remove cart item", slog.String("product_id", ref.ProductID))
	}
	s.metrics.recordItemRemoved(ctx)
	return view, nil
}

// ChangeQuantity adjusts a line quantity.
func (s *Service) ChangeQuantity(ctx context.Context, input carttypes.ChangeQuantityInput) (*carttypes.DrawerView, error) {
	ctx, span := s.startSpan(ctx, "Service.ChangeQuantity",
		attribute.String("cart.product_id", input.ProductID),
		attribute.Int("cart.delta", input.Delta),
	)
	defer span.End()

	view, err := s.inner.ChangeQuantity(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to change cart quantity", slog.String("product_id", input.ProductID))
	}
	s.metrics.recordQuantityChanged(ctx)
	return view, nil
}

// Clear empties the cart.
func (s *Service) Clear(ctx context.Context, cartKey string) error {
	ctx, span := s.startSpan(ctx, "Service.Clear")
	defer span.End()

	if err := s.inner.Clear(ctx, cartKey); err != nil {
		return s.handleError(ctx, span, err, "failed to clear cart")
	}
	s.logInfo(ctx, "cart cleared")
	return nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := s.tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	}
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	itemsAdded      metric.Int64Counter
	itemsRemoved    metric.Int64Counter
	quantityChanges metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	itemsAdded, _ := m.Int64Counter("cart.service.items_added", metric.WithDescription("Number of add-to-cart operations"))
	itemsRemoved, _ := m.Int64Counter("cart.service.items_removed", metric.WithDescription("Number of cart line removals"))
	quantityChanges, _ := m.Int64Counter("cart.service.quantity_changes", metric.WithDescription("Number of quantity adjustments"))
	return serviceMetrics{
		itemsAdded:      itemsAdded,
		itemsRemoved:    itemsRemoved,
		quantityChanges: quantityChanges,
	}
}

func (m serviceMetrics) recordItemAdded(ctx context.Context, productID string) {
	addCounter(ctx, m.itemsAdded, 1, attribute.String("cart.product_id", productID))
}

func (m serviceMetrics) recordItemRemoved(ctx context.Context) {
	addCounter(ctx, m.itemsRemoved, 1)
}

func (m serviceMetrics) recordQuantityChanged(ctx context.Context) {
	addCounter(ctx, m.quantityChanges, 1)
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
