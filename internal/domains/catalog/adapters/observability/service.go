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

	catalogtypes "github.com/wollylully/storefront/internal/domains/catalog/application/types"
	"github.com/wollylully/storefront/internal/domains/catalog/domain"
	"github.com/wollylully/storefront/internal/domains/catalog/ports"
)

const tracerName = "github.com/wollylully/storefront/internal/domains/catalog/adapters/observability/service"

// Service decorates the catalog service with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	applies metric.Int64Counter
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		if m != nil {
			s.applies, _ = m.Int64Counter("catalog.service.filter_applies", metric.WithDescription("Number of filter applications"))
		}
	}
}

// New wraps the core catalog service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:  inner,
		tracer: nooptrace.NewTracerProvider().Tracer(tracerName),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) Products(ctx context.Context) ([]domain.ProductCard, error) {
	ctx, span := s.tracer.Start(ctx, "Service.Products")
	defer span.End()

	cards, err := s.inner.Products(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list products")
	}
	span.SetAttributes(attribute.Int("catalog.cards", len(cards)))
	return cards, nil
}

func (s *Service) Apply(ctx context.Context, input catalogtypes.ApplyInput) (*catalogtypes.ApplyResult, error) {
	ctx, span := s.tracer.Start(ctx, "Service.Apply",
		trace.WithAttributes(attribute.String("filter.action", input.Action.Kind)),
	)
	defer span.End()

	result, err := s.inner.Apply(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to apply filters", slog.String("action", input.Action.Kind))
	}
	if s.applies != nil {
		s.applies.Add(ctx, 1, metric.WithAttributes(attribute.String("filter.action", input.Action.Kind)))
	}
	span.SetAttributes(
		attribute.Int("filter.visible", result.Grid.VisibleCount),
		attribute.Int("filter.active", result.Grid.ActiveCount),
	)
	return result, nil
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

var _ ports.Service = (*Service)(nil)
