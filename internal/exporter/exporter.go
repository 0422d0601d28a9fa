package exporter

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"voltscan/internal/config"
	apperrors "voltscan/internal/errors"
	"voltscan/internal/infrastructure"
	"voltscan/internal/validation"
	"voltscan/pkg/contracts/domain"
)

// Exporter writes scan results to a destination in the requested format
type Exporter struct {
	messages config.Messages
	logger   *slog.Logger
	tracer   trace.Tracer
	metrics  *infrastructure.ScanMetrics
	validate *validator.Validate

	text *TextWriter
	csv  *CSVWriter
	xlsx *XLSXWriter
}

// Option configures an Exporter
type Option func(*Exporter)

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(e *Exporter) { e.logger = logger }
}

// WithTelemetry attaches a tracer and metrics
func WithTelemetry(tracer trace.Tracer, metrics *infrastructure.ScanMetrics) Option {
	return func(e *Exporter) {
		if tracer != nil {
			e.tracer = tracer
		}
		e.metrics = metrics
	}
}

// New creates an exporter whose headers follow cfg's locale
func New(cfg *config.Config, opts ...Option) *Exporter {
	e := &Exporter{
		messages: cfg.Messages(),
		logger:   infrastructure.GetLogger(),
		tracer:   noop.NewTracerProvider().Tracer(infrastructure.MeterName),
		validate: validation.NewStructValidator(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = infrastructure.WithComponent(e.logger, "exporter")
	e.text = NewTextWriter(e.logger)
	e.csv = NewCSVWriter(e.logger)
	e.xlsx = NewXLSXWriter(e.logger)
	return e
}

// Export writes results to req.Destination. Results are written in the
// order given. Write failures are returned as STORAGE errors carrying the
// format; an unknown format writes nothing.
func (e *Exporter) Export(ctx context.Context, req domain.ExportRequest, results []domain.ScanResult) (err error) {
	ctx, span := e.tracer.Start(ctx, "export.write", trace.WithAttributes(
		attribute.String("export.destination", req.Destination),
		attribute.String("export.format", string(req.Format)),
		attribute.Int("export.results", len(results)),
	))
	defer span.End()
	defer func() {
		if err != nil {
			infrastructure.RecordError(ctx, err)
		}
		e.metrics.RecordExport(ctx, string(req.Format), err == nil)
	}()

	if verr := e.validate.Struct(req); verr != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(verr, &fieldErrs) && len(fieldErrs) == 1 && fieldErrs[0].Tag() == "oneof" {
			return apperrors.NewUnsupportedFormatError(string(req.Format))
		}
		return apperrors.NewAppValidationError(verr.Error())
	}

	var writeErr error
	switch req.Format {
	case domain.ExportFormatText:
		writeErr = e.text.Write(req.Destination, results)
	case domain.ExportFormatDelimited:
		writeErr = e.csv.WriteSimpleCSV(req.Destination, e.headers(), records(results))
	case domain.ExportFormatSpreadsheet:
		writeErr = e.xlsx.Write(req.Destination, e.headers(), records(results))
	default:
		return apperrors.NewUnsupportedFormatError(string(req.Format))
	}

	if writeErr != nil {
		e.logger.ErrorContext(ctx, "Export failed",
			slog.String("destination", req.Destination),
			slog.String("format", string(req.Format)),
			slog.String("error", writeErr.Error()))
		return apperrors.NewStorageError("failed to write results", writeErr).
			WithContext("format", string(req.Format)).
			WithContext("destination", req.Destination)
	}

	e.logger.InfoContext(ctx, "Results exported",
		slog.String("destination", req.Destination),
		slog.String("format", string(req.Format)),
		slog.Int("results", len(results)))
	return nil
}

func (e *Exporter) headers() []string {
	return []string{e.messages.HeaderFile, e.messages.HeaderResult}
}

// records flattens results into (path, rendered) rows
func records(results []domain.ScanResult) [][]string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{r.Path, r.Text()})
	}
	return rows
}
