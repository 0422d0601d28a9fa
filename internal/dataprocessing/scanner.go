package dataprocessing

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"voltscan/internal/config"
	apperrors "voltscan/internal/errors"
	"voltscan/internal/infrastructure"
	"voltscan/pkg/contracts/domain"
)

// Scanner finds the times at which a file's voltage column lies in
// [VoltageRangeMin, VoltageRangeMax]
type Scanner struct {
	encoding string
	messages config.Messages
	logger   *slog.Logger
	tracer   trace.Tracer
	metrics  *infrastructure.ScanMetrics
}

// ScannerOption configures a Scanner
type ScannerOption func(*Scanner)

// WithScannerLogger sets the logger
func WithScannerLogger(logger *slog.Logger) ScannerOption {
	return func(s *Scanner) { s.logger = logger }
}

// WithScannerTelemetry attaches a tracer and metrics
func WithScannerTelemetry(tracer trace.Tracer, metrics *infrastructure.ScanMetrics) ScannerOption {
	return func(s *Scanner) {
		if tracer != nil {
			s.tracer = tracer
		}
		s.metrics = metrics
	}
}

// NewScanner creates a scanner using cfg's encoding and locale
func NewScanner(cfg *config.Config, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		encoding: cfg.Scanner.Encoding,
		messages: cfg.Messages(),
		logger:   infrastructure.GetLogger(),
		tracer:   noop.NewTracerProvider().Tracer(infrastructure.MeterName),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = infrastructure.WithComponent(s.logger, "scanner")
	return s
}

// ScanAll scans every path in order. A failing file never stops the batch.
func (s *Scanner) ScanAll(ctx context.Context, paths []string) []domain.ScanResult {
	results := make([]domain.ScanResult, 0, len(paths))
	for _, path := range paths {
		results = append(results, s.Scan(ctx, path))
	}
	return results
}

// Scan reads one file and reports the time values whose voltage is in
// range. Failures are folded into the outcome; Scan never returns an error.
func (s *Scanner) Scan(ctx context.Context, path string) domain.ScanResult {
	ctx, span := s.tracer.Start(ctx, "scan.file", trace.WithAttributes(attribute.String("file.path", path)))
	defer span.End()

	start := time.Now()
	values, err := s.scanFile(path)
	outcome := s.outcomeFor(values, err)
	duration := time.Since(start)

	span.SetAttributes(
		attribute.String("scan.outcome", string(outcome.Kind)),
		attribute.Int("scan.matches", len(values)),
	)
	s.metrics.RecordScan(ctx, string(outcome.Kind), duration)

	if err != nil {
		infrastructure.RecordError(ctx, err)
		s.logger.WarnContext(ctx, "File scan failed",
			slog.String("path", path),
			slog.String("error_type", outcome.ErrorType),
			slog.String("error", err.Error()),
			slog.Duration("duration", duration))
	} else {
		s.logger.InfoContext(ctx, "File scanned",
			slog.String("path", path),
			slog.String("outcome", string(outcome.Kind)),
			slog.Int("matches", len(values)),
			slog.Duration("duration", duration))
	}

	return domain.ScanResult{Path: path, Outcome: outcome}
}

// scanFile returns the matching time values, empty when nothing matched.
// Every error it returns is an *apperrors.AppError.
func (s *Scanner) scanFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NewNotFoundError(path, err)
		}
		return nil, apperrors.NewUnexpectedError(err)
	}
	defer file.Close()

	decoded, err := NewDecodingReader(file, s.encoding)
	if err != nil {
		return nil, apperrors.NewUnexpectedError(err)
	}

	table, err := ReadTable(decoded)
	if err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok {
			return nil, appErr.WithContext("path", path)
		}
		return nil, apperrors.NewUnexpectedError(err)
	}

	if table.Width() < config.MinColumnCount {
		return nil, apperrors.NewMissingColumnsError(table.Width(), config.MinColumnCount)
	}

	times, err := table.Column(config.TimeColumn)
	if err != nil {
		return nil, err
	}
	voltages, err := table.Column(config.VoltageColumn)
	if err != nil {
		return nil, err
	}

	indices, err := SelectInRange(voltages, config.VoltageRangeMin, config.VoltageRangeMax)
	if err != nil {
		return nil, apperrors.NewUnexpectedError(err)
	}

	values := make([]string, 0, len(indices))
	for _, i := range indices {
		values = append(values, renderCell(times[i]))
	}
	return values, nil
}

// SelectInRange returns the row indices whose value lies in [min, max],
// ascending. Missing cells never match; a non-numeric cell fails the whole
// column.
func SelectInRange(cells []string, min, max float64) ([]int, error) {
	var indices []int
	for i, cell := range cells {
		v, err := ParseNumber(cell)
		if err != nil {
			return nil, fmt.Errorf("could not convert %q in row %d to a number: %w", cell, i, err)
		}
		if v >= min && v <= max {
			indices = append(indices, i)
		}
	}
	return indices, nil
}

// renderCell stringifies a time cell; missing values print as "nan"
func renderCell(cell string) string {
	if IsMissing(cell) {
		return config.NaNText
	}
	return cell
}

// outcomeFor maps a scan result onto the outcome union
func (s *Scanner) outcomeFor(values []string, err error) domain.Outcome {
	if err != nil {
		errType := apperrors.TypeOf(err)
		return domain.Failed(string(errType), s.messageFor(errType, err))
	}
	if len(values) == 0 {
		return domain.NoMatch(s.messages.NoMatch)
	}
	return domain.OK(values)
}

func (s *Scanner) messageFor(errType apperrors.ErrorType, err error) string {
	switch errType {
	case apperrors.ErrTypeEmptyFile:
		return s.messages.EmptyFile
	case apperrors.ErrTypeParsing:
		return s.messages.ParseError
	case apperrors.ErrTypeNotFound:
		return s.messages.NotFound
	case apperrors.ErrTypeColumnIndex:
		return s.messages.ColumnIndex
	case apperrors.ErrTypeMissingColumns:
		return s.messages.MissingColumns
	default:
		detail := err.Error()
		var appErr *apperrors.AppError
		if stderrors.As(err, &appErr) && appErr.Cause != nil {
			detail = appErr.Cause.Error()
		}
		return fmt.Sprintf(s.messages.Unexpected, detail)
	}
}
