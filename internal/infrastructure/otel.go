package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.28.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"voltscan/internal/config"
)

const (
	ServiceName = "voltscan"
	MeterName   = "voltscan"
)

// Telemetry holds the OpenTelemetry providers for one application run
type Telemetry struct {
	TracerProvider *sdktrace.TracerProvider // nil when tracing is disabled
	MeterProvider  *sdkmetric.MeterProvider
	Tracer         trace.Tracer
	Metrics        *ScanMetrics

	registry    *promclient.Registry
	metricsFile string
	logger      *slog.Logger
}

// ScanMetrics are the counters recorded by the scanner and exporter
type ScanMetrics struct {
	filesScanned metric.Int64Counter
	scanDuration metric.Float64Histogram
	exports      metric.Int64Counter
}

// InitializeTelemetry sets up tracing and metrics for cfg. Metrics are
// always collected into a private Prometheus registry; they only leave the
// process when cfg.MetricsFile is set.
func InitializeTelemetry(cfg config.TelemetryConfig, logger *slog.Logger) (*Telemetry, error) {
	if logger == nil {
		logger = GetLogger()
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(ServiceName),
		semconv.ServiceVersion(config.AppVersion),
	)

	t := &Telemetry{
		metricsFile: cfg.MetricsFile,
		logger:      logger,
	}

	if err := t.initializeTracing(cfg, res); err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}
	if err := t.initializeMetrics(res); err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	logger.Debug("Telemetry initialized",
		slog.String("trace_exporter", cfg.TraceExporter),
		slog.String("metrics_file", cfg.MetricsFile))

	return t, nil
}

func (t *Telemetry) initializeTracing(cfg config.TelemetryConfig, res *resource.Resource) error {
	switch cfg.TraceExporter {
	case "stdout":
		exporter, err := stdouttrace.New(
			stdouttrace.WithWriter(os.Stderr),
			stdouttrace.WithPrettyPrint(),
		)
		if err != nil {
			return fmt.Errorf("failed to create trace exporter: %w", err)
		}
		t.TracerProvider = sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exporter),
			sdktrace.WithResource(res),
		)
		t.Tracer = t.TracerProvider.Tracer(MeterName, trace.WithInstrumentationVersion(config.AppVersion))
	case "none", "":
		t.Tracer = noop.NewTracerProvider().Tracer(MeterName)
	default:
		return fmt.Errorf("unsupported trace exporter: %s", cfg.TraceExporter)
	}
	return nil
}

func (t *Telemetry) initializeMetrics(res *resource.Resource) error {
	t.registry = promclient.NewRegistry()

	exporter, err := prometheus.New(prometheus.WithRegisterer(t.registry))
	if err != nil {
		return fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	t.MeterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
	)

	metrics, err := NewScanMetrics(t.MeterProvider.Meter(MeterName, metric.WithInstrumentationVersion(config.AppVersion)))
	if err != nil {
		return err
	}
	t.Metrics = metrics
	return nil
}

// NewScanMetrics creates the application counters on meter
func NewScanMetrics(meter metric.Meter) (*ScanMetrics, error) {
	filesScanned, err := meter.Int64Counter(
		"voltscan_files_scanned",
		metric.WithDescription("Number of CSV files scanned, by outcome"),
	)
	if err != nil {
		return nil, err
	}

	scanDuration, err := meter.Float64Histogram(
		"voltscan_scan_duration_seconds",
		metric.WithDescription("Time spent scanning one CSV file"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	exports, err := meter.Int64Counter(
		"voltscan_exports",
		metric.WithDescription("Number of export attempts, by format and result"),
	)
	if err != nil {
		return nil, err
	}

	return &ScanMetrics{
		filesScanned: filesScanned,
		scanDuration: scanDuration,
		exports:      exports,
	}, nil
}

// RecordScan counts one scanned file. A nil receiver is a no-op.
func (m *ScanMetrics) RecordScan(ctx context.Context, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	m.filesScanned.Add(ctx, 1, attrs)
	m.scanDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordExport counts one export attempt. A nil receiver is a no-op.
func (m *ScanMetrics) RecordExport(ctx context.Context, format string, success bool) {
	if m == nil {
		return
	}
	m.exports.Add(ctx, 1, metric.WithAttributes(
		attribute.String("format", format),
		attribute.Bool("success", success),
	))
}

// Gatherer exposes the metrics registry
func (t *Telemetry) Gatherer() promclient.Gatherer {
	return t.registry
}

// Shutdown flushes spans, writes the metrics textfile if configured and
// releases the providers.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error

	if t.TracerProvider != nil {
		if err := t.TracerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer provider shutdown: %w", err))
		}
	}

	if t.metricsFile != "" && t.registry != nil {
		if err := promclient.WriteToTextfile(t.metricsFile, t.registry); err != nil {
			errs = append(errs, fmt.Errorf("write metrics file: %w", err))
		} else {
			t.logger.Info("Metrics written", slog.String("path", t.metricsFile))
		}
	}

	if t.MeterProvider != nil {
		if err := t.MeterProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter provider shutdown: %w", err))
		}
	}

	return errors.Join(errs...)
}

// RecordError marks the span in ctx as failed
func RecordError(ctx context.Context, err error) {
	span := trace.SpanFromContext(ctx)
	if err == nil || !span.IsRecording() {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
