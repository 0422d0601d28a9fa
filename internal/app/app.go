package app

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"voltscan/internal/config"
	"voltscan/internal/dataprocessing"
	"voltscan/internal/dialog"
	apperrors "voltscan/internal/errors"
	"voltscan/internal/exporter"
	"voltscan/internal/infrastructure"
	"voltscan/pkg/contracts/domain"
)

// Application represents the main application container
type Application struct {
	Config    *config.Config
	Logger    *slog.Logger
	Dialogs   dialog.Dialogs
	Scanner   *dataprocessing.Scanner
	Exporter  *exporter.Exporter
	Telemetry *infrastructure.Telemetry

	messages   config.Messages
	state      State
	ownsLogger bool
}

// Option configures an Application
type Option func(*Application)

// WithLogger uses logger instead of one built from the logging config
func WithLogger(logger *slog.Logger) Option {
	return func(a *Application) { a.Logger = logger }
}

// WithTelemetry uses tel instead of initializing providers from config
func WithTelemetry(tel *infrastructure.Telemetry) Option {
	return func(a *Application) { a.Telemetry = tel }
}

// New wires the logger, telemetry, scanner and exporter around dialogs
func New(cfg *config.Config, dialogs dialog.Dialogs, opts ...Option) (*Application, error) {
	if cfg == nil {
		return nil, apperrors.NewConfigError("configuration is required", nil)
	}
	if dialogs == nil {
		return nil, apperrors.NewAppValidationError("dialogs are required")
	}

	a := &Application{
		Config:   cfg,
		Dialogs:  dialogs,
		messages: cfg.Messages(),
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.Logger == nil {
		logger, err := infrastructure.InitializeLogger(cfg.Logging)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.Logger = logger
		a.ownsLogger = true
	}

	if a.Telemetry == nil {
		tel, err := infrastructure.InitializeTelemetry(cfg.Telemetry, a.Logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
		}
		a.Telemetry = tel
	}

	a.Scanner = dataprocessing.NewScanner(cfg,
		dataprocessing.WithScannerLogger(a.Logger),
		dataprocessing.WithScannerTelemetry(a.Telemetry.Tracer, a.Telemetry.Metrics))
	a.Exporter = exporter.New(cfg,
		exporter.WithLogger(a.Logger),
		exporter.WithTelemetry(a.Telemetry.Tracer, a.Telemetry.Metrics))

	a.Logger.Info("Application initialized",
		slog.String("name", config.AppName),
		slog.String("version", config.AppVersion),
		slog.String("locale", cfg.Locale),
		slog.String("encoding", cfg.Scanner.Encoding))
	return a, nil
}

// State returns the current pipeline state
func (a *Application) State() State {
	return a.state
}

// Run performs one select, scan, export pass. A non-nil preselected skips
// the file prompt and a non-empty destination skips the save prompt. A canceled
// prompt ends the run with a warning and no error; export failures are
// shown to the user and returned.
func (a *Application) Run(ctx context.Context, preselected []string, destination string) error {
	if a.state != StateIdle {
		return apperrors.NewAppValidationError(fmt.Sprintf("run started in state %s", a.state))
	}

	ctx = infrastructure.EnsureTraceID(ctx)
	ctx, span := a.Telemetry.Tracer.Start(ctx, "pipeline.run",
		trace.WithAttributes(attribute.String("trace.id", infrastructure.GetTraceID(ctx))))
	defer span.End()

	err := a.run(ctx, preselected, destination)
	if err != nil {
		infrastructure.RecordError(ctx, err)
	}
	if a.state != StateIdle {
		_ = a.transition(ctx, StateIdle)
	}
	return err
}

func (a *Application) run(ctx context.Context, preselected []string, destination string) error {
	if err := a.transition(ctx, StateSelecting); err != nil {
		return err
	}

	paths := preselected
	if paths == nil {
		selected, err := a.Dialogs.SelectFiles(ctx)
		if err != nil {
			a.Dialogs.Error(a.messages.ErrorTitle, fmt.Sprintf(a.messages.SelectFailed, err))
			return fmt.Errorf("select files: %w", err)
		}
		paths = selected
	}
	if len(paths) == 0 {
		a.Logger.WarnContext(ctx, "No files selected")
		a.Dialogs.Warn(a.messages.WarningTitle, a.messages.NoFilesSelected)
		return a.transition(ctx, StateIdle)
	}

	if err := a.transition(ctx, StateScanning); err != nil {
		return err
	}
	results := a.Scanner.ScanAll(ctx, paths)
	a.logSummary(ctx, results)

	if err := a.transition(ctx, StateExportPrompt); err != nil {
		return err
	}
	dest := destination
	if dest == "" {
		chosen, err := a.Dialogs.SaveAs(ctx)
		if err != nil {
			a.Dialogs.Error(a.messages.ErrorTitle, fmt.Sprintf(a.messages.SaveFailed, err))
			return fmt.Errorf("choose destination: %w", err)
		}
		dest = chosen
	}
	if dest == "" {
		a.Logger.WarnContext(ctx, "No destination chosen")
		a.Dialogs.Warn(a.messages.WarningTitle, a.messages.NoDestination)
		return a.transition(ctx, StateIdle)
	}

	req, err := exporter.NewRequest(dest)
	if err != nil {
		a.Logger.ErrorContext(ctx, "Unsupported export format",
			slog.String("destination", dest),
			slog.String("error", err.Error()))
		a.Dialogs.Error(a.messages.ErrorTitle, a.messages.UnsupportedFormat)
		return fmt.Errorf("export to %s: %w", dest, err)
	}

	if err := a.transition(ctx, StateWriting); err != nil {
		return err
	}
	if err := a.Exporter.Export(ctx, req, results); err != nil {
		a.Dialogs.Error(a.messages.ErrorTitle, a.exportFailure(req.Format, err))
		return fmt.Errorf("export to %s: %w", dest, err)
	}

	a.Dialogs.Info(a.messages.SuccessTitle, fmt.Sprintf(a.messages.Saved, dest))
	return a.transition(ctx, StateIdle)
}

// exportFailure renders the user-facing text for a failed export
func (a *Application) exportFailure(format domain.ExportFormat, err error) string {
	detail := err.Error()
	if appErr, ok := err.(*apperrors.AppError); ok && appErr.Cause != nil {
		detail = appErr.Cause.Error()
	}

	switch {
	case apperrors.IsType(err, apperrors.ErrTypeUnsupportedFormat):
		return a.messages.UnsupportedFormat
	case !apperrors.IsType(err, apperrors.ErrTypeStorage):
		return fmt.Sprintf(a.messages.SaveFailed, detail)
	}

	switch format {
	case domain.ExportFormatText:
		return fmt.Sprintf(a.messages.TextSaveFailed, detail)
	case domain.ExportFormatDelimited:
		return fmt.Sprintf(a.messages.CSVSaveFailed, detail)
	case domain.ExportFormatSpreadsheet:
		return fmt.Sprintf(a.messages.XLSXSaveFailed, detail)
	default:
		return fmt.Sprintf(a.messages.SaveFailed, detail)
	}
}

func (a *Application) logSummary(ctx context.Context, results []domain.ScanResult) {
	counts := map[domain.OutcomeKind]int{}
	for _, r := range results {
		counts[r.Outcome.Kind]++
	}
	a.Logger.InfoContext(ctx, "Scan complete",
		slog.Int("files", len(results)),
		slog.Int("ok", counts[domain.OutcomeOK]),
		slog.Int("no_match", counts[domain.OutcomeNoMatch]),
		slog.Int("failed", counts[domain.OutcomeFailed]))
}

// transition moves the pipeline to next, rejecting moves the state table
// does not allow
func (a *Application) transition(ctx context.Context, next State) error {
	if !a.state.CanTransition(next) {
		a.Logger.ErrorContext(ctx, "Invalid state transition",
			slog.String("from", a.state.String()),
			slog.String("to", next.String()))
		return apperrors.NewAppValidationError(fmt.Sprintf("invalid transition %s -> %s", a.state, next))
	}
	a.Logger.DebugContext(ctx, "State transition",
		slog.String("from", a.state.String()),
		slog.String("to", next.String()))
	a.state = next
	return nil
}

// Close flushes telemetry and releases the log file
func (a *Application) Close(ctx context.Context) error {
	a.Logger.Info("Application closing")

	var err error
	if a.Telemetry != nil {
		err = a.Telemetry.Shutdown(ctx)
	}
	if a.ownsLogger {
		if cerr := infrastructure.CloseLogFile(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
