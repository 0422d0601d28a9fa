// Package dataprocessing scans measurement CSV files for rows whose voltage
// lies in the accepted range and reports the matching time values.
//
// # Usage
//
//	scanner := dataprocessing.NewScanner(cfg,
//	    dataprocessing.WithScannerLogger(logger),
//	    dataprocessing.WithScannerTelemetry(tel.Tracer, tel.Metrics))
//	results := scanner.ScanAll(ctx, paths)
//
// # File Layout
//
// The first record is the header. Column 3 holds the time and column 4 the
// voltage (zero-based). Files are decoded from the configured encoding,
// Shift_JIS by default.
//
// # Error Handling
//
// Scan never returns an error. Every failure is folded into the file's
// domain.Outcome with a localized message, so one bad file never stops a
// batch:
//
//	EMPTY_FILE       no header record
//	PARSING          malformed CSV or a row wider than the header
//	NOT_FOUND        the path does not exist
//	MISSING_COLUMNS  fewer than five columns
//	UNEXPECTED       anything else, including a non-numeric voltage
package dataprocessing
