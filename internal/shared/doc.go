// Package shared holds helpers used across voltscan packages.
//
// The testutil subpackage provides a buffered slog handler for asserting
// on log output and fixture writers for measurement CSV files, including
// Shift_JIS encoded ones:
//
//	logger, handler := testutil.NewTestLogger(t)
//	path := testutil.WriteShiftJIS(t, "input.csv", testutil.MeasurementCSV([2]string{"1", "50"}))
package shared
