package domain

import (
	"strings"
)

// OutcomeKind discriminates the result of scanning one file
type OutcomeKind string

const (
	// OutcomeOK means at least one row had a voltage in range
	OutcomeOK OutcomeKind = "ok"
	// OutcomeNoMatch means the file was read but no voltage was in range
	OutcomeNoMatch OutcomeKind = "no_match"
	// OutcomeFailed means the file could not be scanned
	OutcomeFailed OutcomeKind = "failed"
)

// ValueSeparator joins the time values of an OK outcome
const ValueSeparator = ", "

// Outcome is the result of scanning one file. Only the fields of its Kind
// are set: Values for OK, Message for NoMatch, ErrorType and Message for Failed.
type Outcome struct {
	Kind      OutcomeKind `json:"kind"`
	Values    []string    `json:"values,omitempty"`
	ErrorType string      `json:"error_type,omitempty"`
	Message   string      `json:"message,omitempty"`
}

// OK builds a successful outcome; values keep source row order and duplicates
func OK(values []string) Outcome {
	return Outcome{Kind: OutcomeOK, Values: values}
}

// NoMatch builds an outcome for a file with no voltage in range
func NoMatch(message string) Outcome {
	return Outcome{Kind: OutcomeNoMatch, Message: message}
}

// Failed builds an outcome for a file that could not be scanned
func Failed(errorType, message string) Outcome {
	return Outcome{Kind: OutcomeFailed, ErrorType: errorType, Message: message}
}

// Text renders the outcome the way it is exported
func (o Outcome) Text() string {
	if o.Kind == OutcomeOK {
		return strings.Join(o.Values, ValueSeparator)
	}
	return o.Message
}

// IsOK reports whether the outcome carries values
func (o Outcome) IsOK() bool {
	return o.Kind == OutcomeOK
}

// ScanResult pairs an input path with its outcome. One is produced per
// selected file, in selection order.
type ScanResult struct {
	Path    string  `json:"path"`
	Outcome Outcome `json:"outcome"`
}

// Text renders the outcome of the result
func (r ScanResult) Text() string {
	return r.Outcome.Text()
}

// ExportFormat is the closed set of destination formats
type ExportFormat string

const (
	ExportFormatText        ExportFormat = "text"
	ExportFormatDelimited   ExportFormat = "delimited"
	ExportFormatSpreadsheet ExportFormat = "spreadsheet"
)

// ExportRequest describes where and how results are written
type ExportRequest struct {
	Destination string       `json:"destination" validate:"required"`
	Format      ExportFormat `json:"format" validate:"required,oneof=text delimited spreadsheet"`
}
