package dialog

import "context"

// Dialogs is the user-facing surface of the pipeline: picking inputs,
// picking a destination, and reporting outcomes.
type Dialogs interface {
	// SelectFiles returns the chosen CSV paths in selection order. An empty
	// slice with a nil error means the user canceled.
	SelectFiles(ctx context.Context) ([]string, error)

	// SaveAs returns the chosen destination, or "" when canceled
	SaveAs(ctx context.Context) (string, error)

	Info(title, message string)
	Warn(title, message string)
	Error(title, message string)
}

// Level is the severity of a notice
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is one message shown to the user
type Notice struct {
	Level   Level
	Title   string
	Message string
}
