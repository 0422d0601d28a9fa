package exporter

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"voltscan/pkg/contracts/domain"
)

// TextWriter writes one "<path>: <result>" line per scan result
type TextWriter struct {
	logger *slog.Logger
}

// NewTextWriter creates a new text writer instance
func NewTextWriter(logger *slog.Logger) *TextWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &TextWriter{logger: logger}
}

// Write creates or truncates filePath as UTF-8 text without a header
func (w *TextWriter) Write(filePath string, results []domain.ScanResult) error {
	w.logger.Info("Writing text file",
		slog.String("file_path", filePath),
		slog.Int("record_count", len(results)))

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	buf := bufio.NewWriter(file)
	for _, r := range results {
		if _, err := fmt.Fprintf(buf, "%s: %s\n", r.Path, r.Text()); err != nil {
			return fmt.Errorf("failed to write line for %s: %w", r.Path, err)
		}
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush text: %w", err)
	}
	return file.Close()
}
