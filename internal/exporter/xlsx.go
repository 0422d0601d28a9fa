package exporter

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"voltscan/internal/config"
)

// XLSXWriter writes a single-sheet workbook with a bold header row
type XLSXWriter struct {
	logger *slog.Logger
}

// NewXLSXWriter creates a new workbook writer instance
func NewXLSXWriter(logger *slog.Logger) *XLSXWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &XLSXWriter{logger: logger}
}

// Write saves headers and records to filePath, replacing any existing file
func (w *XLSXWriter) Write(filePath string, headers []string, records [][]string) (err error) {
	w.logger.Info("Writing workbook",
		slog.String("file_path", filePath),
		slog.Int("record_count", len(records)))

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close workbook: %w", cerr)
		}
	}()

	sheet := config.SpreadsheetSheetName
	if name := f.GetSheetName(0); name != sheet {
		if err := f.SetSheetName(name, sheet); err != nil {
			return fmt.Errorf("failed to name sheet: %w", err)
		}
	}

	if err := setRow(f, sheet, 1, headers); err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if len(headers) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
			return fmt.Errorf("failed to style header: %w", err)
		}
	}

	for i, record := range records {
		if err := setRow(f, sheet, i+2, record); err != nil {
			return err
		}
	}

	if err := f.SaveAs(filePath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}
