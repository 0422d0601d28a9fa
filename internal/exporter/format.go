package exporter

import (
	"path/filepath"
	"strings"

	apperrors "voltscan/internal/errors"
	"voltscan/pkg/contracts/domain"
)

var formatsByExtension = map[string]domain.ExportFormat{
	".txt":  domain.ExportFormatText,
	".csv":  domain.ExportFormatDelimited,
	".xlsx": domain.ExportFormatSpreadsheet,
}

// FormatFromPath resolves the export format from the destination's
// extension, ignoring case.
func FormatFromPath(path string) (domain.ExportFormat, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if format, ok := formatsByExtension[ext]; ok {
		return format, nil
	}
	return "", apperrors.NewUnsupportedFormatError(ext)
}

// NewRequest builds an export request for destination
func NewRequest(destination string) (domain.ExportRequest, error) {
	format, err := FormatFromPath(destination)
	if err != nil {
		return domain.ExportRequest{}, err
	}
	return domain.ExportRequest{Destination: destination, Format: format}, nil
}
