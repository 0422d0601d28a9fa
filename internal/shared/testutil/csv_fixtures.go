package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/text/encoding/japanese"
)

// MeasurementHeader is the five-column header used by measurement fixtures
var MeasurementHeader = []string{"id", "channel", "label", "time", "voltage"}

// MeasurementCSV renders rows of (time, voltage) pairs as a measurement file
// body with MeasurementHeader.
func MeasurementCSV(pairs ...[2]string) string {
	var b strings.Builder
	b.WriteString(strings.Join(MeasurementHeader, ","))
	b.WriteString("\n")
	for i, p := range pairs {
		b.WriteString(strings.Join([]string{strconv.Itoa(i + 1), "ch1", "run", p[0], p[1]}, ","))
		b.WriteString("\n")
	}
	return b.String()
}

// WriteFile writes content under t.TempDir() and returns its path
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	return WriteFileIn(t, t.TempDir(), name, content)
}

// WriteFileIn writes content to dir/name and returns the path
func WriteFileIn(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

// WriteShiftJIS writes content encoded as Shift_JIS under t.TempDir()
func WriteShiftJIS(t *testing.T, name, content string) string {
	t.Helper()

	encoded, err := japanese.ShiftJIS.NewEncoder().String(content)
	if err != nil {
		t.Fatalf("encode fixture %s: %v", name, err)
	}
	return WriteFile(t, name, encoded)
}
