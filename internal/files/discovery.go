package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// CSVExtension is matched case-insensitively
const CSVExtension = ".csv"

// FileInfo represents information about a discovered file
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Discovery resolves relative directories and patterns against basePath
type Discovery struct {
	basePath string
}

// NewDiscovery creates a new file discovery instance. An empty basePath
// means the working directory.
func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

// Resolve joins a relative path onto the base path
func (d *Discovery) Resolve(path string) string {
	if filepath.IsAbs(path) || d.basePath == "" {
		return path
	}
	return filepath.Join(d.basePath, path)
}

// IsCSV reports whether name has the CSV extension
func IsCSV(name string) bool {
	return strings.EqualFold(filepath.Ext(name), CSVExtension)
}

// FindCSVFiles lists the CSV files directly inside dir, sorted by name.
// Subdirectories are not descended.
func (d *Discovery) FindCSVFiles(dir string) ([]FileInfo, error) {
	fullPath := d.Resolve(dir)

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", fullPath, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() || !IsCSV(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Path:    filepath.Join(fullPath, entry.Name()),
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	return files, nil
}

// FindFilesByPattern returns the regular files matching a glob pattern,
// sorted by path
func (d *Discovery) FindFilesByPattern(pattern string) ([]FileInfo, error) {
	matches, err := filepath.Glob(d.Resolve(pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
	}

	var files []FileInfo
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, FileInfo{
			Path:    match,
			Name:    filepath.Base(match),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return files, nil
}

// HasGlobMeta reports whether path contains glob metacharacters
func HasGlobMeta(path string) bool {
	return strings.ContainsAny(path, "*?[")
}

// Paths extracts the Path of each file
func Paths(files []FileInfo) []string {
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	return paths
}
