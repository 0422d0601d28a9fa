package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("a,b\n"), 0644))
	}
}

func TestNewDiscovery(t *testing.T) {
	discovery := NewDiscovery("/test/base")

	assert.NotNil(t, discovery)
	assert.Equal(t, "/test/base", discovery.basePath)
}

func TestFindCSVFiles(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  []string
	}{
		{
			name:  "only CSV files",
			files: []string{"b.csv", "a.csv", "c.CSV"},
			want:  []string{"a.csv", "b.csv", "c.CSV"},
		},
		{
			name:  "mixed file types",
			files: []string{"data.csv", "report.xlsx", "notes.txt", "data.csv.bak"},
			want:  []string{"data.csv"},
		},
		{
			name:  "no CSV files",
			files: []string{"doc.pdf", "readme.txt"},
		},
		{
			name: "empty directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			createFiles(t, dir, tt.files...)

			found, err := NewDiscovery("").FindCSVFiles(dir)
			require.NoError(t, err)

			var names []string
			for _, f := range found {
				names = append(names, f.Name)
				assert.Equal(t, filepath.Join(dir, f.Name), f.Path)
				assert.Equal(t, int64(4), f.Size)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestFindCSVFiles_SkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.csv"), 0755))
	createFiles(t, dir, "top.csv")
	createFiles(t, filepath.Join(dir, "nested.csv"), "inner.csv")

	found, err := NewDiscovery("").FindCSVFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "top.csv")}, Paths(found))
}

func TestFindCSVFiles_RelativeToBase(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(base, "input"), 0755))
	createFiles(t, filepath.Join(base, "input"), "x.csv")

	found, err := NewDiscovery(base).FindCSVFiles("input")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(base, "input", "x.csv")}, Paths(found))
}

func TestFindCSVFiles_MissingDirectory(t *testing.T) {
	_, err := NewDiscovery("").FindCSVFiles(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorContains(t, err, "failed to read directory")
}

func TestFindFilesByPattern(t *testing.T) {
	dir := t.TempDir()
	createFiles(t, dir, "run1.csv", "run2.csv", "other.csv", "run3.txt")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "run4.csv"), 0755))

	found, err := NewDiscovery(dir).FindFilesByPattern("run*.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "run1.csv"), filepath.Join(dir, "run2.csv")}, Paths(found))

	_, err = NewDiscovery(dir).FindFilesByPattern("[")
	assert.Error(t, err)
}

func TestIsCSV(t *testing.T) {
	assert.True(t, IsCSV("a.csv"))
	assert.True(t, IsCSV("/x/y/A.CSV"))
	assert.False(t, IsCSV("a.csv.txt"))
	assert.False(t, IsCSV("csv"))
}

func TestHasGlobMeta(t *testing.T) {
	assert.True(t, HasGlobMeta("*.csv"))
	assert.True(t, HasGlobMeta("run?.csv"))
	assert.True(t, HasGlobMeta("run[12].csv"))
	assert.False(t, HasGlobMeta("/plain/path.csv"))
}
