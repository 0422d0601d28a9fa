package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetPaths tests the GetPaths function with various scenarios
func TestGetPaths(t *testing.T) {
	t.Run("basic path resolution", func(t *testing.T) {
		paths, err := GetPaths()
		require.NoError(t, err)
		require.NotNil(t, paths)

		assert.True(t, filepath.IsAbs(paths.ExecutableDir), "ExecutableDir should be absolute")
		assert.True(t, filepath.IsAbs(paths.LogsDir), "LogsDir should be absolute")
		assert.Equal(t, filepath.Join(paths.ExecutableDir, "logs"), paths.LogsDir)
	})

	t.Run("consistent calls return same paths", func(t *testing.T) {
		paths1, err1 := GetPaths()
		require.NoError(t, err1)

		paths2, err2 := GetPaths()
		require.NoError(t, err2)

		assert.Equal(t, paths1, paths2)
	})
}

func TestPaths_GetLogPath(t *testing.T) {
	p := &Paths{ExecutableDir: "/opt/voltscan", LogsDir: "/opt/voltscan/logs"}
	assert.Equal(t, filepath.Join("/opt/voltscan/logs", "run.log"), p.GetLogPath("run.log"))
}

func TestPaths_EnsureDirectories(t *testing.T) {
	base := t.TempDir()
	p := &Paths{ExecutableDir: base, LogsDir: filepath.Join(base, "nested", "logs")}

	require.NoError(t, p.EnsureDirectories())

	info, err := os.Stat(p.LogsDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "present.csv")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(filepath.Join(dir, "absent.csv")))
}
