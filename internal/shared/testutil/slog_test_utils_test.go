package testutil

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
)

func TestBufferedSlogHandler(t *testing.T) {
	t.Run("captures log records", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.Info("test message", slog.String("key", "value"))
		logger.Error("error message", slog.Int("code", 500))

		assert.Len(t, handler.GetRecords(), 2)
		assert.True(t, handler.ContainsMessage("test message"))
		assert.True(t, handler.ContainsAttr("key", "value"))
	})

	t.Run("filters by level", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.Debug("debug msg")
		logger.Info("info msg")
		logger.Warn("warn msg")
		logger.Error("error msg")

		assert.Len(t, handler.GetRecordsByLevel(slog.LevelInfo), 1)
		assert.Len(t, handler.GetRecordsByLevel(slog.LevelError), 1)
	})

	t.Run("bound attributes reach shared storage", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.With(slog.String("component", "scanner")).Info("scanned")

		require.Equal(t, 1, handler.Count())
		AssertLogAttr(t, handler, "component", "scanner")
	})

	t.Run("clear", func(t *testing.T) {
		logger, handler := NewTestLogger(t)
		logger.Info("one")
		handler.Clear()
		assert.Equal(t, 0, handler.Count())
	})
}

func TestMeasurementCSV(t *testing.T) {
	body := MeasurementCSV([2]string{"1", "-5"}, [2]string{"2", "50"})
	assert.Equal(t, "id,channel,label,time,voltage\n1,ch1,run,1,-5\n2,ch1,run,2,50\n", body)
}

func TestWriteShiftJIS(t *testing.T) {
	path := WriteShiftJIS(t, "sjis.csv", "時刻")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, []byte("時刻"), raw)

	decoded, err := japanese.ShiftJIS.NewDecoder().Bytes(raw)
	require.NoError(t, err)
	assert.Equal(t, "時刻", string(decoded))
}
