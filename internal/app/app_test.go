package app

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"voltscan/internal/config"
	"voltscan/internal/dialog"
	apperrors "voltscan/internal/errors"
	"voltscan/internal/shared/testutil"
)

// fakeDialogs scripts the prompts and records every notice
type fakeDialogs struct {
	files     []string
	selectErr error
	dest      string
	saveErr   error

	selectCalls int
	saveCalls   int
	notices     []dialog.Notice
}

func (f *fakeDialogs) SelectFiles(context.Context) ([]string, error) {
	f.selectCalls++
	return f.files, f.selectErr
}

func (f *fakeDialogs) SaveAs(context.Context) (string, error) {
	f.saveCalls++
	return f.dest, f.saveErr
}

func (f *fakeDialogs) Info(title, message string) {
	f.notices = append(f.notices, dialog.Notice{Level: dialog.LevelInfo, Title: title, Message: message})
}

func (f *fakeDialogs) Warn(title, message string) {
	f.notices = append(f.notices, dialog.Notice{Level: dialog.LevelWarning, Title: title, Message: message})
}

func (f *fakeDialogs) Error(title, message string) {
	f.notices = append(f.notices, dialog.Notice{Level: dialog.LevelError, Title: title, Message: message})
}

func (f *fakeDialogs) only(t *testing.T) dialog.Notice {
	t.Helper()
	require.Len(t, f.notices, 1)
	return f.notices[0]
}

func newTestApp(t *testing.T, dialogs dialog.Dialogs) (*Application, *testutil.BufferedSlogHandler) {
	t.Helper()
	logger, handler := testutil.NewTestLogger(t)
	application, err := New(config.Default(), dialogs, WithLogger(logger))
	require.NoError(t, err)
	t.Cleanup(func() { application.Close(context.Background()) })
	return application, handler
}

func measurementFiles(t *testing.T) (dir string, first, second string) {
	t.Helper()
	dir = t.TempDir()
	first = testutil.WriteFileIn(t, dir, "first.csv",
		testutil.MeasurementCSV([2]string{"1", "-5"}, [2]string{"2", "50"}, [2]string{"3", "150"}))
	second = testutil.WriteFileIn(t, dir, "second.csv",
		testutil.MeasurementCSV([2]string{"0", "0"}, [2]string{"1", "100"}))
	return dir, first, second
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil, &fakeDialogs{})
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeConfig))

	_, err = New(config.Default(), nil)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))
}

func TestRun_TextExport(t *testing.T) {
	dir, first, second := measurementFiles(t)
	dest := filepath.Join(dir, "result.txt")
	dialogs := &fakeDialogs{files: []string{first, second}, dest: dest}
	application, handler := newTestApp(t, dialogs)

	require.NoError(t, application.Run(context.Background(), nil, ""))

	content, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, first+": 2\n"+second+": 0, 1\n", string(content))

	notice := dialogs.only(t)
	assert.Equal(t, dialog.LevelInfo, notice.Level)
	assert.Equal(t, "成功", notice.Title)
	assert.Equal(t, "結果が "+dest+" に保存されました。", notice.Message)
	assert.Equal(t, StateIdle, application.State())

	testutil.AssertLogContains(t, handler, slog.LevelInfo, "Scan complete")
	testutil.AssertLogAttr(t, handler, "ok", int64(2))
	testutil.AssertNoErrors(t, handler)
}

func TestRun_DelimitedExport(t *testing.T) {
	dir, first, second := measurementFiles(t)
	missing := filepath.Join(dir, "missing.csv")
	dest := filepath.Join(dir, "result.csv")
	dialogs := &fakeDialogs{files: []string{first, missing, second}, dest: dest}
	application, _ := newTestApp(t, dialogs)

	require.NoError(t, application.Run(context.Background(), nil, ""))

	raw, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}))
	rows, err := csv.NewReader(bytes.NewReader(raw[3:])).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"ファイル名", "結果"},
		{first, "2"},
		{missing, "エラー: ファイルが見つかりません"},
		{second, "0, 1"},
	}, rows)
}

func TestRun_SpreadsheetExport(t *testing.T) {
	dir, first, _ := measurementFiles(t)
	dest := filepath.Join(dir, "result.xlsx")
	application, _ := newTestApp(t, &fakeDialogs{files: []string{first}, dest: dest})

	require.NoError(t, application.Run(context.Background(), nil, ""))

	f, err := excelize.OpenFile(dest)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"ファイル名", "結果"}, {first, "2"}}, rows)
}

func TestRun_PreselectedBypassesPrompts(t *testing.T) {
	dir, first, _ := measurementFiles(t)
	dest := filepath.Join(dir, "result.txt")
	dialogs := &fakeDialogs{}
	application, _ := newTestApp(t, dialogs)

	require.NoError(t, application.Run(context.Background(), []string{first}, dest))

	assert.Zero(t, dialogs.selectCalls)
	assert.Zero(t, dialogs.saveCalls)
	assert.FileExists(t, dest)
}

func TestRun_NoFilesSelected(t *testing.T) {
	dialogs := &fakeDialogs{}
	application, _ := newTestApp(t, dialogs)

	require.NoError(t, application.Run(context.Background(), nil, ""))

	notice := dialogs.only(t)
	assert.Equal(t, dialog.LevelWarning, notice.Level)
	assert.Equal(t, "警告", notice.Title)
	assert.Equal(t, "ファイルが選択されていません。", notice.Message)
	assert.Zero(t, dialogs.saveCalls)
	assert.Equal(t, StateIdle, application.State())
}

func TestRun_NoDestination(t *testing.T) {
	_, first, _ := measurementFiles(t)
	dialogs := &fakeDialogs{files: []string{first}}
	application, _ := newTestApp(t, dialogs)

	require.NoError(t, application.Run(context.Background(), nil, ""))

	notice := dialogs.only(t)
	assert.Equal(t, dialog.LevelWarning, notice.Level)
	assert.Equal(t, "保存先が指定されていません。", notice.Message)
	assert.Equal(t, StateIdle, application.State())
}

func TestRun_UnsupportedFormat(t *testing.T) {
	dir, first, _ := measurementFiles(t)
	dest := filepath.Join(dir, "result.json")
	dialogs := &fakeDialogs{files: []string{first}, dest: dest}
	application, _ := newTestApp(t, dialogs)

	err := application.Run(context.Background(), nil, "")

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeUnsupportedFormat))
	assert.NoFileExists(t, dest)

	notice := dialogs.only(t)
	assert.Equal(t, dialog.LevelError, notice.Level)
	assert.Equal(t, "エラー", notice.Title)
	assert.Equal(t, "対応していないファイル形式です。", notice.Message)
	assert.Equal(t, StateIdle, application.State())
}

func TestRun_WriteFailure(t *testing.T) {
	dir, first, _ := measurementFiles(t)
	dest := filepath.Join(dir, "missing-dir", "result.csv")
	dialogs := &fakeDialogs{files: []string{first}, dest: dest}
	application, _ := newTestApp(t, dialogs)

	err := application.Run(context.Background(), nil, "")

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))
	notice := dialogs.only(t)
	assert.Equal(t, dialog.LevelError, notice.Level)
	assert.Contains(t, notice.Message, "CSVファイルの保存中にエラーが発生しました: ")
	assert.Equal(t, StateIdle, application.State())
}

func TestRun_SelectError(t *testing.T) {
	dialogs := &fakeDialogs{selectErr: errors.New("stdin closed")}
	application, _ := newTestApp(t, dialogs)

	err := application.Run(context.Background(), nil, "")

	assert.ErrorContains(t, err, "stdin closed")
	notice := dialogs.only(t)
	assert.Equal(t, dialog.LevelError, notice.Level)
	assert.Equal(t, "ファイル選択中にエラーが発生しました: stdin closed", notice.Message)
	assert.Equal(t, StateIdle, application.State())
}

func TestRun_SaveError(t *testing.T) {
	_, first, _ := measurementFiles(t)
	dialogs := &fakeDialogs{files: []string{first}, saveErr: errors.New("tty gone")}
	application, _ := newTestApp(t, dialogs)

	err := application.Run(context.Background(), nil, "")

	assert.ErrorContains(t, err, "tty gone")
	assert.Equal(t, "結果の保存中にエラーが発生しました: tty gone", dialogs.only(t).Message)
}

func TestRun_Repeatable(t *testing.T) {
	dir, first, second := measurementFiles(t)
	dialogs := &fakeDialogs{}
	application, _ := newTestApp(t, dialogs)

	require.NoError(t, application.Run(context.Background(), []string{first}, filepath.Join(dir, "one.txt")))
	require.NoError(t, application.Run(context.Background(), []string{second}, filepath.Join(dir, "two.txt")))

	assert.Len(t, dialogs.notices, 2)
	assert.FileExists(t, filepath.Join(dir, "two.txt"))
}

func TestRun_EnglishLocale(t *testing.T) {
	cfg := config.Default()
	cfg.Locale = config.LocaleEnglish
	logger, _ := testutil.NewTestLogger(t)
	dialogs := &fakeDialogs{}

	application, err := New(cfg, dialogs, WithLogger(logger))
	require.NoError(t, err)
	defer application.Close(context.Background())

	require.NoError(t, application.Run(context.Background(), nil, ""))
	assert.Equal(t, config.MessagesFor(config.LocaleEnglish).NoFilesSelected, dialogs.only(t).Message)
}
