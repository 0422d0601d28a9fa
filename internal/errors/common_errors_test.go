package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without cause",
			err:  NewAppError(ErrTypeMissingColumns, "table has 3 columns, need at least 5", nil),
			want: "[MISSING_COLUMNS] table has 3 columns, need at least 5",
		},
		{
			name: "with cause",
			err:  NewAppError(ErrTypeStorage, "failed to write", fmt.Errorf("disk full")),
			want: "[STORAGE] failed to write: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	err := NewNotFoundError("/data/a.csv", fs.ErrNotExist)
	assert.True(t, stderrors.Is(err, fs.ErrNotExist))

	wrapped := fmt.Errorf("scan: %w", err)
	var appErr *AppError
	require.True(t, stderrors.As(wrapped, &appErr))
	assert.Equal(t, ErrTypeNotFound, appErr.Type)
}

func TestAppError_WithContext(t *testing.T) {
	err := &AppError{Type: ErrTypeParsing, Message: "bad row"}
	err.WithContext("line", 3).WithContext("path", "a.csv")

	assert.Equal(t, 3, err.Context["line"])
	assert.Equal(t, "a.csv", err.Context["path"])
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{name: "empty file", err: NewEmptyFileError("a.csv"), want: ErrTypeEmptyFile},
		{name: "parsing", err: NewParsingError("bad", nil), want: ErrTypeParsing},
		{name: "not found", err: NewNotFoundError("a.csv", nil), want: ErrTypeNotFound},
		{name: "column index", err: NewColumnIndexError(7, 5), want: ErrTypeColumnIndex},
		{name: "missing columns", err: NewMissingColumnsError(3, 5), want: ErrTypeMissingColumns},
		{name: "unsupported format", err: NewUnsupportedFormatError(".json"), want: ErrTypeUnsupportedFormat},
		{name: "canceled", err: NewCanceledError("file selection"), want: ErrTypeCanceled},
		{name: "wrapped storage", err: fmt.Errorf("export: %w", NewStorageError("x", nil)), want: ErrTypeStorage},
		{name: "plain error", err: fmt.Errorf("boom"), want: ErrTypeUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeOf(tt.err))
			assert.True(t, IsType(tt.err, tt.want) || tt.want == ErrTypeUnexpected)
		})
	}
}

func TestIsType(t *testing.T) {
	err := NewUnsupportedFormatError(".json")
	assert.True(t, IsType(err, ErrTypeUnsupportedFormat))
	assert.False(t, IsType(err, ErrTypeStorage))
	assert.False(t, IsType(fmt.Errorf("plain"), ErrTypeStorage))
	assert.False(t, IsType(nil, ErrTypeStorage))
}

func TestHelperContext(t *testing.T) {
	err := NewMissingColumnsError(3, 5)
	assert.Equal(t, 3, err.Context["have"])
	assert.Equal(t, 5, err.Context["want"])

	idx := NewColumnIndexError(9, 5)
	assert.Contains(t, idx.Message, "column 9")

	ext := NewUnsupportedFormatError(".json")
	assert.Equal(t, ".json", ext.Context["extension"])
}
