package dataprocessing

import (
	"bytes"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	apperrors "voltscan/internal/errors"
)

// Table is a column-oriented view of one CSV file. The first record is the
// header; Columns[i] holds the data cells of column i in row order.
type Table struct {
	Header  []string
	Columns [][]string
}

// Width returns the number of columns
func (t *Table) Width() int {
	return len(t.Header)
}

// Rows returns the number of data rows
func (t *Table) Rows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0])
}

// Column returns the cells of column index
func (t *Table) Column(index int) ([]string, error) {
	if index < 0 || index >= len(t.Columns) {
		return nil, apperrors.NewColumnIndexError(index, len(t.Columns))
	}
	return t.Columns[index], nil
}

// ReadTable parses CSV from r. Blank lines are skipped. A record wider
// than the header is a parse error; a narrower one is padded with empty
// cells, which read as missing values.
func ReadTable(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if stderrors.Is(err, io.EOF) {
		return nil, apperrors.NewEmptyFileError("")
	}
	if err != nil {
		return nil, readError("failed to read header", err)
	}

	width := len(header)
	table := &Table{
		Header:  header,
		Columns: make([][]string, width),
	}

	for {
		record, err := reader.Read()
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, readError("failed to read record", err)
		}
		if len(record) > width {
			line, _ := reader.FieldPos(0)
			return nil, apperrors.NewParsingError(
				fmt.Sprintf("expected %d fields in line %d, saw %d", width, line, len(record)), nil).
				WithContext("line", line)
		}
		for i := 0; i < width; i++ {
			cell := ""
			if i < len(record) {
				cell = record[i]
			}
			table.Columns[i] = append(table.Columns[i], cell)
		}
	}

	return table, nil
}

// readError classifies a csv.Reader failure. Syntax errors are parse
// errors; I/O and decoding failures are unexpected.
func readError(message string, err error) error {
	var parseErr *csv.ParseError
	if stderrors.As(err, &parseErr) {
		return apperrors.NewParsingError(message, err)
	}
	return apperrors.NewUnexpectedError(err)
}

// NewDecodingReader wraps r so that it yields UTF-8 from text in the named
// encoding. Names follow the WHATWG encoding index (shift_jis, utf-8, euc-jp).
// Reading fails with ErrUndecodable at the first byte sequence that is not
// valid in that encoding.
func NewDecodingReader(r io.Reader, encodingName string) (io.Reader, error) {
	enc, err := htmlindex.Get(encodingName)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", encodingName, err)
	}
	return transform.NewReader(r, &strictDecoder{
		decoder:  enc.NewDecoder(),
		encoding: encodingName,
	}), nil
}

// ErrUndecodable reports input that is not valid in the configured encoding
var ErrUndecodable = stderrors.New("input cannot be decoded")

// replacementChar is what x/text decoders emit for invalid input
var replacementChar = []byte(string(utf8.RuneError))

// strictDecoder turns the decoder's replacement characters into an error.
// A literal U+FFFD in the source is rejected too.
type strictDecoder struct {
	decoder  transform.Transformer
	encoding string
}

func (d *strictDecoder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	nDst, nSrc, err := d.decoder.Transform(dst, src, atEOF)
	if bytes.Contains(dst[:nDst], replacementChar) {
		return 0, 0, fmt.Errorf("%w as %s", ErrUndecodable, d.encoding)
	}
	return nDst, nSrc, err
}

func (d *strictDecoder) Reset() {
	d.decoder.Reset()
}

// missingMarkers are the cell spellings read as a missing value
var missingMarkers = map[string]bool{
	"": true, "#N/A": true, "#N/A N/A": true, "#NA": true, "-1.#IND": true,
	"-1.#QNAN": true, "-NaN": true, "-nan": true, "1.#IND": true, "1.#QNAN": true,
	"<NA>": true, "N/A": true, "NA": true, "NULL": true, "NaN": true, "None": true,
	"n/a": true, "nan": true, "null": true,
}

// IsMissing reports whether cell denotes a missing value
func IsMissing(cell string) bool {
	return missingMarkers[strings.TrimSpace(cell)]
}

// ParseNumber converts a cell to a float. Missing cells yield NaN. Only
// decimal and exponent forms (and inf) are numbers; hex floats, digit
// separators and other text are errors.
func ParseNumber(cell string) (float64, error) {
	if IsMissing(cell) {
		return math.NaN(), nil
	}
	s := strings.TrimSpace(cell)
	if strings.ContainsAny(s, "xX_") {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
	}
	return strconv.ParseFloat(s, 64)
}
