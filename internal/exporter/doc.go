// Package exporter writes scan results to disk.
//
// The destination's extension selects the format:
//
//	.txt   one "<path>: <result>" line per file, UTF-8, no header
//	.csv   UTF-8 with BOM, a localized [file name, result] header
//	.xlsx  one sheet named Sheet1, header in row 1, no index column
//
// Example usage:
//
//	req, err := exporter.NewRequest("results.csv")
//	if err != nil {
//	    return err // UNSUPPORTED_FORMAT
//	}
//	err = exporter.New(cfg).Export(ctx, req, results)
package exporter
