package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/encoding/htmlindex"
)

// NewStructValidator returns a validator with the project's custom rules
// registered:
//
//	encoding   - a text encoding name known to the WHATWG index (shift_jis, utf-8, ...)
//	export_ext - one of the supported export extensions
func NewStructValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "encoding", isKnownEncoding)
	mustRegister(v, "export_ext", isExportExtension)
	return v
}

// mustRegister panics when a rule cannot be registered, which only happens
// for an empty tag or a nil function
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

func isKnownEncoding(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" {
		return false
	}
	_, err := htmlindex.Get(name)
	return err == nil
}

// ExportExtensions lists the destination extensions the exporter can write
var ExportExtensions = []string{".txt", ".csv", ".xlsx"}

func isExportExtension(fl validator.FieldLevel) bool {
	return IsExportExtension(fl.Field().String())
}

// IsExportExtension reports whether ext (with its dot) is writable. The
// comparison is case-insensitive.
func IsExportExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, e := range ExportExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
