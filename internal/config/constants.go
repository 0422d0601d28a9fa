package config

import "voltscan/pkg/contracts"

// Application constants - all hardcoded values for voltscan
const (
	// Application Info
	AppName    = "voltscan"
	AppVersion = contracts.Version
	AppTitle   = "CSV処理アプリ"

	// Input layout. Column positions are fixed; columns past VoltageColumn
	// are ignored.
	TimeColumn      = 3
	VoltageColumn   = 4
	MinColumnCount  = VoltageColumn + 1
	VoltageRangeMin = 0.0
	VoltageRangeMax = 100.0

	// Rendering
	NaNText = "nan"

	// Defaults
	DefaultEncoding        = "shift_jis"
	DefaultLocale          = LocaleJapanese
	DefaultExportExtension = ".txt"

	// File Paths (relative to executable)
	DefaultLogsDir     = "logs"
	DefaultLogFileName = "voltscan.log"
	ConfigFileName     = "voltscan.yaml"

	// Export sheet
	SpreadsheetSheetName = "Sheet1"
)

// Locales understood by MessagesFor
const (
	LocaleJapanese = "ja"
	LocaleEnglish  = "en"
)
