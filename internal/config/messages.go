package config

// Messages is the user-facing text catalog. Scan outcome messages are
// fixed per cause so results can be matched on their prefix.
type Messages struct {
	// Scan outcomes
	EmptyFile      string
	ParseError     string
	NotFound       string
	ColumnIndex    string
	MissingColumns string
	Unexpected     string // %s receives the underlying error text
	NoMatch        string

	// Export header labels
	HeaderFile   string
	HeaderResult string

	// Dialog titles
	WarningTitle string
	ErrorTitle   string
	SuccessTitle string

	// Dialog bodies
	SelectPrompt      string
	SavePrompt        string
	NoFilesSelected   string
	NotCSVFile        string // %s receives the rejected entry
	NoPatternMatch    string // %s receives the pattern
	NoDestination     string
	UnsupportedFormat string
	Saved             string // %s receives the destination path
	SelectFailed      string // %s receives the error text
	SaveFailed        string // %s receives the error text
	TextSaveFailed    string // %s receives the error text
	CSVSaveFailed     string // %s receives the error text
	XLSXSaveFailed    string // %s receives the error text
}

var japaneseMessages = Messages{
	EmptyFile:      "エラー: ファイルが空です",
	ParseError:     "エラー: CSVファイルの構文エラーが発生しました",
	NotFound:       "エラー: ファイルが見つかりません",
	ColumnIndex:    "エラー: 指定された列が存在しません。ファイルの形式を確認してください",
	MissingColumns: "エラー: ファイルに必要な列が不足しています",
	Unexpected:     "エラー: 予期しないエラーが発生しました\n詳細: %s",
	NoMatch:        "該当する電圧の範囲（0～100）が存在しません。",

	HeaderFile:   "ファイル名",
	HeaderResult: "結果",

	WarningTitle: "警告",
	ErrorTitle:   "エラー",
	SuccessTitle: "成功",

	SelectPrompt:      "複数のCSVファイルを選択してください",
	SavePrompt:        "保存先を入力してください",
	NoFilesSelected:   "ファイルが選択されていません。",
	NotCSVFile:        "CSVファイルではありません: %s",
	NoPatternMatch:    "一致するCSVファイルがありません: %s",
	NoDestination:     "保存先が指定されていません。",
	UnsupportedFormat: "対応していないファイル形式です。",
	Saved:             "結果が %s に保存されました。",
	SelectFailed:      "ファイル選択中にエラーが発生しました: %s",
	SaveFailed:        "結果の保存中にエラーが発生しました: %s",
	TextSaveFailed:    "テキストファイルの保存中にエラーが発生しました: %s",
	CSVSaveFailed:     "CSVファイルの保存中にエラーが発生しました: %s",
	XLSXSaveFailed:    "Excelファイルの保存中にエラーが発生しました: %s",
}

var englishMessages = Messages{
	EmptyFile:      "error: empty file",
	ParseError:     "error: malformed CSV",
	NotFound:       "error: file not found",
	ColumnIndex:    "error: column index out of range, check the file format",
	MissingColumns: "error: missing required columns",
	Unexpected:     "error: unexpected error\ndetail: %s",
	NoMatch:        "no matching range (0-100) found.",

	HeaderFile:   "file name",
	HeaderResult: "result",

	WarningTitle: "Warning",
	ErrorTitle:   "Error",
	SuccessTitle: "Success",

	SelectPrompt:      "Select one or more CSV files",
	SavePrompt:        "Enter the destination file",
	NoFilesSelected:   "No files selected.",
	NotCSVFile:        "not a CSV file: %s",
	NoPatternMatch:    "no CSV files match: %s",
	NoDestination:     "No destination selected.",
	UnsupportedFormat: "unsupported format.",
	Saved:             "Results saved to %s.",
	SelectFailed:      "error while selecting files: %s",
	SaveFailed:        "error while saving results: %s",
	TextSaveFailed:    "error while saving the text file: %s",
	CSVSaveFailed:     "error while saving the CSV file: %s",
	XLSXSaveFailed:    "error while saving the Excel file: %s",
}

// MessagesFor returns the catalog for locale, falling back to Japanese
func MessagesFor(locale string) Messages {
	if locale == LocaleEnglish {
		return englishMessages
	}
	return japaneseMessages
}
