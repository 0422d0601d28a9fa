package dialog

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"voltscan/internal/config"
	apperrors "voltscan/internal/errors"
	"voltscan/internal/files"
	"voltscan/internal/infrastructure"
	"voltscan/internal/validation"
)

// Terminal implements Dialogs over a line-oriented reader and writer
type Terminal struct {
	in         *bufio.Reader
	out        io.Writer
	messages   config.Messages
	defaultExt string
	discovery  *files.Discovery
	validator  *validation.FileValidator
	logger     *slog.Logger
}

// TerminalOption configures a Terminal
type TerminalOption func(*Terminal)

// WithIO replaces stdin and stdout
func WithIO(in io.Reader, out io.Writer) TerminalOption {
	return func(t *Terminal) {
		t.in = bufio.NewReader(in)
		t.out = out
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) TerminalOption {
	return func(t *Terminal) { t.logger = logger }
}

// WithBaseDir resolves relative entries against dir instead of the
// working directory
func WithBaseDir(dir string) TerminalOption {
	return func(t *Terminal) { t.discovery = files.NewDiscovery(dir) }
}

// NewTerminal creates terminal dialogs reading stdin and writing stdout
func NewTerminal(cfg *config.Config, opts ...TerminalOption) *Terminal {
	t := &Terminal{
		in:         bufio.NewReader(os.Stdin),
		out:        os.Stdout,
		messages:   cfg.Messages(),
		defaultExt: cfg.Export.DefaultExtension,
		discovery:  files.NewDiscovery(""),
		logger:     infrastructure.GetLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = infrastructure.WithComponent(t.logger, "dialog")
	t.validator = validation.NewFileValidator(t.logger)
	return t
}

// SelectFiles reads one line of entries. Entries are separated by
// whitespace or ';' and may be quoted. A directory or glob pattern expands
// to the CSV files it holds; other non-CSV entries are rejected with a
// warning.
func (t *Terminal) SelectFiles(ctx context.Context) ([]string, error) {
	line, err := t.prompt(ctx, t.messages.SelectPrompt)
	if err != nil {
		return nil, err
	}

	return t.Expand(ctx, SplitEntries(line))
}

// Expand resolves entries into absolute CSV paths in entry order. Blank
// entries are ignored; rejected ones are reported with a warning and
// skipped. The result is never nil.
func (t *Terminal) Expand(ctx context.Context, entries []string) ([]string, error) {
	selected := []string{}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, apperrors.NewCanceledError("file selection")
		}
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		paths, err := t.expand(entry)
		if err != nil {
			t.Warn(t.messages.WarningTitle, err.Error())
			continue
		}
		selected = append(selected, paths...)
	}

	t.logger.InfoContext(ctx, "Files selected", slog.Int("count", len(selected)))
	return selected, nil
}

// expand turns one entry into absolute CSV paths
func (t *Terminal) expand(entry string) ([]string, error) {
	var found []files.FileInfo
	var err error

	switch {
	case files.HasGlobMeta(entry) && !t.exists(entry):
		found, err = t.discovery.FindFilesByPattern(entry)
		if err != nil {
			return nil, err
		}
		csvs := found[:0]
		for _, f := range found {
			if files.IsCSV(f.Name) {
				csvs = append(csvs, f)
			}
		}
		if len(csvs) == 0 {
			return nil, fmt.Errorf(t.messages.NoPatternMatch, entry)
		}
		found = csvs
	case os.IsPathSeparator(entry[len(entry)-1]):
		dir := t.discovery.Resolve(entry)
		if err := t.validator.ValidateInputDirectory(dir); err != nil {
			return nil, err
		}
		found, err = t.discovery.FindCSVFiles(dir)
		if err != nil {
			return nil, err
		}
	case t.validator.IsDirectory(t.discovery.Resolve(entry)):
		found, err = t.discovery.FindCSVFiles(entry)
		if err != nil {
			return nil, err
		}
	default:
		if !t.validator.HasCSVExtension(entry) {
			return nil, fmt.Errorf(t.messages.NotCSVFile, entry)
		}
		found = []files.FileInfo{{Path: t.discovery.Resolve(entry), Name: filepath.Base(entry)}}
	}

	paths := make([]string, 0, len(found))
	for _, f := range found {
		abs, err := filepath.Abs(f.Path)
		if err != nil {
			return nil, err
		}
		paths = append(paths, abs)
	}
	return paths, nil
}

// exists reports whether entry names an existing file or directory
func (t *Terminal) exists(entry string) bool {
	_, err := os.Stat(t.discovery.Resolve(entry))
	return err == nil
}

// SaveAs reads the destination path. An entry without an extension gets
// the configured default one.
func (t *Terminal) SaveAs(ctx context.Context) (string, error) {
	line, err := t.prompt(ctx, t.messages.SavePrompt)
	if err != nil {
		return "", err
	}

	dest := unquote(line)
	if dest == "" {
		return "", nil
	}
	if filepath.Ext(dest) == "" {
		dest += t.defaultExt
	}

	abs, err := filepath.Abs(t.discovery.Resolve(dest))
	if err != nil {
		return "", err
	}
	t.logger.InfoContext(ctx, "Destination chosen", slog.String("destination", abs))
	return abs, nil
}

// prompt writes label and reads one line. EOF counts as an empty answer.
func (t *Terminal) prompt(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", apperrors.NewCanceledError("prompt")
	}
	fmt.Fprintf(t.out, "%s: ", label)

	line, err := t.in.ReadString('\n')
	if err != nil && !stderrors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Info prints an informational notice
func (t *Terminal) Info(title, message string) {
	t.show(Notice{Level: LevelInfo, Title: title, Message: message})
}

// Warn prints a warning notice
func (t *Terminal) Warn(title, message string) {
	t.show(Notice{Level: LevelWarning, Title: title, Message: message})
}

// Error prints an error notice
func (t *Terminal) Error(title, message string) {
	t.show(Notice{Level: LevelError, Title: title, Message: message})
}

func (t *Terminal) show(n Notice) {
	fmt.Fprintf(t.out, "[%s] %s\n", n.Title, n.Message)
	t.logger.Debug("Notice shown",
		slog.String("level", string(n.Level)),
		slog.String("title", n.Title))
}

// unquote strips one pair of matching surrounding quotes
func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

// SplitEntries splits a line on whitespace and ';'. Double or single
// quotes group characters, including separators, into one entry; empty
// entries are dropped.
func SplitEntries(line string) []string {
	var entries []string
	var current strings.Builder
	var quote rune
	inEntry := false

	flush := func() {
		if inEntry {
			entries = append(entries, current.String())
		}
		current.Reset()
		inEntry = false
	}

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			current.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			inEntry = true
		case r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		default:
			current.WriteRune(r)
			inEntry = true
		}
	}
	flush()

	nonEmpty := entries[:0]
	for _, e := range entries {
		if e != "" {
			nonEmpty = append(nonEmpty, e)
		}
	}
	return nonEmpty
}
