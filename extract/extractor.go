package extract

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Format is a supported document format.
type Format string

const (
	FormatPDF  Format = ".pdf"
	FormatDOCX Format = ".docx"
	FormatText Format = ".txt"
)

// FormatOf returns the document format implied by filename's extension.
func FormatOf(filename string) (Format, bool) {
	switch f := Format(strings.ToLower(filepath.Ext(filename))); f {
	case FormatPDF, FormatDOCX, FormatText:
		return f, true
	default:
		return "", false
	}
}

// Extractor extracts text from documents.
type Extractor struct {
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
	}
}

// NewExtractor creates an extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With("component", "extract")
	return e
}

// ExtractFile reads the file at path and returns its text.
func (e *Extractor) ExtractFile(path string) string {
	if _, ok := FormatOf(path); !ok {
		e.logger.Warn("unsupported document format", "file", path)
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		e.logger.Warn("cannot read document", "file", path, "err", err)
		return ""
	}
	return e.Extract(filepath.Base(path), data)
}

// Extract returns the text of a document whose format is given by filename.
func (e *Extractor) Extract(filename string, data []byte) string {
	format, ok := FormatOf(filename)
	if !ok {
		e.logger.Warn("unsupported document format", "file", filename)
		return ""
	}

	var (
		text string
		err  error
	)
	switch format {
	case FormatPDF:
		text, err = pdfText(data)
	case FormatDOCX:
		text, err = docxText(data)
	case FormatText:
		text = plainText(data)
	}
	if err != nil {
		e.logger.Warn("text extraction failed", "file", filename, "format", string(format), "err", err)
		return ""
	}
	return text
}

// plainText drops invalid UTF-8 so later stages see clean text.
func plainText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	return strings.ToValidUTF8(string(data), "")
}
