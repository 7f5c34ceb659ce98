// Package extraction turns resume documents into plain text. Each format
// strategy is best-effort: a failure inside a supported format degrades to
// empty text rather than an error, so the caller treats "no text" as "no
// data extracted". Only a file kind with no strategy at all is an error.
package extraction

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for file kinds with no extraction
// strategy. This is the only error the package surfaces; everything else
// degrades to empty text.
var ErrUnsupportedFormat = fmt.Errorf("unsupported document format")

// Format identifies a supported document kind.
type Format string

// Supported document formats.
const (
	FormatPDF  Format = "pdf"
	FormatDocx Format = "docx"
	FormatDoc  Format = "doc"
	FormatText Format = "txt"
	FormatHTML Format = "html"
)

// Detect returns the document format for a path based on its extension.
func Detect(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDocx, nil
	case ".doc":
		return FormatDoc, nil
	case ".txt", ".text", ".md":
		return FormatText, nil
	case ".html", ".htm":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ExtractFile reads the document at path and returns its textual content.
// Unreadable files and extraction failures inside a supported format yield
// empty text with a nil error; only an unsupported extension errors.
func ExtractFile(path string) (string, error) {
	format, err := Detect(path)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil
	}
	return Extract(format, data), nil
}

// Extract runs the strategy for format over raw document bytes. It never
// fails; undecodable input yields empty text.
func Extract(format Format, data []byte) string {
	switch format {
	case FormatPDF:
		return extractPDF(data)
	case FormatDocx:
		return extractDocx(data)
	case FormatDoc:
		return extractDoc(data)
	case FormatHTML:
		return extractHTML(data)
	default:
		return decodeLenient(data)
	}
}

// decodeLenient interprets bytes as UTF-8, dropping undecodable sequences
// instead of failing.
func decodeLenient(data []byte) string {
	return strings.ToValidUTF8(string(data), "")
}
