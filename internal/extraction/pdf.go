package extraction

import (
	"bytes"
	"io"

	"github.com/ledongthuc/pdf"
)

// extractPDF returns the page-concatenated plain text of a PDF, or empty
// text when the document cannot be read (encrypted, malformed, scanned
// images with no text layer).
func extractPDF(data []byte) (text string) {
	// The pdf package panics on some malformed cross-reference tables;
	// contain that to an empty result like any other extraction failure.
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return ""
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return ""
	}
	return decodeLenient(buf.Bytes())
}
