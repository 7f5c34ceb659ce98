package extraction

import (
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
)

// docMinUsableChars is the minimum amount of printable text a legacy .doc
// decode must yield to be considered usable rather than binary noise.
const docMinUsableChars = 100

// extractDoc handles the legacy binary Word format on a best-effort basis.
// Real .doc parsing needs an OLE compound-file reader; in practice the
// document's text is embedded as runs of Windows-1252 characters, so a
// lenient decode plus a printable filter recovers a degraded but usable
// transcript. Files that are secretly DOCX (ZIP signature) are handed to
// the DOCX strategy.
func extractDoc(data []byte) string {
	if len(data) >= 4 && string(data[:2]) == "PK" {
		if text := extractDocx(data); text != "" {
			return text
		}
	}

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(decoded))
	for _, r := range string(decoded) {
		if r == '\n' || r == '\t' || unicode.IsPrint(r) {
			sb.WriteRune(r)
		}
	}

	cleaned := sb.String()
	if countLetters(cleaned) < docMinUsableChars {
		return ""
	}
	return cleaned
}

func countLetters(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			n++
		}
	}
	return n
}
