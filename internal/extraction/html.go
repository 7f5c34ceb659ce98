package extraction

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractHTML pulls visible text out of an HTML resume, one block element
// per line so the downstream line heuristics still apply.
func extractHTML(data []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return ""
	}

	doc.Find("script, style, noscript").Remove()

	var lines []string
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, td, div").Each(func(_ int, sel *goquery.Selection) {
		// Leaf-ish blocks only; containers would duplicate their children.
		if sel.Children().Filter("p, div, li, ul, ol, table").Length() > 0 {
			return
		}
		if text := strings.TrimSpace(sel.Text()); text != "" {
			lines = append(lines, text)
		}
	})

	if len(lines) == 0 {
		return strings.TrimSpace(doc.Text())
	}
	return strings.Join(lines, "\n")
}
