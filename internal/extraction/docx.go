package extraction

import (
	"archive/zip"
	"bytes"
	"io"
	"regexp"
	"strings"
)

var xmlTagRe = regexp.MustCompile(`<[^>]+>`)

// extractDocx reads word/document.xml from the DOCX ZIP archive and strips
// it down to paragraph-concatenated text.
func extractDocx(data []byte) string {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return ""
		}
		docXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return ""
		}
		break
	}
	if len(docXML) == 0 {
		return ""
	}

	// Paragraph ends become newlines before the tags are stripped, so the
	// line structure the section segmenter relies on survives.
	xml := string(docXML)
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	xml = xmlTagRe.ReplaceAllString(xml, "")

	return decodeLenient([]byte(unescapeXML(xml)))
}

// unescapeXML resolves the five predefined XML entities.
func unescapeXML(s string) string {
	r := strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
		"&amp;", "&",
	)
	return r.Replace(s)
}
