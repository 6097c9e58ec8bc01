package extract

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"regexp"
	"strings"
)

var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// extractDOCX pulls paragraph text out of the DOCX zip container.
// Paragraph boundaries become newlines; all other markup is stripped.
func extractDOCX(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = zr.Close() }()

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", err
			}
			docXML, err = io.ReadAll(rc)
			_ = rc.Close()
			if err != nil {
				return "", err
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", errors.New("no document.xml found in docx")
	}

	xml := string(docXML)
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	text := xmlTagPattern.ReplaceAllString(xml, "")

	return strings.TrimSpace(text), nil
}

// extractDOC is a best-effort text recovery for the legacy binary DOC format:
// it keeps runs of printable characters long enough to be prose. No Go library
// in use here parses the OLE compound format properly.
func extractDOC(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	const minRunLen = 4

	var sb strings.Builder
	var run strings.Builder
	flush := func() {
		if run.Len() >= minRunLen {
			sb.WriteString(run.String())
			sb.WriteString("\n")
		}
		run.Reset()
	}

	for _, b := range data {
		switch {
		case b == '\r' || b == '\n' || b == '\t':
			flush()
		case b >= 0x20 && b < 0x7f:
			run.WriteByte(b)
		default:
			flush()
		}
	}
	flush()

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", errors.New("no readable text found in doc file")
	}
	return text, nil
}
