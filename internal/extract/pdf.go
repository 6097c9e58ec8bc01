package extract

import (
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
)

// ocrDPI renders pages at 2x the PDF base resolution (72 dpi) for better OCR accuracy.
const ocrDPI = 144

// pdfText extracts text from a PDF page by page.
func pdfText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}

// renderPDFPages rasterizes every page of the PDF to PNG bytes.
func renderPDFPages(path string) ([][]byte, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = doc.Close() }()

	pages := make([][]byte, 0, doc.NumPage())
	for n := 0; n < doc.NumPage(); n++ {
		png, err := doc.ImagePNG(n, ocrDPI)
		if err != nil {
			return nil, err
		}
		pages = append(pages, png)
	}

	return pages, nil
}
