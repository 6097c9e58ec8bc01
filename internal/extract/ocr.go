package extract

import "github.com/otiai10/gosseract/v2"

// OCR recognizes text in a rendered page image. Implementations must be safe
// for repeated calls from a single goroutine.
type OCR interface {
	Recognize(png []byte) (string, error)
}

// TesseractOCR runs the Tesseract engine via gosseract.
type TesseractOCR struct{}

// Recognize runs OCR on a PNG-encoded page image.
func (o *TesseractOCR) Recognize(png []byte) (string, error) {
	client := gosseract.NewClient()
	defer func() { _ = client.Close() }()

	if err := client.SetImageFromBytes(png); err != nil {
		return "", err
	}
	return client.Text()
}
