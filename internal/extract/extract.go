// Package extract converts résumé files into plain text. PDF, DOCX, DOC, TXT
// and RTF are supported; scanned PDFs fall back to OCR.
package extract

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// minDirectTextLen is the threshold below which extracted PDF text is treated
// as a scanned/image-only document and the OCR fallback kicks in.
const minDirectTextLen = 100

// Extractor converts résumé files to plain text.
type Extractor struct {
	ocr    OCR
	logger *zap.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithOCR overrides the default Tesseract OCR engine.
func WithOCR(ocr OCR) Option {
	return func(e *Extractor) { e.ocr = ocr }
}

// New creates an Extractor. The default OCR engine is Tesseract.
func New(logger *zap.Logger, opts ...Option) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Extractor{
		ocr:    &TesseractOCR{},
		logger: logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractText extracts plain text from the file at path, dispatching on its
// extension. The source file is never mutated.
func (e *Extractor) ExtractText(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".pdf":
		return e.extractPDF(path)
	case ".docx":
		text, err := extractDOCX(path)
		if err != nil {
			e.logger.Error("docx extraction failed", zap.String("path", path), zap.Error(err))
			return "", &ExtractionError{Format: "docx", Message: "paragraph extraction failed", Cause: err}
		}
		return text, nil
	case ".doc":
		text, err := extractDOC(path)
		if err != nil {
			e.logger.Error("doc extraction failed", zap.String("path", path), zap.Error(err))
			return "", &ExtractionError{Format: "doc", Message: "binary text extraction failed", Cause: err}
		}
		return text, nil
	case ".txt", ".rtf":
		data, err := os.ReadFile(path)
		if err != nil {
			e.logger.Error("raw read failed", zap.String("path", path), zap.Error(err))
			return "", &ExtractionError{Format: strings.TrimPrefix(ext, "."), Message: "raw read failed", Cause: err}
		}
		return string(data), nil
	default:
		return "", &UnsupportedFormatError{Ext: ext}
	}
}

// extractPDF extracts text page by page, falling back to OCR when direct
// extraction yields too little text or fails outright.
func (e *Extractor) extractPDF(path string) (string, error) {
	text, err := pdfText(path)
	if err != nil {
		e.logger.Warn("pdf text extraction failed, trying ocr", zap.String("path", path), zap.Error(err))
		return e.extractWithOCR(path)
	}

	if len(strings.TrimSpace(text)) < minDirectTextLen {
		e.logger.Info("pdf appears to be scanned, using ocr", zap.String("path", path))
		return e.extractWithOCR(path)
	}

	return text, nil
}

// extractWithOCR renders each PDF page to a raster image and runs OCR on it,
// joining per-page text with newlines.
func (e *Extractor) extractWithOCR(path string) (string, error) {
	pages, err := renderPDFPages(path)
	if err != nil {
		e.logger.Error("pdf page rendering failed", zap.String("path", path), zap.Error(err))
		return "", &ExtractionError{Format: "pdf", Message: "could not render pages for ocr", Cause: err}
	}

	var sb strings.Builder
	for i, png := range pages {
		pageText, err := e.ocr.Recognize(png)
		if err != nil {
			e.logger.Error("ocr failed", zap.String("path", path), zap.Int("page", i), zap.Error(err))
			return "", &ExtractionError{Format: "pdf", Message: "could not extract text from scanned pdf", Cause: err}
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
