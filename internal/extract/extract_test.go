package extract

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestExtractText_UnsupportedFormat(t *testing.T) {
	e := New(nil)

	_, err := e.ExtractText("resume.xlsx")

	var unsupported *UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, ".xlsx", unsupported.Ext)
}

func TestExtractText_ExtensionIsCaseInsensitive(t *testing.T) {
	e := New(nil)
	path := writeTempFile(t, "resume.TXT", "plain text resume")

	text, err := e.ExtractText(path)

	require.NoError(t, err)
	assert.Equal(t, "plain text resume", text)
}

func TestExtractText_TxtRawRead(t *testing.T) {
	e := New(nil)
	path := writeTempFile(t, "resume.txt", "John Doe\nSoftware Engineer")

	text, err := e.ExtractText(path)

	require.NoError(t, err)
	assert.Equal(t, "John Doe\nSoftware Engineer", text)
}

func TestExtractText_RtfRawRead(t *testing.T) {
	e := New(nil)
	path := writeTempFile(t, "resume.rtf", `{\rtf1 some content}`)

	text, err := e.ExtractText(path)

	require.NoError(t, err)
	assert.Contains(t, text, "some content")
}

func TestExtractText_TxtMissingFile(t *testing.T) {
	e := New(nil)

	_, err := e.ExtractText(filepath.Join(t.TempDir(), "missing.txt"))

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "txt", extractionErr.Format)
}

func TestExtractText_Docx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.docx")
	f, err := os.Create(path)
	require.NoError(t, err)

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<w:document><w:body>` +
		`<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Backend Engineer</w:t></w:r></w:p>` +
		`</w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	e := New(nil)
	text, err := e.ExtractText(path)

	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Backend Engineer")
}

func TestExtractText_DocxWithoutDocumentXML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	_, err = zw.Create("word/styles.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	e := New(nil)
	_, err = e.ExtractText(path)

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "docx", extractionErr.Format)
}

func TestExtractText_DocBestEffort(t *testing.T) {
	// A fake legacy DOC: printable runs separated by binary noise.
	content := "\x00\x01\x02Senior Developer at Acme Corp\x00\x05\x06Python, Go, SQL\x00ab\x00"
	path := writeTempFile(t, "resume.doc", content)

	e := New(nil)
	text, err := e.ExtractText(path)

	require.NoError(t, err)
	assert.Contains(t, text, "Senior Developer at Acme Corp")
	assert.Contains(t, text, "Python, Go, SQL")
	// Runs shorter than four characters are treated as noise.
	assert.NotContains(t, text, "ab")
}

type fakeOCR struct {
	text string
	err  error
}

func (f *fakeOCR) Recognize([]byte) (string, error) {
	return f.text, f.err
}

func TestWithOCR_OverridesEngine(t *testing.T) {
	e := New(nil, WithOCR(&fakeOCR{err: errors.New("boom")}))

	ocr, ok := e.ocr.(*fakeOCR)
	require.True(t, ok)
	assert.Error(t, ocr.err)
}
