package extraction

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

// buildDOCX assembles an in-memory docx archive with the given document.xml body.
func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtract_DOCXParagraphs(t *testing.T) {
	doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t>Software Engineer with </w:t></w:r><w:r><w:t>Go experience</w:t></w:r></w:p>
    <w:p><w:r><w:t>jane.doe@example.com</w:t></w:r></w:p>
  </w:body>
</w:document>`
	data := buildDOCX(t, doc)

	text, err := Extract(data, types.FormatDOCX)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSoftware Engineer with Go experience\njane.doe@example.com", text)
}

func TestExtract_DOCXMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = Extract(buf.Bytes(), types.FormatDOCX)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorruptDocument)
}

func TestExtract_DOCXTruncatedArchive(t *testing.T) {
	data := buildDOCX(t, "<w:document/>")
	truncated := data[:len(data)/2]

	_, err := Extract(truncated, types.FormatDOCX)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorruptDocument)
}

func TestExtract_MagicMismatch(t *testing.T) {
	// Plain text declared as pdf
	_, err := Extract([]byte("just some text"), types.FormatPDF)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	// PDF bytes declared as docx
	_, err = Extract([]byte("%PDF-1.7 ..."), types.FormatDOCX)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	// Unknown declared format
	_, err = Extract([]byte("%PDF-1.7"), types.Format("rtf"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtract_CorruptPDFBody(t *testing.T) {
	// Valid magic, garbage body: the parser must fail cleanly, never panic.
	data := []byte("%PDF-1.4\nthis is not a real pdf body with no xref table")
	_, err := Extract(data, types.FormatPDF)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorruptDocument)
}

func TestExtract_DoesNotMutateInput(t *testing.T) {
	data := buildDOCX(t, `<w:document xmlns:w="ns"><w:body><w:p><w:r><w:t>x</w:t></w:r></w:p></w:body></w:document>`)
	original := append([]byte(nil), data...)

	_, err := Extract(data, types.FormatDOCX)
	require.NoError(t, err)
	assert.Equal(t, original, data)
}
