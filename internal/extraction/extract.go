// Package extraction converts raw PDF and DOCX byte streams into plain text.
package extraction

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/jonathan/resume-screener/internal/types"
)

// Magic prefixes used to verify the declared type before parsing.
var (
	pdfMagic = []byte("%PDF-")
	zipMagic = []byte("PK\x03\x04")
)

// Extract pulls all text from a resume document in document order.
// Image-only PDFs yield an empty string, not an error. A magic-number
// mismatch with the declared format returns ErrUnsupportedFormat; a broken
// archive or stream returns ErrCorruptDocument. The input buffer is not
// retained beyond the call.
func Extract(data []byte, format types.Format) (string, error) {
	switch format {
	case types.FormatPDF:
		if !bytes.HasPrefix(data, pdfMagic) {
			return "", unsupported(string(format))
		}
		return extractPDF(data)
	case types.FormatDOCX:
		if !bytes.HasPrefix(data, zipMagic) {
			return "", unsupported(string(format))
		}
		return extractDOCX(data)
	default:
		return "", unsupported(string(format))
	}
}

// extractPDF concatenates page text in page order, one newline per page.
func extractPDF(data []byte) (text string, err error) {
	// The pdf library panics on some malformed xref tables.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = corrupt("pdf", fmt.Errorf("%v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", corrupt("pdf", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// A page without an embedded text layer is skipped, not fatal.
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(pageText)
	}
	return sb.String(), nil
}

// extractDOCX reads word/document.xml from the zip archive and collects the
// text of every w:t element, with paragraph boundaries as newlines.
func extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", corrupt("docx", err)
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", corrupt("docx", fmt.Errorf("word/document.xml not found"))
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", corrupt("docx", err)
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var sb strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", corrupt("docx", err)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local == "t" {
				var content string
				if err := decoder.DecodeElement(&content, &el); err == nil {
					sb.WriteString(content)
				}
			} else if el.Name.Local == "tab" {
				sb.WriteString("\t")
			}
		case xml.EndElement:
			if el.Name.Local == "p" {
				sb.WriteString("\n")
			}
		}
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
