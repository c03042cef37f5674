// Package extract converts uploaded CV files into plain text.
// Libraries used: github.com/ledongthuc/pdf (PDF); DOCX is unpacked with
// archive/zip and encoding/xml directly.
package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeTXT  = "text/plain"
)

// ErrUnsupportedType reports a payload that is not a PDF, DOCX or plain
// text file.
var ErrUnsupportedType = errors.New("unsupported file type")

// Text extracts plain text from an in-memory CV payload. The declared mime
// type is advisory: browsers routinely send application/octet-stream or
// application/zip for DOCX uploads, so the real type is resolved from the
// payload and file extension first.
func Text(ctx context.Context, data []byte, mimeType string, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	switch resolveType(mimeType, fileName, data) {
	case mimePDF:
		return extractPDF(data)
	case mimeDOCX:
		return extractDOCX(data)
	case mimeTXT:
		return sanitizeText(string(data)), nil
	default:
		return "", fmt.Errorf("%w: %s (%s)", ErrUnsupportedType, mimeType, fileName)
	}
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return sanitizeText(buf.String()), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	readerAt := bytes.NewReader(data)
	zr, err := zip.NewReader(readerAt, int64(len(data)))
	if err != nil {
		return "", err
	}

	var docFile *zip.File
	for _, f := range zr.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		if name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", errors.New("document.xml file not found")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}

	return sanitizeText(stripDocxXML(string(raw))), nil
}

// stripDocxXML walks the document XML and keeps character data, turning
// paragraph and line-break ends into newlines so downstream line-based
// heuristics still see document structure.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if last := buf.Len(); last > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

// sanitizeText drops NUL and other non-printing control characters that PDF
// extraction sometimes emits. Tabs and newlines are kept.
func sanitizeText(text string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' || r == '\r' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, text)
}

// resolveType determines the effective content type from the declared mime
// type, the file extension and the payload itself.
func resolveType(mimeType string, fileName string, data []byte) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))

	switch clean {
	case mimePDF, mimeDOCX, mimeTXT:
		return clean
	case "application/zip":
		if mapped := mapOOXMLFromZip(data); mapped != "" {
			return mapped
		}
		if strings.EqualFold(filepath.Ext(fileName), ".docx") {
			return mimeDOCX
		}
		return clean
	case "", "application/octet-stream":
		return sniffType(fileName, data)
	default:
		return clean
	}
}

// sniffType inspects payload magic bytes first, then falls back to the
// file extension.
func sniffType(fileName string, data []byte) string {
	if bytes.HasPrefix(data, []byte("%PDF-")) {
		return mimePDF
	}
	if bytes.HasPrefix(data, []byte("PK")) {
		if mapped := mapOOXMLFromZip(data); mapped != "" {
			return mapped
		}
	}
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return mimePDF
	case ".docx":
		return mimeDOCX
	case ".txt", ".text", ".md":
		return mimeTXT
	default:
		return ""
	}
}

func mapOOXMLFromZip(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	readerAt := bytes.NewReader(data)
	zr, err := zip.NewReader(readerAt, int64(len(data)))
	if err != nil {
		return ""
	}
	for _, f := range zr.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		if name == "word/document.xml" {
			return mimeDOCX
		}
	}
	return ""
}
