// Package extract turns uploaded resume documents into plain text and locates
// the candidate's contact email.
package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
	pdfextractor "github.com/unidoc/unipdf/v3/extractor"
	pdfmodel "github.com/unidoc/unipdf/v3/model"
)

// UnsupportedFormatError indicates the uploaded file is not a recognized
// resume format. This is a terminal, client-caused condition.
type UnsupportedFormatError struct {
	Filename string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q: only PDF and DOCX are supported", e.Filename)
}

// ExtractionError indicates a recognized format failed to parse (corrupt file,
// parse error).
type ExtractionError struct {
	Format string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Format, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Service implements document extraction over the supported formats
type Service struct{}

// New creates an extraction Service
func New() *Service {
	return &Service{}
}

// Extract returns the plain text content of a PDF or DOCX document
func (s *Service) Extract(filename string, data []byte) (string, error) {
	return Extract(filename, data)
}

// SupportedFormat reports whether the filename carries a recognized extension.
func SupportedFormat(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".docx":
		return true
	}
	return false
}

// Extract returns the plain text content of a PDF or DOCX document with
// leading and trailing whitespace trimmed. Unrecognized extensions fail with
// *UnsupportedFormatError; parse failures with *ExtractionError.
func Extract(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err := extractPDF(data)
		if err != nil {
			return "", &ExtractionError{Format: "PDF", Err: err}
		}
		return strings.TrimSpace(text), nil
	case ".docx":
		text, err := extractDOCX(data)
		if err != nil {
			return "", &ExtractionError{Format: "DOCX", Err: err}
		}
		return strings.TrimSpace(text), nil
	default:
		return "", &UnsupportedFormatError{Filename: filename}
	}
}

// extractPDF extracts text from every page using unipdf
func extractPDF(data []byte) (string, error) {
	reader, err := pdfmodel.NewPdfReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to read PDF: %w", err)
	}

	numPages, err := reader.GetNumPages()
	if err != nil {
		return "", fmt.Errorf("failed to get page count: %w", err)
	}
	if numPages == 0 {
		return "", fmt.Errorf("PDF has no pages")
	}

	var sb strings.Builder
	for i := 1; i <= numPages; i++ {
		page, err := reader.GetPage(i)
		if err != nil {
			return "", fmt.Errorf("failed to get page %d: %w", i, err)
		}
		ex, err := pdfextractor.New(page)
		if err != nil {
			return "", fmt.Errorf("failed to create extractor for page %d: %w", i, err)
		}
		pageText, err := ex.ExtractText()
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

var (
	docxParagraphRe = regexp.MustCompile(`</w:p>`)
	docxTagRe       = regexp.MustCompile(`<[^>]+>`)
)

// extractDOCX extracts paragraph text from the document body
func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read DOCX: %w", err)
	}
	defer doc.Close()

	return docxContentToText(doc.Editable().GetContent()), nil
}

// docxContentToText flattens raw document XML to plain text. The docx library
// exposes the document body as XML, so paragraph boundaries become newlines
// and the remaining markup is stripped.
func docxContentToText(content string) string {
	content = docxParagraphRe.ReplaceAllString(content, "\n")
	return docxTagRe.ReplaceAllString(content, "")
}
