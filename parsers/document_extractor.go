package parsers

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"baliance.com/gooxml/document"
	"github.com/ledongthuc/pdf"
)

// Accepted document media types.
const (
	MediaTypePDF  = "application/pdf"
	MediaTypeDoc  = "application/msword"
	MediaTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ErrUnsupportedFormat is returned before any extraction runs when the
// declared media type is not PDF, DOC, or DOCX.
var ErrUnsupportedFormat = errors.New("unsupported document format: only PDF, DOC, and DOCX are accepted")

// DocumentExtractor converts an uploaded document blob into the single
// plain-text string the extraction pipeline consumes.
type DocumentExtractor struct{}

// NewDocumentExtractor creates a document text extractor.
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// ExtractText gates on the declared media type (falling back to the file
// extension) and extracts plain text. Corrupt or empty documents yield a
// document-read error; the pipeline never sees partial text.
func (e *DocumentExtractor) ExtractText(data []byte, filename, contentType string) (string, error) {
	var text string
	var err error

	switch resolveFormat(filename, contentType) {
	case MediaTypePDF:
		text, err = e.extractPDF(data)
	case MediaTypeDocx:
		text, err = e.extractDocx(data)
	case MediaTypeDoc:
		text, err = e.extractDoc(data)
	default:
		return "", ErrUnsupportedFormat
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("document contains no extractable text: %s", filename)
	}
	return text, nil
}

func resolveFormat(filename, contentType string) string {
	for _, mediaType := range []string{MediaTypePDF, MediaTypeDocx, MediaTypeDoc} {
		if strings.Contains(contentType, mediaType) {
			return mediaType
		}
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return MediaTypePDF
	case ".docx":
		return MediaTypeDocx
	case ".doc":
		return MediaTypeDoc
	}
	return ""
}

// extractPDF concatenates per-page plain text joined by newlines.
func (e *DocumentExtractor) extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read PDF document: %v", err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from PDF page %d: %v", i, err)
		}
		pages = append(pages, content)
	}
	return strings.Join(pages, "\n"), nil
}

// extractDocx reads raw run text, ignoring formatting. Paragraphs become
// lines.
func (e *DocumentExtractor) extractDocx(data []byte) (string, error) {
	doc, err := document.Read(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read DOCX document: %v", err)
	}

	var lines []string
	for _, paragraph := range doc.Paragraphs() {
		var line strings.Builder
		for _, run := range paragraph.Runs() {
			line.WriteString(run.Text())
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n"), nil
}

// extractDoc shells out to antiword or catdoc for the legacy format; there
// is no in-process reader for it.
func (e *DocumentExtractor) extractDoc(data []byte) (string, error) {
	tempFile, err := os.CreateTemp("", "resume-*.doc")
	if err != nil {
		return "", fmt.Errorf("failed to stage DOC document: %v", err)
	}
	defer os.Remove(tempFile.Name())

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return "", fmt.Errorf("failed to stage DOC document: %v", err)
	}
	tempFile.Close()

	for _, tool := range []string{"antiword", "catdoc"} {
		if _, err := exec.LookPath(tool); err != nil {
			continue
		}
		output, err := exec.Command(tool, tempFile.Name()).Output()
		if err == nil {
			return string(output), nil
		}
	}
	return "", fmt.Errorf("failed to extract text from DOC document (tried antiword, catdoc)")
}
