package parsers

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"baliance.com/gooxml/document"
)

func TestExtractText_UnsupportedFormat(t *testing.T) {
	extractor := NewDocumentExtractor()

	_, err := extractor.ExtractText([]byte("plain text"), "resume.txt", "text/plain")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}

	_, err = extractor.ExtractText([]byte("{}"), "resume.json", "application/json")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestExtractText_ContentTypeBeatsExtension(t *testing.T) {
	extractor := NewDocumentExtractor()

	// The declared media type routes to the PDF reader even without an
	// extension, so a garbage payload fails as a PDF read, not as an
	// unsupported format.
	_, err := extractor.ExtractText([]byte("not a pdf"), "upload", "application/pdf")
	if err == nil {
		t.Fatal("Expected a read error for a corrupt PDF")
	}
	if errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected a read error, got ErrUnsupportedFormat")
	}
}

func TestExtractText_DocxRoundTrip(t *testing.T) {
	doc := document.New()
	doc.AddParagraph().AddRun().AddText("Jane Smith")
	doc.AddParagraph().AddRun().AddText("Austin, TX")

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		t.Fatalf("Failed to build test document: %v", err)
	}

	extractor := NewDocumentExtractor()
	text, err := extractor.ExtractText(buf.Bytes(), "resume.docx", "")
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}
	if !strings.Contains(text, "Jane Smith") || !strings.Contains(text, "Austin, TX") {
		t.Errorf("Expected paragraph text preserved, got %q", text)
	}
}

func TestExtractText_EmptyDocumentRejected(t *testing.T) {
	doc := document.New()
	doc.AddParagraph()

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		t.Fatalf("Failed to build test document: %v", err)
	}

	extractor := NewDocumentExtractor()
	_, err := extractor.ExtractText(buf.Bytes(), "empty.docx", MediaTypeDocx)
	if err == nil {
		t.Error("Expected an error for a document with no extractable text")
	}
}

func TestExtractText_CorruptDocx(t *testing.T) {
	extractor := NewDocumentExtractor()

	_, err := extractor.ExtractText([]byte("not a zip archive"), "resume.docx", MediaTypeDocx)
	if err == nil {
		t.Error("Expected a read error for a corrupt DOCX payload")
	}
}
