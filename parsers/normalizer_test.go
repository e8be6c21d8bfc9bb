package parsers

import (
	"strings"
	"testing"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a\r\nb\rc", "a\nb\nc"},
		{"a\n\n\n\nb", "a\n\nb"},
		{"  padded  \n\n", "padded"},
		{"a\n \t\n   \nb", "a\n\nb"},
		{"", ""},
	}

	for _, test := range tests {
		if got := normalizeText(test.input); got != test.want {
			t.Errorf("normalizeText(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestSegmentSections_Partition(t *testing.T) {
	text := normalizeText("Jane Smith\nAustin, TX\n\nEducation:\nUniversity of Texas\n2015 - 2019\n\nSKILLS\nPython\nSQL\n\nLanguages\nSpanish")
	sections := segmentSections(text)

	// Every non-blank, non-header input line lands in exactly one section,
	// preserving order.
	var collected []string
	for _, name := range sections.Names() {
		collected = append(collected, sections.Lines(name)...)
	}
	want := []string{
		"Jane Smith", "Austin, TX",
		"University of Texas", "2015 - 2019",
		"Python", "SQL",
		"Spanish",
	}
	if strings.Join(collected, "|") != strings.Join(want, "|") {
		t.Errorf("Partition mismatch:\n got %v\nwant %v", collected, want)
	}

	if !sections.Has("header") {
		t.Error("Expected a synthetic header section for leading content")
	}
	if !sections.Has("education") || !sections.Has("skills") || !sections.Has("languages") {
		t.Errorf("Expected education/skills/languages sections, got %v", sections.Names())
	}
}

func TestSegmentSections_HeaderMatching(t *testing.T) {
	// Case-insensitive, optional trailing colon.
	sections := segmentSections("EDUCATION:\nMIT\nWork Experience\nAcme")

	if got := sections.Text("education"); got != "MIT" {
		t.Errorf("Expected education section 'MIT', got '%s'", got)
	}
	if got := sections.Text("work experience"); got != "Acme" {
		t.Errorf("Expected work experience section 'Acme', got '%s'", got)
	}

	// A header-shaped line is always a header, never body content.
	sections = segmentSections("Skills\nEducation\nStanford")
	if len(sections.Lines("skills")) != 0 {
		t.Errorf("Expected empty skills section, got %v", sections.Lines("skills"))
	}
	if got := sections.Text("education"); got != "Stanford" {
		t.Errorf("Expected education section 'Stanford', got '%s'", got)
	}
}

func TestSegmentSections_NoHeaders(t *testing.T) {
	sections := segmentSections("just one line\nand another")

	if len(sections.Names()) != 1 || sections.Names()[0] != "header" {
		t.Errorf("Expected only the synthetic header section, got %v", sections.Names())
	}
	if len(sections.Lines("header")) != 2 {
		t.Errorf("Expected 2 header lines, got %v", sections.Lines("header"))
	}
}
