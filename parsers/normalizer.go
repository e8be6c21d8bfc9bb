package parsers

import (
	"regexp"
	"strings"
)

var blankRunRegex = regexp.MustCompile(`\n[ \t]*\n(?:[ \t]*\n)+`)

// normalizeText collapses line-ending variants and redundant blank lines so
// the rest of the pipeline sees a canonical single-newline-separated form.
// Only whitespace shape is altered.
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = blankRunRegex.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// SectionMap is an ordered mapping from a lower-cased section label to the
// non-blank lines under that header. Content before the first recognized
// header lands in the synthetic "header" section. Built once per document
// and consumed read-only by every extractor.
type SectionMap struct {
	names []string
	lines map[string][]string
}

func newSectionMap() *SectionMap {
	return &SectionMap{lines: make(map[string][]string)}
}

// Names returns section labels in document order.
func (m *SectionMap) Names() []string {
	return m.names
}

// Has reports whether a section with the given label exists.
func (m *SectionMap) Has(name string) bool {
	_, ok := m.lines[name]
	return ok
}

// Lines returns the lines of the named section, nil when absent.
func (m *SectionMap) Lines(name string) []string {
	return m.lines[name]
}

// Text joins the named section's lines with newlines.
func (m *SectionMap) Text(name string) string {
	return strings.Join(m.lines[name], "\n")
}

// FirstOf returns the text of the first section present among the given
// labels, in argument order.
func (m *SectionMap) FirstOf(names ...string) (string, bool) {
	for _, name := range names {
		if m.Has(name) {
			return m.Text(name), true
		}
	}
	return "", false
}

func (m *SectionMap) open(name string) {
	if _, ok := m.lines[name]; !ok {
		m.names = append(m.names, name)
		m.lines[name] = []string{}
	}
}

func (m *SectionMap) append(name, line string) {
	m.open(name)
	m.lines[name] = append(m.lines[name], line)
}

// segmentSections scans normalized text line by line and partitions every
// non-blank line into exactly one section. A line that matches the header
// vocabulary always starts a new section, even if it could plausibly be
// body content.
func segmentSections(text string) *SectionMap {
	sections := newSectionMap()
	current := "header"

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if label, ok := matchSectionHeader(trimmed); ok {
			current = label
			sections.open(label)
			continue
		}
		sections.append(current, trimmed)
	}
	return sections
}

// matchSectionHeader reports whether a line is a recognized section header,
// returning its canonical lower-cased, colon-stripped label.
func matchSectionHeader(line string) (string, bool) {
	label := strings.ToLower(strings.TrimSpace(strings.TrimSuffix(line, ":")))
	if sectionHeaderSet[label] {
		return label, true
	}
	return "", false
}
