package parsers

import "strings"

// extractEducation locates an education-like section (or a labeled full-text
// block), splits it into candidate entries, and extracts per-entry fields.
// Entries without institution and degree are discarded.
func (p *ProfileParser) extractEducation(text string, sections *SectionMap) []EducationEntry {
	block, ok := sections.FirstOf("education", "academic background", "qualifications")
	if !ok || block == "" {
		if match := p.educationBlock.FindStringSubmatch(text); match != nil {
			block = match[1]
		}
	}
	entries := []EducationEntry{}
	if block == "" {
		return entries
	}
	for _, chunk := range p.splitEducationEntries(block) {
		if entry, keep := p.parseEducationEntry(chunk); keep {
			entries = append(entries, entry)
		}
	}
	return entries
}

// splitEducationEntries cuts the block on blank lines and on lines that
// start with a year or a month name. This line-boundary heuristic can
// mis-segment unusual layouts; that trade-off is deliberate.
func (p *ProfileParser) splitEducationEntries(block string) [][]string {
	var chunks [][]string
	var current []string
	flush := func() {
		if len(current) > 0 {
			chunks = append(chunks, current)
			current = nil
		}
	}
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		if p.yearLead.MatchString(line) || p.monthLead.MatchString(line) {
			flush()
		}
		current = append(current, line)
	}
	flush()
	return chunks
}

func (p *ProfileParser) parseEducationEntry(lines []string) (EducationEntry, bool) {
	entryText := strings.Join(lines, "\n")
	entry := EducationEntry{}

	if match := p.institution.FindString(p.stripDates(entryText)); match != "" {
		entry.Institution = strings.TrimSpace(match)
	} else {
		for _, line := range lines {
			if p.capLead.MatchString(line) {
				entry.Institution = line
				break
			}
		}
	}

	if match := p.degreeFull.FindStringSubmatch(entryText); match != nil {
		entry.Degree = match[1]
		entry.FieldOfStudy = strings.TrimSpace(match[2])
	} else if match := p.degreeAbbrev.FindStringSubmatch(entryText); match != nil {
		entry.Degree = match[1]
		entry.FieldOfStudy = strings.TrimSpace(match[2])
	}

	start, end, current, found := p.parseDateRange(entryText)
	if found {
		entry.StartDate = start
		entry.EndDate = end
		entry.CurrentlyStudying = current
	} else if year := p.loneYear.FindString(entryText); year != "" {
		entry.EndDate = year
	}

	var description []string
	for _, line := range lines {
		if entry.Institution != "" && strings.Contains(line, entry.Institution) {
			continue
		}
		if entry.Degree != "" && strings.Contains(line, entry.Degree) {
			continue
		}
		if p.containsDate(line) {
			continue
		}
		description = append(description, line)
	}
	entry.Description = strings.Join(description, "\n")

	return entry, entry.Institution != "" || entry.Degree != ""
}
