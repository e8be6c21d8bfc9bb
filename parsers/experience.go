package parsers

import "strings"

// extractExperience mirrors the education extractor's section/fallback/split
// strategy for the work-history timeline. Entries without company and
// position are discarded.
func (p *ProfileParser) extractExperience(text string, sections *SectionMap) []ExperienceEntry {
	block, ok := sections.FirstOf("work experience", "experience", "professional experience", "employment", "employment history", "career history")
	if !ok || block == "" {
		if match := p.experienceBlock.FindStringSubmatch(text); match != nil {
			block = match[1]
		}
	}
	entries := []ExperienceEntry{}
	if block == "" {
		return entries
	}
	for _, chunk := range p.splitExperienceEntries(block) {
		if entry, keep := p.parseExperienceEntry(chunk); keep {
			entries = append(entries, entry)
		}
	}
	return entries
}

// splitExperienceEntries cuts the block on blank lines and on lines that
// begin with a capitalized word, a year, or a month name. Bullet and
// lower-cased lines continue the current entry.
func (p *ProfileParser) splitExperienceEntries(block string) [][]string {
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
		if p.capLead.MatchString(line) || p.yearLead.MatchString(line) || p.monthLead.MatchString(line) {
			flush()
		}
		current = append(current, line)
	}
	flush()
	return chunks
}

func (p *ProfileParser) parseExperienceEntry(lines []string) (ExperienceEntry, bool) {
	entryText := strings.Join(lines, "\n")
	dateless := p.stripDates(entryText)
	entry := ExperienceEntry{}

	lowered := strings.ToLower(entryText)
	for _, title := range commonJobTitles {
		if strings.Contains(lowered, title) {
			entry.Position = titleCase(title)
			break
		}
	}
	if entry.Position == "" {
		entry.Position = strings.TrimSpace(p.capPhrase.FindString(dateless))
	}

	for _, pattern := range p.companyPatterns {
		if match := pattern.FindStringSubmatch(dateless); match != nil {
			entry.Company = strings.TrimSpace(match[1])
			break
		}
	}
	if entry.Company == "" {
		for _, line := range lines {
			if p.capLead.MatchString(line) && !strings.EqualFold(line, entry.Position) {
				entry.Company = strings.TrimSpace(p.stripDates(line))
				break
			}
		}
	}

	for _, pattern := range p.expLocationPatterns {
		if match := pattern.FindStringSubmatch(dateless); match != nil {
			entry.Location = strings.TrimSpace(match[1])
			break
		}
	}

	start, end, current, found := p.parseDateRange(entryText)
	if found {
		entry.StartDate = start
		entry.EndDate = end
		entry.CurrentlyWorking = current
	} else if single := p.singleMonthYear.FindString(entryText); single != "" {
		entry.StartDate = single
	} else if year := p.loneYear.FindString(entryText); year != "" {
		entry.StartDate = year
	}

	var description []string
	for _, line := range lines {
		if p.containsDate(line) {
			continue
		}
		if entry.Company != "" && strings.Contains(line, entry.Company) {
			continue
		}
		if entry.Position != "" && strings.Contains(strings.ToLower(line), strings.ToLower(entry.Position)) {
			continue
		}
		description = append(description, p.bulletLead.ReplaceAllString(line, ""))
	}
	entry.Description = strings.Join(description, "\n")

	return entry, entry.Company != "" || entry.Position != ""
}
