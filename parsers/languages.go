package parsers

import "strings"

// extractLanguages locates a languages-like section or block, then matches
// the common-language dictionary against it. Each hit picks up an adjacent
// proficiency descriptor when one follows. When no dictionary entry hits,
// the block is split into fragments and parsed as "<language> [- level]".
func (p *ProfileParser) extractLanguages(text string, sections *SectionMap) []LanguageEntry {
	block, ok := sections.FirstOf("languages")
	if !ok || block == "" {
		if match := p.languagesBlock.FindStringSubmatch(text); match != nil {
			block = match[1]
		}
	}
	entries := []LanguageEntry{}
	if block == "" {
		return entries
	}

	seen := make(map[string]bool)
	for i, pattern := range p.languageHits {
		match := pattern.FindStringSubmatch(block)
		if match == nil {
			continue
		}
		name := commonLanguages[i]
		if seen[name] {
			continue
		}
		seen[name] = true
		entries = append(entries, LanguageEntry{
			Language:    name,
			Proficiency: NormalizeProficiency(match[1]),
		})
	}
	if len(entries) > 0 {
		return entries
	}

	for _, fragment := range strings.FieldsFunc(block, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	}) {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}
		var name, descriptor string
		if match := p.languageFragment.FindStringSubmatch(fragment); match != nil {
			name, descriptor = match[1], match[2]
		} else if len(fragment) < 20 {
			// Short unparsed fragments read as a bare language name.
			name = fragment
		}
		name = titleCase(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		entries = append(entries, LanguageEntry{
			Language:    name,
			Proficiency: NormalizeProficiency(descriptor),
		})
	}
	return entries
}

// NormalizeProficiency maps a free-text proficiency descriptor onto the
// fixed vocabulary. Keyword sets are checked in priority order because a
// descriptor can satisfy several of them ("professional working
// proficiency" resolves to Fluent, not Intermediate). No match defaults to
// Intermediate, so normalization is idempotent over its own vocabulary.
func NormalizeProficiency(descriptor string) string {
	lowered := strings.ToLower(descriptor)
	for _, set := range proficiencyKeywords {
		for _, keyword := range set.keywords {
			if strings.Contains(lowered, keyword) {
				return set.level
			}
		}
	}
	return ProficiencyIntermediate
}
