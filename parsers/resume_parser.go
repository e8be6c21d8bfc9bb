package parsers

import (
	"regexp"
	"strings"
)

// ProfileParser extracts a structured Profile from plain resume text. All
// patterns are compiled once; the parser holds no per-document state and is
// safe for concurrent use.
type ProfileParser struct {
	nameLine     *regexp.Regexp
	nameAnywhere *regexp.Regexp

	phonePatterns    []*regexp.Regexp
	locationPatterns []*regexp.Regexp

	summaryBlock *regexp.Regexp
	contactHints *regexp.Regexp

	skillsBlock     *regexp.Regexp
	skillSeparators *regexp.Regexp
	skillHits       []*regexp.Regexp

	educationBlock *regexp.Regexp
	institution    *regexp.Regexp
	degreeFull     *regexp.Regexp
	degreeAbbrev   *regexp.Regexp

	experienceBlock     *regexp.Regexp
	capPhrase           *regexp.Regexp
	companyPatterns     []*regexp.Regexp
	expLocationPatterns []*regexp.Regexp

	monthYearRange  *regexp.Regexp
	yearRange       *regexp.Regexp
	singleMonthYear *regexp.Regexp
	loneYear        *regexp.Regexp
	monthLead       *regexp.Regexp
	yearLead        *regexp.Regexp
	capLead         *regexp.Regexp
	bulletLead      *regexp.Regexp

	linkedinURL  *regexp.Regexp
	githubURL    *regexp.Regexp
	portfolioURL *regexp.Regexp

	languageHits     []*regexp.Regexp
	languagesBlock   *regexp.Regexp
	languageFragment *regexp.Regexp

	industryHits []*regexp.Regexp
}

const monthAlt = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?`

// NewProfileParser compiles every extraction pattern.
func NewProfileParser() *ProfileParser {
	p := &ProfileParser{
		nameLine:     regexp.MustCompile(`^[A-Z][a-zA-Z'.\-]*(?:\s+[A-Z][a-zA-Z'.\-]*)+$`),
		nameAnywhere: regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3}\b`),

		phonePatterns: []*regexp.Regexp{
			regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.\s]?\d{4}`),
			regexp.MustCompile(`\b\d{3}[-.\s]\d{3}[-.\s]\d{4}\b`),
			regexp.MustCompile(`\b\d{10}\b`),
			regexp.MustCompile(`\+\d{1,2}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		},

		locationPatterns: []*regexp.Regexp{
			regexp.MustCompile(`\b([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*,\s*[A-Z]{2}(?:,\s*[A-Z][a-zA-Z]+(?:\s+[A-Za-z]+)*)?)\b`),
			regexp.MustCompile(`(?m)^([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*,\s*[A-Z][a-zA-Z]+(?:\s+[A-Za-z]+)*)$`),
			regexp.MustCompile(`(?im)^address\s*:\s*(.+)$`),
		},

		summaryBlock: regexp.MustCompile(`(?is)\b(?:professional\s+summary|career\s+objective|summary|objective|profile)\s*:?\s*\n(.+?)(?:\n[ \t]*\n|\n[A-Z][A-Z\s]+\n|$)`),
		contactHints: regexp.MustCompile(`(?i)phone|email|@|address|linkedin`),

		skillsBlock:     regexp.MustCompile(`(?is)\b(?:technical\s+)?skills\s*:?\s*\n(.+?)(?:\n[ \t]*\n|$)`),
		skillSeparators: regexp.MustCompile(`[,•·▪|/\n]`),

		educationBlock: regexp.MustCompile(`(?is)\beducation\s*:?\s*\n(.+?)(?:\n[ \t]*\n|$)`),
		institution:    regexp.MustCompile(`((?:[A-Z][A-Za-z&.'\-]*\s+)*(?:University|College|School|Institute|Academy)(?:\s+of\s+[A-Z][A-Za-z]+(?:\s+[A-Z][A-Za-z]+)*)?)`),
		degreeFull:     regexp.MustCompile(`(?i)\b(` + strings.Join(degreeNames, "|") + `)\b(?:\s+in\s+([A-Z][A-Za-z]+(?:\s+[A-Z][A-Za-z]+)*))?`),
		degreeAbbrev:   regexp.MustCompile(`\b(` + strings.Join(degreeAbbreviations, "|") + `)(?:\s+in\s+([A-Z][A-Za-z]+(?:\s+[A-Z][A-Za-z]+)*))?`),

		experienceBlock: regexp.MustCompile(`(?is)\b(?:work\s+|professional\s+)?experience\s*:?\s*\n(.+?)(?:\n[ \t]*\n|$)`),
		capPhrase:       regexp.MustCompile(`[A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,4}`),
		companyPatterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(?:at|with|for)\s+([A-Z][A-Za-z0-9&.'\-]*(?:\s+[A-Z][A-Za-z0-9&.'\-]*)*)`),
			regexp.MustCompile(`([A-Z][A-Za-z0-9&.'\-]*(?:\s+[A-Z][A-Za-z0-9&.'\-]*)*)\s+(?:Inc|LLC|Ltd|Corp|Corporation|Company|Co|Technologies|Labs|Group)\b`),
		},
		expLocationPatterns: []*regexp.Regexp{
			regexp.MustCompile(`\(([A-Za-z .'\-]+(?:,\s*[A-Za-z .]+)?)\)`),
			regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*,\s*[A-Z]{2})\b`),
		},

		monthYearRange:  regexp.MustCompile(`(?i)\b(` + monthAlt + `,?\s+\d{4})\s*(?:-|–|—|to)\s*(` + monthAlt + `,?\s+\d{4}|present|current|now)\b`),
		yearRange:       regexp.MustCompile(`(?i)\b(\d{4})\s*(?:-|–|—|to)\s*(\d{4}|present|current|now)\b`),
		singleMonthYear: regexp.MustCompile(`(?i)\b` + monthAlt + `,?\s+\d{4}\b`),
		loneYear:        regexp.MustCompile(`\b((?:19|20)\d{2})\b`),
		monthLead:       regexp.MustCompile(`(?i)^` + monthAlt + `\b`),
		yearLead:        regexp.MustCompile(`^\d{4}\b`),
		capLead:         regexp.MustCompile(`^[A-Z][A-Za-z]*\b`),
		bulletLead:      regexp.MustCompile(`^[-•*◦‣]\s*`),

		linkedinURL:  regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/([A-Za-z0-9_\-]+)`),
		githubURL:    regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/([A-Za-z0-9_.\-]+)`),
		portfolioURL: regexp.MustCompile(`(?i)(?:portfolio|website|personal\s+site)\s*:?\s+(https?://\S+)`),

		languagesBlock:   regexp.MustCompile(`(?is)\blanguages?\s*:?\s*\n(.+?)(?:\n[ \t]*\n|$)`),
		languageFragment: regexp.MustCompile(`^([A-Za-z]+)\s*(?:[:\-–—]\s*(.*))?$`),
	}

	for _, skill := range commonSkills {
		p.skillHits = append(p.skillHits, wordRegexp(skill))
	}
	for _, lang := range commonLanguages {
		p.languageHits = append(p.languageHits,
			regexp.MustCompile(`(?i)\b`+lang+`\b[\s:()\-–—]*([A-Za-z ]*)`))
	}
	for _, industry := range commonIndustries {
		p.industryHits = append(p.industryHits, wordRegexp(industry))
	}
	return p
}

// wordRegexp builds a case-insensitive word-boundary matcher for a literal
// dictionary term.
func wordRegexp(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
}

// Parse runs the full pipeline: normalization, section segmentation, then
// every field extractor over the (text, sections) pair. It always returns a
// complete Profile; facets that cannot be extracted stay empty.
func (p *ProfileParser) Parse(rawText string) *Profile {
	text := normalizeText(rawText)
	sections := segmentSections(text)

	profile := NewProfile()
	profile.FullName = p.extractName(text)
	profile.Phone = p.extractPhone(text)
	profile.Location = p.extractLocation(text)
	profile.ProfessionalSummary = p.extractSummary(text, sections)
	profile.Skills = p.extractSkills(text, sections)
	profile.Education = p.extractEducation(text, sections)
	profile.WorkExperience = p.extractExperience(text, sections)
	profile.SocialLinks = p.extractSocialLinks(text)
	profile.Languages = p.extractLanguages(text, sections)
	profile.JobPreferences.PreferredIndustries = p.extractIndustries(text, sections)
	return profile
}

// extractName tries the first line of text, then the first capitalized
// multi-word match anywhere. First hit wins; there is no deeper fallback.
func (p *ProfileParser) extractName(text string) string {
	first := text
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		first = text[:idx]
	}
	first = strings.TrimSpace(first)
	if first != "" && p.nameLine.MatchString(first) {
		return first
	}
	return p.nameAnywhere.FindString(text)
}

// extractPhone returns the first phone-shaped match verbatim.
func (p *ProfileParser) extractPhone(text string) string {
	for _, pattern := range p.phonePatterns {
		if match := pattern.FindString(text); match != "" {
			return match
		}
	}
	return ""
}

// extractLocation returns the first "City, Region[, Country]" or labeled
// address match shorter than 80 characters. The length guard keeps a long
// unrelated clause from being mistaken for a location.
func (p *ProfileParser) extractLocation(text string) string {
	for _, pattern := range p.locationPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			candidate := strings.TrimSpace(match[1])
			if candidate != "" && len(candidate) < 80 {
				return candidate
			}
		}
	}
	return ""
}

// extractSummary resolves the professional summary with a three-tier
// fallback: named section, labeled full-text block, then an early line that
// reads like prose rather than contact info.
func (p *ProfileParser) extractSummary(text string, sections *SectionMap) string {
	if joined, ok := sections.FirstOf("summary", "professional summary", "profile summary", "career objective", "objective"); ok && joined != "" {
		return strings.Join(strings.Fields(joined), " ")
	}

	if match := p.summaryBlock.FindStringSubmatch(text); match != nil {
		summary := strings.Join(strings.Fields(match[1]), " ")
		if summary != "" {
			return summary
		}
	}

	lines := strings.Split(text, "\n")
	for i := 4; i < len(lines) && i < 15; i++ {
		line := strings.TrimSpace(lines[i])
		if len(line) <= 30 || p.contactHints.MatchString(line) {
			continue
		}
		return line
	}
	return ""
}
