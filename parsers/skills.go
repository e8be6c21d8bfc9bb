package parsers

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// orderedSet collects strings in insertion order while suppressing exact
// duplicates.
type orderedSet struct {
	seen  map[string]bool
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]bool)}
}

func (s *orderedSet) add(value string) {
	if value == "" || s.seen[value] {
		return
	}
	s.seen[value] = true
	s.items = append(s.items, value)
}

func (s *orderedSet) values() []string {
	if s.items == nil {
		return []string{}
	}
	return s.items
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// extractSkills collects skills in three additive tiers: a skills-like
// section, a labeled full-text block when the section yielded fewer than 5,
// and dictionary keyword matching when still fewer than 3.
func (p *ProfileParser) extractSkills(text string, sections *SectionMap) []string {
	skills := newOrderedSet()

	if block, ok := sections.FirstOf("skills", "technical skills", "core competencies"); ok {
		p.addSkillTokens(skills, block)
	}

	if len(skills.items) < 5 {
		if match := p.skillsBlock.FindStringSubmatch(text); match != nil {
			p.addSkillTokens(skills, match[1])
		}
	}

	if len(skills.items) < 3 {
		for i, pattern := range p.skillHits {
			if pattern.MatchString(text) {
				skills.add(titleCase(commonSkills[i]))
			}
		}
	}
	return skills.values()
}

// addSkillTokens splits a skills block on common separators and keeps tokens
// of plausible skill length.
func (p *ProfileParser) addSkillTokens(skills *orderedSet, block string) {
	for _, token := range p.skillSeparators.Split(block, -1) {
		token = strings.TrimSpace(p.bulletLead.ReplaceAllString(strings.TrimSpace(token), ""))
		if len(token) >= 2 && len(token) < 50 {
			skills.add(token)
		}
	}
}

// extractIndustries scans interest/objective/summary-like sections for
// industry keywords, then falls back to ranking keyword frequency over the
// whole document until five entries are collected.
func (p *ProfileParser) extractIndustries(text string, sections *SectionMap) []string {
	industries := newOrderedSet()

	var scoped []string
	for _, name := range []string{"interests", "objective", "career objective", "summary", "professional summary", "profile"} {
		if sections.Has(name) {
			scoped = append(scoped, sections.Text(name))
		}
	}
	if len(scoped) > 0 {
		joined := strings.Join(scoped, "\n")
		for i, pattern := range p.industryHits {
			if pattern.MatchString(joined) {
				industries.add(titleCase(commonIndustries[i]))
			}
		}
	}

	if len(industries.items) < 3 {
		type ranked struct {
			name  string
			count int
			order int
		}
		var counts []ranked
		for i, pattern := range p.industryHits {
			if n := len(pattern.FindAllStringIndex(text, -1)); n > 0 {
				counts = append(counts, ranked{commonIndustries[i], n, i})
			}
		}
		// Descending frequency; ties break by dictionary order.
		sort.SliceStable(counts, func(a, b int) bool {
			if counts[a].count != counts[b].count {
				return counts[a].count > counts[b].count
			}
			return counts[a].order < counts[b].order
		})
		for _, r := range counts {
			if len(industries.items) >= 5 {
				break
			}
			industries.add(titleCase(r.name))
		}
	}
	return industries.values()
}
