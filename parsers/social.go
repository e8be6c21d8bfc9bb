package parsers

import "strings"

// extractSocialLinks matches LinkedIn, GitHub, and portfolio URLs
// independently. Bare handles are normalized into full profile URLs; a
// fully-qualified URL passes through unchanged.
func (p *ProfileParser) extractSocialLinks(text string) SocialLinks {
	links := SocialLinks{}

	if match := p.linkedinURL.FindStringSubmatch(text); match != nil {
		links.LinkedIn = normalizeProfileURL(match[0], "https://linkedin.com/in/"+match[1])
	}
	if match := p.githubURL.FindStringSubmatch(text); match != nil {
		links.GitHub = normalizeProfileURL(match[0], "https://github.com/"+match[1])
	}
	if match := p.portfolioURL.FindStringSubmatch(text); match != nil {
		links.Portfolio = strings.TrimRight(match[1], ".,;")
	}
	return links
}

func normalizeProfileURL(matched, canonical string) string {
	if strings.HasPrefix(strings.ToLower(matched), "http") {
		return matched
	}
	return canonical
}
