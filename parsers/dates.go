package parsers

import "strings"

// parseDateRange finds a year-range or month-year-range in the entry text.
// An end token of Present/Current/Now marks the entry as ongoing and leaves
// the end date empty.
func (p *ProfileParser) parseDateRange(text string) (start, end string, current, found bool) {
	match := p.monthYearRange.FindStringSubmatch(text)
	if match == nil {
		match = p.yearRange.FindStringSubmatch(text)
	}
	if match == nil {
		return "", "", false, false
	}
	start, end = match[1], match[2]
	if isPresentToken(end) {
		return start, "", true, true
	}
	return start, end, false, true
}

func isPresentToken(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "present", "current", "now":
		return true
	}
	return false
}

// containsDate reports whether a line carries any date token. Used to keep
// date lines out of entry descriptions.
func (p *ProfileParser) containsDate(line string) bool {
	return p.monthYearRange.MatchString(line) ||
		p.yearRange.MatchString(line) ||
		p.singleMonthYear.MatchString(line) ||
		p.loneYear.MatchString(line)
}

// stripDates removes date tokens so they cannot be mistaken for company or
// institution words. Ranges go first, then single month-year pairs, then
// bare years.
func (p *ProfileParser) stripDates(text string) string {
	text = p.monthYearRange.ReplaceAllString(text, " ")
	text = p.yearRange.ReplaceAllString(text, " ")
	text = p.singleMonthYear.ReplaceAllString(text, " ")
	return p.loneYear.ReplaceAllString(text, " ")
}
