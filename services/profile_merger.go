package services

import (
	"strings"

	"profileparser/parsers"
)

// MergeProfiles folds a freshly extracted profile into an existing one.
// Existing scalar values win; extraction only fills gaps. Sequence facets
// become the union with existing entries first, deduplicated by their
// identifying fields.
func MergeProfiles(existing, extracted *parsers.Profile) *parsers.Profile {
	if existing == nil {
		existing = parsers.NewProfile()
	}
	if extracted == nil {
		extracted = parsers.NewProfile()
	}

	merged := parsers.NewProfile()
	merged.FullName = firstNonEmpty(existing.FullName, extracted.FullName)
	merged.Phone = firstNonEmpty(existing.Phone, extracted.Phone)
	merged.Location = firstNonEmpty(existing.Location, extracted.Location)
	merged.ProfessionalSummary = firstNonEmpty(existing.ProfessionalSummary, extracted.ProfessionalSummary)

	merged.SocialLinks.LinkedIn = firstNonEmpty(existing.SocialLinks.LinkedIn, extracted.SocialLinks.LinkedIn)
	merged.SocialLinks.GitHub = firstNonEmpty(existing.SocialLinks.GitHub, extracted.SocialLinks.GitHub)
	merged.SocialLinks.Portfolio = firstNonEmpty(existing.SocialLinks.Portfolio, extracted.SocialLinks.Portfolio)

	merged.Skills = mergeStrings(existing.Skills, extracted.Skills)
	merged.JobPreferences.PreferredIndustries = mergeStrings(
		existing.JobPreferences.PreferredIndustries,
		extracted.JobPreferences.PreferredIndustries)

	seen := make(map[string]bool)
	for _, entry := range append(append([]parsers.LanguageEntry{}, existing.Languages...), extracted.Languages...) {
		key := strings.ToLower(entry.Language)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		merged.Languages = append(merged.Languages, entry)
	}

	seenEdu := make(map[string]bool)
	for _, entry := range append(append([]parsers.EducationEntry{}, existing.Education...), extracted.Education...) {
		key := strings.ToLower(entry.Institution + "|" + entry.Degree)
		if seenEdu[key] {
			continue
		}
		seenEdu[key] = true
		merged.Education = append(merged.Education, entry)
	}

	seenExp := make(map[string]bool)
	for _, entry := range append(append([]parsers.ExperienceEntry{}, existing.WorkExperience...), extracted.WorkExperience...) {
		key := strings.ToLower(entry.Company + "|" + entry.Position)
		if seenExp[key] {
			continue
		}
		seenExp[key] = true
		merged.WorkExperience = append(merged.WorkExperience, entry)
	}

	return merged
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func mergeStrings(existing, extracted []string) []string {
	seen := make(map[string]bool)
	merged := []string{}
	for _, value := range append(append([]string{}, existing...), extracted...) {
		key := strings.ToLower(value)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, value)
	}
	return merged
}
