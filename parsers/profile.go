package parsers

import "encoding/json"

// Profile is the structured record extracted from a resume. Every field is
// best-effort: an extractor that finds nothing leaves its facet as the empty
// string or empty slice, never an error.
type Profile struct {
	FullName            string            `json:"fullName"`
	Phone               string            `json:"phone"`
	Location            string            `json:"location"`
	ProfessionalSummary string            `json:"professionalSummary"`
	Skills              []string          `json:"skills"`
	Languages           []LanguageEntry   `json:"languages"`
	Education           []EducationEntry  `json:"education"`
	WorkExperience      []ExperienceEntry `json:"workExperience"`
	SocialLinks         SocialLinks       `json:"socialLinks"`
	JobPreferences      JobPreferences    `json:"jobPreferences"`
}

// EducationEntry represents one education timeline entry. An entry only
// exists when institution or degree is non-empty; CurrentlyStudying implies
// EndDate is empty.
type EducationEntry struct {
	Institution       string `json:"institution"`
	Degree            string `json:"degree"`
	FieldOfStudy      string `json:"fieldOfStudy"`
	StartDate         string `json:"startDate"`
	EndDate           string `json:"endDate"`
	CurrentlyStudying bool   `json:"currentlyStudying"`
	Description       string `json:"description"`
}

// ExperienceEntry represents one work-history timeline entry. Same existence
// and date invariants as EducationEntry, with company/position instead.
type ExperienceEntry struct {
	Company          string `json:"company"`
	Position         string `json:"position"`
	Location         string `json:"location"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	CurrentlyWorking bool   `json:"currentlyWorking"`
	Description      string `json:"description"`
}

// LanguageEntry pairs a language with a normalized proficiency level.
type LanguageEntry struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// SocialLinks holds profile URLs; each link is empty when not found.
type SocialLinks struct {
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Portfolio string `json:"portfolio"`
}

// JobPreferences holds inferred industry preferences.
type JobPreferences struct {
	PreferredIndustries []string `json:"preferredIndustries"`
}

// Proficiency levels, ordered from weakest to strongest.
const (
	ProficiencyBeginner     = "Beginner"
	ProficiencyIntermediate = "Intermediate"
	ProficiencyAdvanced     = "Advanced"
	ProficiencyFluent       = "Fluent"
	ProficiencyNative       = "Native"
)

// NewProfile returns a profile with every sequence facet initialized so the
// JSON form never contains null arrays.
func NewProfile() *Profile {
	return &Profile{
		Skills:         []string{},
		Languages:      []LanguageEntry{},
		Education:      []EducationEntry{},
		WorkExperience: []ExperienceEntry{},
		JobPreferences: JobPreferences{PreferredIndustries: []string{}},
	}
}

// ToJSON converts the profile to indented JSON.
func (p *Profile) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}
