package services

import (
	"reflect"
	"testing"

	"profileparser/parsers"
)

func TestMergeProfiles_ExistingScalarsWin(t *testing.T) {
	existing := parsers.NewProfile()
	existing.FullName = "Jane Smith"
	existing.Location = ""

	extracted := parsers.NewProfile()
	extracted.FullName = "J. Smith"
	extracted.Location = "Austin, TX"
	extracted.Phone = "555-123-4567"

	merged := MergeProfiles(existing, extracted)

	if merged.FullName != "Jane Smith" {
		t.Errorf("Expected existing name kept, got '%s'", merged.FullName)
	}
	if merged.Location != "Austin, TX" {
		t.Errorf("Expected empty location filled, got '%s'", merged.Location)
	}
	if merged.Phone != "555-123-4567" {
		t.Errorf("Expected empty phone filled, got '%s'", merged.Phone)
	}
}

func TestMergeProfiles_SkillsUnionExistingFirst(t *testing.T) {
	existing := parsers.NewProfile()
	existing.Skills = []string{"Go", "SQL"}

	extracted := parsers.NewProfile()
	extracted.Skills = []string{"sql", "Python"}

	merged := MergeProfiles(existing, extracted)

	// Dedupe is case-insensitive and keeps the existing spelling.
	want := []string{"Go", "SQL", "Python"}
	if !reflect.DeepEqual(merged.Skills, want) {
		t.Errorf("Expected %v, got %v", want, merged.Skills)
	}
}

func TestMergeProfiles_TimelineEntriesDedupeByIdentity(t *testing.T) {
	existing := parsers.NewProfile()
	existing.WorkExperience = []parsers.ExperienceEntry{
		{Company: "Google", Position: "Software Engineer", StartDate: "2020"},
	}

	extracted := parsers.NewProfile()
	extracted.WorkExperience = []parsers.ExperienceEntry{
		{Company: "Google", Position: "Software Engineer", StartDate: "June 2020"},
		{Company: "Initech", Position: "Backend Developer"},
	}

	merged := MergeProfiles(existing, extracted)

	if len(merged.WorkExperience) != 2 {
		t.Fatalf("Expected 2 entries, got %d: %+v", len(merged.WorkExperience), merged.WorkExperience)
	}
	if merged.WorkExperience[0].StartDate != "2020" {
		t.Errorf("Expected existing entry kept, got %+v", merged.WorkExperience[0])
	}
	if merged.WorkExperience[1].Company != "Initech" {
		t.Errorf("Expected new entry appended, got %+v", merged.WorkExperience[1])
	}
}

func TestMergeProfiles_LanguagesDedupeByName(t *testing.T) {
	existing := parsers.NewProfile()
	existing.Languages = []parsers.LanguageEntry{
		{Language: "Spanish", Proficiency: parsers.ProficiencyFluent},
	}

	extracted := parsers.NewProfile()
	extracted.Languages = []parsers.LanguageEntry{
		{Language: "spanish", Proficiency: parsers.ProficiencyIntermediate},
		{Language: "French", Proficiency: parsers.ProficiencyBeginner},
	}

	merged := MergeProfiles(existing, extracted)

	if len(merged.Languages) != 2 {
		t.Fatalf("Expected 2 languages, got %+v", merged.Languages)
	}
	if merged.Languages[0].Proficiency != parsers.ProficiencyFluent {
		t.Errorf("Expected existing proficiency kept, got %+v", merged.Languages[0])
	}
}

func TestMergeProfiles_NilInputs(t *testing.T) {
	merged := MergeProfiles(nil, nil)
	if merged == nil {
		t.Fatal("Expected a profile, got nil")
	}
	if len(merged.Skills) != 0 || len(merged.Education) != 0 {
		t.Errorf("Expected empty profile, got %+v", merged)
	}

	extracted := parsers.NewProfile()
	extracted.FullName = "Jane Smith"
	merged = MergeProfiles(nil, extracted)
	if merged.FullName != "Jane Smith" {
		t.Errorf("Expected extracted name, got '%s'", merged.FullName)
	}
}
