package parsers

import (
	"strings"
	"testing"
)

func TestProfileToJSON_EmptyFacetsStayArrays(t *testing.T) {
	raw, err := NewProfile().ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	encoded := string(raw)
	if strings.Contains(encoded, "null") {
		t.Errorf("Expected no null facets, got %s", encoded)
	}
	for _, field := range []string{`"skills": []`, `"languages": []`, `"education": []`, `"workExperience": []`, `"preferredIndustries": []`} {
		if !strings.Contains(encoded, field) {
			t.Errorf("Expected %s in output, got %s", field, encoded)
		}
	}
}

func TestProfileToJSON_FieldNames(t *testing.T) {
	profile := NewProfile()
	profile.FullName = "Jane Smith"
	profile.SocialLinks.LinkedIn = "https://linkedin.com/in/janedoe"

	raw, err := profile.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	encoded := string(raw)
	for _, field := range []string{`"fullName": "Jane Smith"`, `"linkedin": "https://linkedin.com/in/janedoe"`, `"professionalSummary"`, `"jobPreferences"`} {
		if !strings.Contains(encoded, field) {
			t.Errorf("Expected %s in output, got %s", field, encoded)
		}
	}
}
