package parsers

import "testing"

func extractLanguagesFrom(t *testing.T, text string) []LanguageEntry {
	t.Helper()
	parser := NewProfileParser()
	normalized := normalizeText(text)
	return parser.extractLanguages(normalized, segmentSections(normalized))
}

func TestExtractLanguages_DictionaryWithDescriptors(t *testing.T) {
	entries := extractLanguagesFrom(t, "Languages\nEnglish (Native)\nSpanish - Professional Working Proficiency\nFrench")

	want := []LanguageEntry{
		{Language: "English", Proficiency: ProficiencyNative},
		{Language: "Spanish", Proficiency: ProficiencyFluent},
		{Language: "French", Proficiency: ProficiencyIntermediate},
	}
	if len(entries) != len(want) {
		t.Fatalf("Expected %d entries, got %d: %+v", len(want), len(entries), entries)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("Entry %d: got %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestExtractLanguages_FragmentFallback(t *testing.T) {
	// No dictionary language appears, so the block splits into fragments.
	entries := extractLanguagesFrom(t, "Languages\nKlingon: basic, Elvish, Klingon")

	if len(entries) != 2 {
		t.Fatalf("Expected 2 deduplicated entries, got %d: %+v", len(entries), entries)
	}
	if entries[0].Language != "Klingon" || entries[0].Proficiency != ProficiencyBeginner {
		t.Errorf("Unexpected first entry %+v", entries[0])
	}
	if entries[1].Language != "Elvish" || entries[1].Proficiency != ProficiencyIntermediate {
		t.Errorf("Unexpected second entry %+v", entries[1])
	}
}

func TestExtractLanguages_LabeledBlockFallback(t *testing.T) {
	// "Spoken Languages" is not a recognized header, so the labeled block
	// pattern over the full text applies.
	entries := extractLanguagesFrom(t, "Jane Doe\nSpoken Languages\nFrench, German")

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d: %+v", len(entries), entries)
	}
	if entries[0].Language != "French" || entries[1].Language != "German" {
		t.Errorf("Unexpected entries %+v", entries)
	}
}

func TestNormalizeProficiency(t *testing.T) {
	tests := []struct {
		descriptor string
		want       string
	}{
		{"Native speaker", ProficiencyNative},
		{"mother tongue", ProficiencyNative},
		{"Professional Working Proficiency", ProficiencyFluent},
		{"full professional proficiency", ProficiencyFluent},
		{"business level", ProficiencyAdvanced},
		{"conversational", ProficiencyIntermediate},
		{"limited", ProficiencyBeginner},
		{"decent", ProficiencyIntermediate},
		{"", ProficiencyIntermediate},
	}
	for _, test := range tests {
		if got := NormalizeProficiency(test.descriptor); got != test.want {
			t.Errorf("NormalizeProficiency(%q) = %q, want %q", test.descriptor, got, test.want)
		}
	}

	// Normalizing an already-normalized level is a no-op.
	for _, level := range []string{
		ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced,
		ProficiencyFluent, ProficiencyNative,
	} {
		if got := NormalizeProficiency(level); got != level {
			t.Errorf("NormalizeProficiency(%q) = %q, want it unchanged", level, got)
		}
	}
}
