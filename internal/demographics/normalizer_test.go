package demographics

import (
	"reflect"
	"testing"
)

func TestProvinceAliases(t *testing.T) {
	t.Parallel()

	normalizer := NewNormalizer(nil, nil)

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "two letter abbreviation", input: "kzn", expect: "KwaZulu-Natal"},
		{name: "upper case abbreviation", input: "WC", expect: "Western Cape"},
		{name: "full name mixed case", input: "Gauteng", expect: "Gauteng"},
		{name: "surrounding whitespace", input: "  eastern cape  ", expect: "Eastern Cape"},
		{name: "hyphen variant", input: "north-west", expect: "North West"},
		{name: "unknown passes through trimmed", input: "  Polokwane CBD ", expect: "Polokwane CBD"},
		{name: "empty returns empty", input: "", expect: ""},
		{name: "whitespace only returns empty", input: "   ", expect: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := normalizer.Province(tt.input); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestProvinceAliasTableRoundTrip(t *testing.T) {
	t.Parallel()

	normalizer := NewNormalizer(nil, nil)

	// Every listed alias must resolve to its canonical name, regardless of
	// case or surrounding whitespace.
	for alias, canonical := range DefaultProvinceSynonyms() {
		if got := normalizer.Province("  " + alias + " "); got != canonical {
			t.Fatalf("alias %q: expected %q, got %q", alias, canonical, got)
		}
	}
}

func TestLanguages(t *testing.T) {
	t.Parallel()

	normalizer := NewNormalizer(nil, nil)

	tests := []struct {
		name   string
		inputs []string
		expect []string
	}{
		{
			name:   "maps synonyms and preserves order",
			inputs: []string{"zulu", "English"},
			expect: []string{"isiZulu", "English"},
		},
		{
			name:   "splits comma separated input",
			inputs: []string{"xhosa, english ,afrikaans"},
			expect: []string{"isiXhosa", "English", "Afrikaans"},
		},
		{
			name:   "removes duplicates keeping first occurrence",
			inputs: []string{"Zulu", "isizulu", "english", "ENGLISH"},
			expect: []string{"isiZulu", "English"},
		},
		{
			name:   "unknown token passes through verbatim",
			inputs: []string{"english, Portuguese"},
			expect: []string{"English", "Portuguese"},
		},
		{
			name:   "drops empty entries",
			inputs: []string{" , ,venda,"},
			expect: []string{"Tshivenda"},
		},
		{
			name:   "empty input gives empty list",
			inputs: nil,
			expect: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := normalizer.Languages(tt.inputs...)
			if !reflect.DeepEqual(got, tt.expect) {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	normalizer := NewNormalizer(nil, nil)

	normalized := normalizer.Normalize("gp", "pedi, english", "  Female ")

	if normalized.Province != "Gauteng" {
		t.Fatalf("expected province Gauteng, got %q", normalized.Province)
	}

	if !reflect.DeepEqual(normalized.Languages, []string{"Sepedi", "English"}) {
		t.Fatalf("unexpected languages: %v", normalized.Languages)
	}

	if normalized.GenderProxy != "female" {
		t.Fatalf("expected lower-cased gender proxy, got %q", normalized.GenderProxy)
	}
}

func TestNormalizerCustomTables(t *testing.T) {
	t.Parallel()

	normalizer := NewNormalizer(
		map[string]string{"jhb": "Gauteng"},
		map[string]string{"en": "English"},
	)

	if got := normalizer.Province("JHB"); got != "Gauteng" {
		t.Fatalf("expected custom province table to apply, got %q", got)
	}

	if got := normalizer.Languages("en"); !reflect.DeepEqual(got, []string{"English"}) {
		t.Fatalf("expected custom language table to apply, got %v", got)
	}
}
