// Package demographics canonicalizes free-text province and language fields
// and audits the normalized signals for missing data. Normalized values feed
// fairness reporting only; they are never match-scoring inputs.
package demographics

import "strings"

// Normalized holds the canonical demographic signals derived from a raw
// profile. GenderProxy is explicitly a proxy: a lower-cased free-text value
// kept as a fairness-audit dimension, never a scoring feature.
type Normalized struct {
	Province    string   `json:"province,omitempty"`
	Languages   []string `json:"languages,omitempty"`
	GenderProxy string   `json:"gender_proxy,omitempty"`
}

// Normalizer maps free-text province and language values onto a fixed
// vocabulary. Tables are injected at construction and immutable afterwards,
// so a Normalizer is safe for concurrent use.
type Normalizer struct {
	provinces map[string]string
	languages map[string]string
}

// NewNormalizer creates a normalizer with the given synonym tables. Keys are
// matched after trimming and lower-casing. Nil tables fall back to the
// built-in South African defaults.
func NewNormalizer(provinces, languages map[string]string) *Normalizer {
	if provinces == nil {
		provinces = DefaultProvinceSynonyms()
	}
	if languages == nil {
		languages = DefaultLanguageSynonyms()
	}

	return &Normalizer{provinces: provinces, languages: languages}
}

// Province canonicalizes a free-text province value. Unknown values pass
// through trimmed rather than being dropped, so auditors can see what the
// student actually entered. Empty input returns "".
func (n *Normalizer) Province(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}

	if canonical, ok := n.provinces[strings.ToLower(trimmed)]; ok {
		return canonical
	}

	return trimmed
}

// Languages canonicalizes free-text language values. Each input may itself
// be a comma-separated list. Empty entries are dropped, duplicates are
// removed keeping the first occurrence, and unknown tokens pass through
// verbatim.
func (n *Normalizer) Languages(inputs ...string) []string {
	result := []string{}
	seen := make(map[string]struct{})

	for _, input := range inputs {
		for _, token := range strings.Split(input, ",") {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}

			canonical := token
			if mapped, ok := n.languages[strings.ToLower(token)]; ok {
				canonical = mapped
			}

			key := strings.ToLower(canonical)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			result = append(result, canonical)
		}
	}

	return result
}

// Normalize derives the full demographic signal set from raw profile fields.
func (n *Normalizer) Normalize(location, languages, gender string) Normalized {
	return Normalized{
		Province:    n.Province(location),
		Languages:   n.Languages(languages),
		GenderProxy: strings.ToLower(strings.TrimSpace(gender)),
	}
}
