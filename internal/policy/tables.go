package policy

import "regexp"

// DefaultDisallowedPhrases returns the built-in list of compensation terms
// that may not appear in a posting. Matching is a lower-cased substring
// check.
func DefaultDisallowedPhrases() []string {
	return []string{
		"unpaid trial",
		"zero pay",
		"below minimum wage",
		"no stipend",
		"work for exposure",
		"free labour",
		"commission only",
	}
}

// DefaultExclusionRules returns the built-in exclusionary-language rules in
// evaluation order. New patterns belong here, not at call sites.
func DefaultExclusionRules() []ExclusionRule {
	return []ExclusionRule{
		{
			Pattern: regexp.MustCompile(`(?i)\b(?:males?|females?|men|women|ladies|gentlemen)\s+only\b`),
			Message: "Gender-exclusive wording detected; postings must be open to all genders",
		},
		{
			Pattern: regexp.MustCompile(`(?i)\bonly\s+(?:males?|females?|men|women)\b`),
			Message: "Gender-exclusive wording detected; postings must be open to all genders",
		},
		{
			Pattern: regexp.MustCompile(`(?i)\b(?:under|below|younger\s+than|max(?:imum)?\s+age)\s+\d{2}\b`),
			Message: "Age-exclusive wording detected; numeric age limits are not permitted",
		},
		{
			Pattern: regexp.MustCompile(`(?i)\b(?:no\s+candidates?\s+over|must\s+be\s+under)\s+\d{2}\b`),
			Message: "Age-exclusive wording detected; numeric age limits are not permitted",
		},
		{
			Pattern: regexp.MustCompile(`(?i)\b(?:whites?|blacks?|indians?|coloureds?)\s+only\b`),
			Message: "Race-exclusive wording detected; postings may not restrict by race",
		},
		{
			Pattern: regexp.MustCompile(`(?i)\bonly\s+(?:white|black|indian|coloured)\s+(?:candidates?|applicants?)\b`),
			Message: "Race-exclusive wording detected; postings may not restrict by race",
		},
	}
}
