// Package policy screens posting free text for disallowed compensation terms
// and exclusionary language. Checks are deterministic and side-effect free so
// they can run as a pre-submission gate.
package policy

import (
	"regexp"
	"strings"
)

// Check statuses.
const (
	StatusPass    = "pass"
	StatusFlagged = "flagged"
)

// ExclusionRule pairs a compiled pattern with the human-readable concern it
// raises. Rules are evaluated in declaration order.
type ExclusionRule struct {
	Pattern *regexp.Regexp
	Message string
}

// CheckResult aggregates both scans over one text. Status is flagged iff
// either list is non-empty.
type CheckResult struct {
	Status         string   `json:"status"`
	DisallowedHits []string `json:"disallowed_hits"`
	EEConcerns     []string `json:"ee_concerns"`
}

// Flagged reports whether the text tripped any rule.
func (r CheckResult) Flagged() bool {
	return r.Status == StatusFlagged
}

// Checker runs the compensation and exclusionary-language scans. Rule tables
// are injected at construction and immutable afterwards.
type Checker struct {
	disallowed []string
	exclusions []ExclusionRule
}

// NewChecker creates a checker with the given rule tables. Nil tables fall
// back to the built-in defaults.
func NewChecker(disallowed []string, exclusions []ExclusionRule) *Checker {
	if disallowed == nil {
		disallowed = DefaultDisallowedPhrases()
	}
	if exclusions == nil {
		exclusions = DefaultExclusionRules()
	}

	return &Checker{disallowed: disallowed, exclusions: exclusions}
}

// RunChecks scans the text twice: a case-insensitive substring match against
// the disallowed compensation phrases, and the ordered exclusionary-language
// rules. Both scans always run; a hit in one never short-circuits the other.
func (c *Checker) RunChecks(text string) CheckResult {
	result := CheckResult{
		Status:         StatusPass,
		DisallowedHits: []string{},
		EEConcerns:     []string{},
	}

	lowered := strings.ToLower(text)
	for _, phrase := range c.disallowed {
		if strings.Contains(lowered, strings.ToLower(phrase)) {
			result.DisallowedHits = append(result.DisallowedHits, phrase)
		}
	}

	for _, rule := range c.exclusions {
		if rule.Pattern.MatchString(text) {
			result.EEConcerns = append(result.EEConcerns, rule.Message)
		}
	}

	if len(result.DisallowedHits) > 0 || len(result.EEConcerns) > 0 {
		result.Status = StatusFlagged
	}

	return result
}
