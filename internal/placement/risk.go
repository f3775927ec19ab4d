// Package placement scores work-integrated-learning placements for risk and
// aggregates fairness statistics across province and institution cohorts.
package placement

import (
	"fmt"
	"math"
	"regexp"

	"github.com/fairwork-za/wilmatch/internal/records"
)

// Risk levels.
const (
	LevelLow    = "low"
	LevelMedium = "medium"
	LevelHigh   = "high"
)

// UnknownInstitution is the cohort bucket for institutions absent from the
// reference table. Resolving instead of erroring keeps aggregation totals
// intact even with incomplete reference data.
const UnknownInstitution = "Unknown"

const baseScore = 10

// Inputs is the snapshot of signals a decision was computed from, kept so
// every score is explainable after the fact.
type Inputs struct {
	CompletionRate       int      `json:"completion_rate"`
	AssessmentScore      *float64 `json:"assessment_score,omitempty"`
	RiskFactors          []string `json:"risk_factors,omitempty"`
	Status               string   `json:"status,omitempty"`
	HasSupervisorContact bool     `json:"has_supervisor_contact"`
	HoursOutstanding     int      `json:"hours_outstanding"`
	Province             string   `json:"province"`
	Institution          string   `json:"institution"`
}

// Decision is the scored outcome for one placement. Rationale entries are
// emitted in rule-evaluation order and account for every point added to or
// subtracted from the base score, so identical inputs produce byte-identical
// rationale sequences.
type Decision struct {
	PlacementID string   `json:"placement_id,omitempty"`
	Score       int      `json:"score"`
	Level       string   `json:"level"`
	Flagged     bool     `json:"flagged"`
	Rationale   []string `json:"rationale"`
	Inputs      Inputs   `json:"inputs"`
}

// factorRule is one free-text risk factor pattern family and the points it
// adds when a declared factor matches it.
type factorRule struct {
	pattern *regexp.Regexp
	points  int
	reason  string
}

// ScorerConfig carries the discretization thresholds. The 40/70 defaults are
// hand-tuned constants with no documented derivation.
type ScorerConfig struct {
	MediumScore int `mapstructure:"medium-score"`
	HighScore   int `mapstructure:"high-score"`
}

// Scorer converts placement records into risk decisions. Tables are
// immutable after construction; Evaluate is pure and safe to call from any
// goroutine.
type Scorer struct {
	config       ScorerConfig
	institutions map[string]string
	factorRules  []factorRule
}

// NewScorer creates a scorer. A nil institution table falls back to the
// built-in reference data; zero-valued thresholds fall back to 40/70.
func NewScorer(config ScorerConfig, institutions map[string]string) *Scorer {
	if config.MediumScore <= 0 {
		config.MediumScore = 40
	}
	if config.HighScore <= config.MediumScore {
		config.HighScore = 70
	}
	if institutions == nil {
		institutions = DefaultInstitutionProvinces()
	}

	return &Scorer{
		config:       config,
		institutions: institutions,
		factorRules: []factorRule{
			{
				pattern: regexp.MustCompile(`(?i)attendance|absent`),
				points:  15,
				reason:  "Attendance-related risk factor",
			},
			{
				pattern: regexp.MustCompile(`(?i)health|medical|withdraw|fail|concern`),
				points:  20,
				reason:  "Wellbeing or performance risk factor",
			},
			{
				pattern: regexp.MustCompile(`(?i)transport|deadline|late`),
				points:  8,
				reason:  "Logistics-related risk factor",
			},
		},
	}
}

// ResolveProvince maps an institution name to its province, or
// UnknownInstitution when the reference table has no entry.
func (s *Scorer) ResolveProvince(institution string) string {
	if province, ok := s.institutions[institution]; ok {
		return province
	}
	return UnknownInstitution
}

// Evaluate scores a single placement. Rules run in a fixed order, each
// firing rule appends one rationale entry, and every declared risk factor is
// recorded as a "Signal:" entry even when it adds no points.
func (s *Scorer) Evaluate(p *records.Placement) Decision {
	if p == nil {
		p = &records.Placement{}
	}

	score := baseScore
	rationale := []string{}

	rate := completionRate(p.HoursCompleted, p.HoursRequired)
	switch {
	case rate < 50:
		score += 30
		rationale = append(rationale, "Hours completion below 50%")
	case rate < 75:
		score += 15
		rationale = append(rationale, "Hours completion below 75%")
	}

	if p.AssessmentScore != nil && *p.AssessmentScore < 60 {
		score += 20
		rationale = append(rationale, "Assessment score under 60%")
	}

	if p.Status == records.StatusWithdrawn {
		score += 30
		rationale = append(rationale, "Placement withdrawn")
	}

	if p.Status == records.StatusPending {
		score -= 5
		rationale = append(rationale, "Pending placement, risk suppressed")
	}

	for _, factor := range p.RiskFactors {
		for _, rule := range s.factorRules {
			if rule.pattern.MatchString(factor) {
				score += rule.points
				rationale = append(rationale, rule.reason)
			}
		}
		rationale = append(rationale, fmt.Sprintf("Signal: %s", factor))
	}

	if p.SupervisorEmail == "" && p.Status == records.StatusActive {
		score += 5
		rationale = append(rationale, "Missing supervisor contact while active")
	}

	level := LevelLow
	switch {
	case score >= s.config.HighScore:
		level = LevelHigh
	case score >= s.config.MediumScore:
		level = LevelMedium
	}

	outstanding := p.HoursRequired - p.HoursCompleted
	if outstanding < 0 {
		outstanding = 0
	}

	return Decision{
		PlacementID: p.ID,
		Score:       score,
		Level:       level,
		Flagged:     level != LevelLow,
		Rationale:   rationale,
		Inputs: Inputs{
			CompletionRate:       rate,
			AssessmentScore:      p.AssessmentScore,
			RiskFactors:          p.RiskFactors,
			Status:               p.Status,
			HasSupervisorContact: p.SupervisorEmail != "",
			HoursOutstanding:     outstanding,
			Province:             s.ResolveProvince(p.Institution),
			Institution:          institutionOrUnknown(p.Institution),
		},
	}
}

// completionRate is capped at 100 and treated as zero when no hours are
// required.
func completionRate(completed, required int) int {
	if required <= 0 {
		return 0
	}

	rate := int(math.Round(float64(completed) / float64(required) * 100))
	if rate > 100 {
		rate = 100
	}

	return rate
}

func institutionOrUnknown(institution string) string {
	if institution == "" {
		return UnknownInstitution
	}
	return institution
}
