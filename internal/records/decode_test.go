package records

import (
	"strings"
	"testing"
)

func TestDecodePlacements(t *testing.T) {
	t.Parallel()

	// JSON-decoded fixtures carry float64 numerics and unknown keys.
	items := []map[string]any{
		{
			"id":               "plc-1",
			"student_id":       "stu-9",
			"institution":      "University of Pretoria",
			"status":           "active",
			"hours_required":   float64(480),
			"hours_completed":  float64(120),
			"assessment_score": float64(55),
			"risk_factors":     []any{"Attendance below 70%"},
			"legacy_column":    "ignored",
		},
		{
			"id":     "plc-2",
			"status": "pending",
		},
	}

	placements, err := DecodePlacements(items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(placements) != 2 {
		t.Fatalf("expected 2 placements, got %d", len(placements))
	}

	first := placements[0]
	if first.HoursRequired != 480 || first.HoursCompleted != 120 {
		t.Fatalf("numeric coercion failed: %+v", first)
	}

	if first.AssessmentScore == nil || *first.AssessmentScore != 55 {
		t.Fatalf("expected assessment score pointer, got %v", first.AssessmentScore)
	}

	if len(first.RiskFactors) != 1 || first.RiskFactors[0] != "Attendance below 70%" {
		t.Fatalf("unexpected risk factors: %v", first.RiskFactors)
	}

	second := placements[1]
	if second.AssessmentScore != nil {
		t.Fatalf("absent score must decode to nil, got %v", second.AssessmentScore)
	}

	if second.HoursRequired != 0 {
		t.Fatalf("absent hours must decode to zero, got %d", second.HoursRequired)
	}
}

func TestDecodeProfile(t *testing.T) {
	t.Parallel()

	profile, err := DecodeProfile(map[string]any{
		"subject_id":    "stu-1",
		"institution":   "Rhodes University",
		"languages":     "xhosa, english",
		"year_of_study": "2",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profile.Institution != "Rhodes University" {
		t.Fatalf("unexpected institution: %q", profile.Institution)
	}

	// Weak typing coerces string numerics.
	if profile.YearOfStudy != 2 {
		t.Fatalf("expected year of study 2, got %d", profile.YearOfStudy)
	}
}

func TestPlacementValidate(t *testing.T) {
	t.Parallel()

	valid := &Placement{ID: "plc-1", Status: StatusActive, HoursRequired: 480}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Status is optional but must come from the lifecycle vocabulary.
	invalid := &Placement{ID: "plc-2", Status: "paused"}
	err := invalid.Validate()
	if err == nil {
		t.Fatalf("expected error for unknown status")
	}
	if !strings.Contains(err.Error(), "plc-2") {
		t.Fatalf("error must name the placement, got %v", err)
	}

	score := 120.0
	outOfRange := &Placement{ID: "plc-3", AssessmentScore: &score}
	if err := outOfRange.Validate(); err == nil {
		t.Fatalf("expected error for assessment score above 100")
	}

	negative := &Placement{ID: "plc-4", HoursCompleted: -5}
	if err := negative.Validate(); err == nil {
		t.Fatalf("expected error for negative hours")
	}
}

func TestOpportunityValidate(t *testing.T) {
	t.Parallel()

	valid := &Opportunity{ID: "opp-1", Title: "Software Intern"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	missingTitle := &Opportunity{ID: "opp-2"}
	if err := missingTitle.Validate(); err == nil {
		t.Fatalf("expected error for missing title")
	}
}
