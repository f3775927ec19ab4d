package demographics

import (
	"reflect"
	"testing"
)

func TestAssessRiskTiers(t *testing.T) {
	t.Parallel()

	assessor := NewAssessor(AssessorConfig{})

	tests := []struct {
		name         string
		demographics Normalized
		expectRisk   string
		expectFlags  []string
	}{
		{
			name: "all dimensions present",
			demographics: Normalized{
				Province:    "Gauteng",
				Languages:   []string{"English"},
				GenderProxy: "female",
			},
			expectRisk:  RiskLow,
			expectFlags: []string{},
		},
		{
			name: "one dimension missing",
			demographics: Normalized{
				Languages:   []string{"English"},
				GenderProxy: "male",
			},
			expectRisk:  RiskMedium,
			expectFlags: []string{FlagProvinceMissing},
		},
		{
			name: "province and language missing",
			demographics: Normalized{
				GenderProxy: "female",
			},
			expectRisk:  RiskHigh,
			expectFlags: []string{FlagProvinceMissing, FlagLanguageMissing},
		},
		{
			name:         "everything missing",
			demographics: Normalized{},
			expectRisk:   RiskHigh,
			expectFlags:  []string{FlagProvinceMissing, FlagLanguageMissing, FlagGenderProxyMissing},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assessment := assessor.Assess(tt.demographics)

			if assessment.Risk != tt.expectRisk {
				t.Fatalf("expected risk %q, got %q", tt.expectRisk, assessment.Risk)
			}

			if !reflect.DeepEqual(assessment.Flags, tt.expectFlags) {
				t.Fatalf("expected flags %v, got %v", tt.expectFlags, assessment.Flags)
			}

			if len(assessment.Dimensions) != 3 {
				t.Fatalf("expected 3 dimensions, got %v", assessment.Dimensions)
			}
		})
	}
}

func TestAssessRiskMonotonicInFlagCount(t *testing.T) {
	t.Parallel()

	assessor := NewAssessor(AssessorConfig{})

	rank := map[string]int{RiskLow: 0, RiskMedium: 1, RiskHigh: 2}

	inputs := []Normalized{
		{Province: "Gauteng", Languages: []string{"English"}, GenderProxy: "male"},
		{Province: "Gauteng", Languages: []string{"English"}},
		{Province: "Gauteng"},
		{},
	}

	previous := -1
	for _, input := range inputs {
		assessment := assessor.Assess(input)
		current := rank[assessment.Risk]
		if current < previous {
			t.Fatalf("risk tier decreased with more flags: %v", assessment)
		}
		previous = current
	}
}

func TestAssessorCustomThresholds(t *testing.T) {
	t.Parallel()

	assessor := NewAssessor(AssessorConfig{MediumFlagCount: 2, HighFlagCount: 3})

	assessment := assessor.Assess(Normalized{GenderProxy: "female"})
	if assessment.Risk != RiskMedium {
		t.Fatalf("expected medium with raised thresholds, got %q", assessment.Risk)
	}
}
