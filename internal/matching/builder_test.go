package matching

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/fairwork-za/wilmatch/internal/demographics"
	"github.com/fairwork-za/wilmatch/internal/records"
)

func sampleProfile() *records.StudentProfile {
	return &records.StudentProfile{
		SubjectID:     "stu-042",
		NationalID:    "0203057123456",
		DateOfBirth:   "2002-03-05",
		Race:          "Coloured",
		Nationality:   "South African",
		FieldOfStudy:  "Analytical Chemistry",
		Qualification: "Diploma",
		Institution:   "Cape Peninsula University of Technology",
		Location:      "wc",
		Languages:     "afrikaans, english",
		Gender:        "Male",
		Skills:        []string{"Lab work", "Reporting"},
		Headline:      "Third-year chemistry student",
		YearOfStudy:   3,
	}
}

func sampleOpportunity() *records.Opportunity {
	return &records.Opportunity{
		ID:          "opp-7",
		Title:       "Chemistry Intern",
		Company:     "AgriLab",
		Industry:    "Agriculture",
		Location:    "Stellenbosch",
		Description: "Assist with soil sample analysis.",
	}
}

func TestBuildRequiresInputs(t *testing.T) {
	t.Parallel()

	builder := NewBuilder(nil, nil, nil, zap.NewNop())

	if _, err := builder.Build(nil, sampleOpportunity(), Options{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing profile, got %v", err)
	}

	if _, err := builder.Build(sampleProfile(), nil, Options{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing opportunity, got %v", err)
	}
}

func TestBuildAssemblesRequest(t *testing.T) {
	t.Parallel()

	builder := NewBuilder(nil, nil, nil, zap.NewNop())

	request, err := builder.Build(sampleProfile(), sampleOpportunity(), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if request.Demographics.Province != "Western Cape" {
		t.Fatalf("expected normalized province, got %q", request.Demographics.Province)
	}

	if !reflect.DeepEqual(request.Demographics.Languages, []string{"Afrikaans", "English"}) {
		t.Fatalf("unexpected languages: %v", request.Demographics.Languages)
	}

	if request.Demographics.GenderProxy != "male" {
		t.Fatalf("expected lower-cased gender proxy, got %q", request.Demographics.GenderProxy)
	}

	if request.Bias.Risk != demographics.RiskLow {
		t.Fatalf("expected low bias risk for complete demographics, got %q", request.Bias.Risk)
	}

	if request.Opportunity.Title != "Chemistry Intern" {
		t.Fatalf("opportunity must pass through untouched, got %+v", request.Opportunity)
	}

	if request.FeatureLog.BlindMatchEnforced {
		t.Fatalf("blind match must be off by default")
	}
}

func TestBuildNotesOrder(t *testing.T) {
	t.Parallel()

	builder := NewBuilder(nil, nil, nil, zap.NewNop())

	request, err := builder.Build(sampleProfile(), sampleOpportunity(), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	notes := request.FeatureLog.Notes
	if len(notes) != 3 {
		t.Fatalf("expected 3 notes, got %v", notes)
	}

	if notes[0] != "Removed direct identifiers from profile" {
		t.Fatalf("expected removal note first, got %q", notes[0])
	}

	if notes[1] != "Province resolved to Western Cape" {
		t.Fatalf("expected province note second, got %q", notes[1])
	}

	if notes[2] != "Languages normalized: Afrikaans, English" {
		t.Fatalf("expected language note third, got %q", notes[2])
	}
}

func TestBuildNotesForMissingDemographics(t *testing.T) {
	t.Parallel()

	builder := NewBuilder(nil, nil, nil, zap.NewNop())

	profile := sampleProfile()
	profile.Location = ""
	profile.Languages = ""
	profile.Gender = ""

	request, err := builder.Build(profile, sampleOpportunity(), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if request.Bias.Risk != demographics.RiskHigh {
		t.Fatalf("expected high bias risk, got %q", request.Bias.Risk)
	}

	notes := request.FeatureLog.Notes
	var provinceNote, languageNote bool
	for _, note := range notes {
		if note == "Province not provided" {
			provinceNote = true
		}
		if note == "No languages provided" {
			languageNote = true
		}
	}
	if !provinceNote || !languageNote {
		t.Fatalf("expected missing-demographic notes, got %v", notes)
	}
}

func TestBuildPayloadNeverContainsPII(t *testing.T) {
	t.Parallel()

	builder := NewBuilder(nil, nil, nil, zap.NewNop())

	profile := sampleProfile()

	request, err := builder.Build(profile, sampleOpportunity(), Options{BlindMatch: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	payload, err := json.Marshal(request)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	serialized := string(payload)
	for _, secret := range []string{profile.NationalID, profile.SubjectID, profile.DateOfBirth, profile.Race} {
		if strings.Contains(serialized, secret) {
			t.Fatalf("request payload leaked %q", secret)
		}
	}

	for _, field := range request.FeatureLog.RemovedFields {
		if strings.Contains(serialized, `"`+field+`":`) {
			t.Fatalf("request payload contains removed key %q", field)
		}
	}
}

func TestBuildBlindMatch(t *testing.T) {
	t.Parallel()

	builder := NewBuilder(nil, nil, nil, zap.NewNop())

	request, err := builder.Build(sampleProfile(), sampleOpportunity(), Options{BlindMatch: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !request.FeatureLog.BlindMatchEnforced {
		t.Fatalf("expected blind match recorded in feature log")
	}

	if request.Profile.Headline != "Blind profile enabled" {
		t.Fatalf("expected blind headline, got %q", request.Profile.Headline)
	}

	if request.Profile.Location != "Western Cape" {
		t.Fatalf("expected coarsened location, got %q", request.Profile.Location)
	}
}
