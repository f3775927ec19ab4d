// Package matching assembles the payload handed to the text-generation
// collaborator when a match is requested. It composes the demographic
// normalizer, the bias assessor and the privacy filter, and attaches the
// audit trail inline so the collaborator never sees the raw profile.
package matching

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/fairwork-za/wilmatch/internal/demographics"
	"github.com/fairwork-za/wilmatch/internal/privacy"
	"github.com/fairwork-za/wilmatch/internal/records"
)

// ErrInvalidInput marks caller-level precondition violations. These are
// never retried or silently recovered; a caller bug here could defeat the
// privacy guarantees.
var ErrInvalidInput = errors.New("invalid input")

// FeatureLog records what the pipeline did to the profile: which fields were
// stripped, the normalized demographics, whether blind-match mode was
// enforced, and an ordered note per decision. Every field named in
// RemovedFields is absent from the sanitized payload.
type FeatureLog struct {
	RemovedFields      []string                `json:"removed_fields"`
	Normalized         demographics.Normalized `json:"normalized"`
	BlindMatchEnforced bool                    `json:"blind_match_enforced"`
	Notes              []string                `json:"notes"`
}

// Request is the only object ever handed to the text-generation
// collaborator. The opportunity is untouched; the profile is sanitized.
type Request struct {
	Profile      *privacy.SanitizedProfile `json:"profile"`
	Opportunity  *records.Opportunity      `json:"opportunity"`
	Demographics demographics.Normalized   `json:"demographics"`
	FeatureLog   FeatureLog                `json:"feature_log"`
	Bias         demographics.Assessment   `json:"bias_assessment"`
}

// Options controls per-request behaviour.
type Options struct {
	BlindMatch bool
}

// Builder orchestrates the match-request pipeline.
type Builder struct {
	normalizer *demographics.Normalizer
	assessor   *demographics.Assessor
	filter     *privacy.Filter
	logger     *zap.Logger
	maxLogLen  int
}

const defaultMaxLogLength = 200

// NewBuilder creates a builder. Nil collaborators fall back to defaults; a
// nil logger is replaced with a no-op logger.
func NewBuilder(normalizer *demographics.Normalizer, assessor *demographics.Assessor, filter *privacy.Filter, logger *zap.Logger) *Builder {
	if normalizer == nil {
		normalizer = demographics.NewNormalizer(nil, nil)
	}
	if assessor == nil {
		assessor = demographics.NewAssessor(demographics.AssessorConfig{})
	}
	if filter == nil {
		filter = privacy.NewFilter(normalizer)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Builder{
		normalizer: normalizer,
		assessor:   assessor,
		filter:     filter,
		logger:     logger,
		maxLogLen:  defaultMaxLogLength,
	}
}

// Build normalizes the profile's demographic fields, audits them for
// missingness, strips PII and bundles everything into the request payload.
// A missing profile or opportunity is an ErrInvalidInput violation.
func (b *Builder) Build(profile *records.StudentProfile, opportunity *records.Opportunity, opts Options) (*Request, error) {
	if profile == nil {
		return nil, fmt.Errorf("%w: student profile is required", ErrInvalidInput)
	}
	if opportunity == nil {
		return nil, fmt.Errorf("%w: target opportunity is required", ErrInvalidInput)
	}

	normalized := b.normalizer.Normalize(profile.Location, profile.Languages, profile.Gender)
	bias := b.assessor.Assess(normalized)

	sanitized, removed, notes := b.filter.StripPII(profile, opts.BlindMatch)

	if normalized.Province != "" {
		notes = append(notes, fmt.Sprintf("Province resolved to %s", normalized.Province))
	} else {
		notes = append(notes, "Province not provided")
	}

	if len(normalized.Languages) > 0 {
		notes = append(notes, fmt.Sprintf("Languages normalized: %s", strings.Join(normalized.Languages, ", ")))
	} else {
		notes = append(notes, "No languages provided")
	}

	b.logger.Debug("match request assembled",
		zap.String("opportunity_id", opportunity.ID),
		zap.Bool("blind_match", opts.BlindMatch),
		zap.String("bias_risk", bias.Risk),
		zap.Strings("removed_fields", removed),
	)

	return &Request{
		Profile:      sanitized,
		Opportunity:  opportunity,
		Demographics: normalized,
		FeatureLog: FeatureLog{
			RemovedFields:      removed,
			Normalized:         normalized,
			BlindMatchEnforced: opts.BlindMatch,
			Notes:              notes,
		},
		Bias: bias,
	}, nil
}
