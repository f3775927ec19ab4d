package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fairwork-za/wilmatch/internal/matching"
	"github.com/fairwork-za/wilmatch/internal/placement"
)

// SaveMatchAudit persists the feature log and bias assessment of a built
// match request, keyed by subject and opportunity identifiers.
func (s *Store) SaveMatchAudit(ctx context.Context, subjectID, opportunityID string, request *matching.Request) error {
	featureLog, err := json.Marshal(request.FeatureLog)
	if err != nil {
		return fmt.Errorf("marshal feature log: %w", err)
	}

	bias, err := json.Marshal(request.Bias)
	if err != nil {
		return fmt.Errorf("marshal bias assessment: %w", err)
	}

	id := uuid.New()
	_, err = s.pool.Exec(ctx,
		`INSERT INTO match_audits (id, subject_id, opportunity_id, province, languages, gender_proxy,
		                           feature_log, bias_assessment, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())`,
		id, subjectID, opportunityID,
		request.Demographics.Province, request.Demographics.Languages, request.Demographics.GenderProxy,
		featureLog, bias,
	)
	if err != nil {
		return fmt.Errorf("save match audit: %w", err)
	}

	s.logger.Debug("match audit saved",
		zap.String("audit_id", id.String()),
		zap.String("opportunity_id", opportunityID),
	)

	return nil
}

// SaveRiskDecisions persists scored placement decisions from an audit run.
func (s *Store) SaveRiskDecisions(ctx context.Context, decisions []placement.Decision) error {
	for _, decision := range decisions {
		inputs, err := json.Marshal(decision.Inputs)
		if err != nil {
			return fmt.Errorf("marshal decision inputs: %w", err)
		}

		_, err = s.pool.Exec(ctx,
			`INSERT INTO risk_decisions (id, placement_id, score, level, flagged, rationale, inputs, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())`,
			uuid.New(), decision.PlacementID, decision.Score, decision.Level,
			decision.Flagged, decision.Rationale, inputs,
		)
		if err != nil {
			return fmt.Errorf("save risk decision for placement %q: %w", decision.PlacementID, err)
		}
	}

	s.logger.Debug("risk decisions saved", zap.Int("count", len(decisions)))

	return nil
}
