package placement

import (
	"context"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/fairwork-za/wilmatch/internal/records"
)

// FairnessMetric is the flag-rate summary for one cohort bucket.
type FairnessMetric struct {
	Flagged  int `json:"flagged"`
	Total    int `json:"total"`
	FlagRate int `json:"flag_rate"`
}

// AuditResult bundles the scored placements with the fairness buckets
// derived from them. Bucket membership comes from the province and
// institution resolved during scoring, never recomputed.
type AuditResult struct {
	Decisions     []Decision                 `json:"decisions"`
	ByProvince    map[string]*FairnessMetric `json:"by_province"`
	ByInstitution map[string]*FairnessMetric `json:"by_institution"`
}

// EvaluateWithAudit scores every placement and buckets the decisions by
// resolved province and institution. Every input appears in exactly one
// bucket per dimension; none are dropped, merged or double-counted.
func (s *Scorer) EvaluateWithAudit(placements []*records.Placement) *AuditResult {
	decisions := make([]Decision, len(placements))
	for i, p := range placements {
		decisions[i] = s.Evaluate(p)
	}

	return aggregate(decisions)
}

// EvaluateWithAuditConcurrent shards the scoring pass across workers and
// merges bucket totals afterwards. Scoring has no cross-record dependency,
// so the result is identical to the sequential form. workers <= 0 uses
// GOMAXPROCS.
func (s *Scorer) EvaluateWithAuditConcurrent(ctx context.Context, placements []*records.Placement, workers int) (*AuditResult, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	decisions := make([]Decision, len(placements))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for i, p := range placements {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			decisions[i] = s.Evaluate(p)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return aggregate(decisions), nil
}

func aggregate(decisions []Decision) *AuditResult {
	result := &AuditResult{
		Decisions:     decisions,
		ByProvince:    make(map[string]*FairnessMetric),
		ByInstitution: make(map[string]*FairnessMetric),
	}

	for _, decision := range decisions {
		tally(result.ByProvince, decision.Inputs.Province, decision.Flagged)
		tally(result.ByInstitution, decision.Inputs.Institution, decision.Flagged)
	}

	for _, metric := range result.ByProvince {
		metric.FlagRate = flagRate(metric.Flagged, metric.Total)
	}
	for _, metric := range result.ByInstitution {
		metric.FlagRate = flagRate(metric.Flagged, metric.Total)
	}

	return result
}

func tally(buckets map[string]*FairnessMetric, key string, flagged bool) {
	metric, ok := buckets[key]
	if !ok {
		metric = &FairnessMetric{}
		buckets[key] = metric
	}

	metric.Total++
	if flagged {
		metric.Flagged++
	}
}

func flagRate(flagged, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(flagged) / float64(total) * 100))
}
