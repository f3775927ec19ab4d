package records

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DecodePlacements converts loosely-typed rows (store join results, JSON
// fixture items) into typed placement records. Unknown keys are ignored,
// numeric types are coerced.
func DecodePlacements(items []map[string]any) ([]*Placement, error) {
	var placements []*Placement

	cfg := &mapstructure.DecoderConfig{
		Result:           &placements,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, fmt.Errorf("create placement decoder: %w", err)
	}

	if err := decoder.Decode(items); err != nil {
		return nil, fmt.Errorf("decode placements: %w", err)
	}

	return placements, nil
}

// DecodeProfile converts a loosely-typed row into a student profile.
func DecodeProfile(item map[string]any) (*StudentProfile, error) {
	var profile StudentProfile

	cfg := &mapstructure.DecoderConfig{
		Result:           &profile,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, fmt.Errorf("create profile decoder: %w", err)
	}

	if err := decoder.Decode(item); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}

	return &profile, nil
}

// DecodeOpportunity converts a loosely-typed row into an opportunity.
func DecodeOpportunity(item map[string]any) (*Opportunity, error) {
	var opportunity Opportunity

	cfg := &mapstructure.DecoderConfig{
		Result:           &opportunity,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, fmt.Errorf("create opportunity decoder: %w", err)
	}

	if err := decoder.Decode(item); err != nil {
		return nil, fmt.Errorf("decode opportunity: %w", err)
	}

	return &opportunity, nil
}
