package demographics

// Bias risk tiers.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Flag names for missing demographic dimensions.
const (
	FlagProvinceMissing    = "province_missing"
	FlagLanguageMissing    = "language_missing"
	FlagGenderProxyMissing = "gender_proxy_missing"
)

// Assessment is the result of a missingness audit over normalized
// demographics. It is diagnostic only: surfaced for compliance review and
// never fed back into a match score, so incomplete demographic data cannot
// itself become a penalized signal.
type Assessment struct {
	Risk       string   `json:"risk"`
	Dimensions []string `json:"dimensions"`
	Flags      []string `json:"flags"`
}

// AssessorConfig carries the flag-count thresholds for the medium and high
// tiers. The default 1/2 split is hand-tuned with no documented derivation;
// deployments may recalibrate it.
type AssessorConfig struct {
	MediumFlagCount int `mapstructure:"medium-flag-count"`
	HighFlagCount   int `mapstructure:"high-flag-count"`
}

// Assessor inspects normalized demographics for missing dimensions and
// assigns a risk tier monotonic in the number of flags.
type Assessor struct {
	config AssessorConfig
}

// NewAssessor creates an assessor. Zero-valued config fields fall back to
// the defaults (1 flag for medium, 2 for high).
func NewAssessor(config AssessorConfig) *Assessor {
	if config.MediumFlagCount <= 0 {
		config.MediumFlagCount = 1
	}
	if config.HighFlagCount <= config.MediumFlagCount {
		config.HighFlagCount = config.MediumFlagCount + 1
	}

	return &Assessor{config: config}
}

// Assess flags each missing dimension and derives the risk tier from the
// flag count: below medium threshold is low, below high threshold is
// medium, otherwise high.
func (a *Assessor) Assess(demographics Normalized) Assessment {
	flags := []string{}

	if demographics.Province == "" {
		flags = append(flags, FlagProvinceMissing)
	}
	if len(demographics.Languages) == 0 {
		flags = append(flags, FlagLanguageMissing)
	}
	if demographics.GenderProxy == "" {
		flags = append(flags, FlagGenderProxyMissing)
	}

	risk := RiskLow
	switch {
	case len(flags) >= a.config.HighFlagCount:
		risk = RiskHigh
	case len(flags) >= a.config.MediumFlagCount:
		risk = RiskMedium
	}

	return Assessment{
		Risk:       risk,
		Dimensions: []string{"province", "languages", "gender_proxy"},
		Flags:      flags,
	}
}
