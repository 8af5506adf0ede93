package reconcile

import (
	"roster-reconciler/internal/match"
	"roster-reconciler/internal/memo"
	"roster-reconciler/internal/names"
	"roster-reconciler/internal/translit"
)

// Config holds the thresholds of a reconciliation run. Qualities are on the
// 0-100 scale unless noted.
type Config struct {
	// AmbiguityMargin marks name-parts results as ambiguous when the top two
	// candidates are closer than this.
	AmbiguityMargin float64 `yaml:"ambiguity_margin"`
	// AutoMatchMinQuality is the minimum quality for the auto-matcher's
	// general path.
	AutoMatchMinQuality float64 `yaml:"auto_match_min_quality"`
	// AutoMatchMinGap is the minimum lead over the runner-up for the
	// auto-matcher's general path.
	AutoMatchMinGap float64 `yaml:"auto_match_min_gap"`
	// CombinedAutoMinQuality is the exclusive floor, in [0, 1], for accepting
	// a concatenated-name candidate during auto-matching.
	CombinedAutoMinQuality float64 `yaml:"combined_auto_min_quality"`
	// RecommendationLimit caps the alternatives offered per unresolved name.
	RecommendationLimit int `yaml:"recommendation_limit"`
	// RecommendationMinQuality drops freshly computed recommendations below it.
	RecommendationMinQuality float64 `yaml:"recommendation_min_quality"`
	// CacheSize caps every memo table.
	CacheSize int `yaml:"cache_size"`
	// VariantCap caps transliteration variants per name part.
	VariantCap int `yaml:"variant_cap"`

	Evaluator names.EvaluatorConfig `yaml:"evaluator"`
	Combined  names.CombinedConfig  `yaml:"combined"`

	// Weights overrides entries of the match type weight table, keyed by the
	// match type's text form (for example "reversed-order-translit").
	Weights map[string]float64 `yaml:"weights,omitempty"`
}

// DefaultConfig returns the default reconciliation configuration.
func DefaultConfig() Config {
	return Config{
		AmbiguityMargin:          match.DefaultAmbiguityMargin,
		AutoMatchMinQuality:      match.DefaultAutoMatchMinQuality,
		AutoMatchMinGap:          match.DefaultAutoMatchMinGap,
		CombinedAutoMinQuality:   0.85,
		RecommendationLimit:      5,
		RecommendationMinQuality: 50,
		CacheSize:                memo.DefaultCap,
		VariantCap:               translit.DefaultVariantCap,
		Evaluator:                names.DefaultEvaluatorConfig(),
		Combined:                 names.DefaultCombinedConfig(),
	}
}

// MatchWeights returns the weight table with the configured overrides
// applied. Unknown keys and weights outside (0, 100] are ignored;
// config.Validate rejects them earlier.
func (c Config) MatchWeights() match.Weights {
	w := match.DefaultWeights()

	for key, value := range c.Weights {
		t, err := match.ParseMatchType(key)
		if err != nil || value <= 0 || value > 100 {
			continue
		}
		w[t] = value
	}

	return w
}
