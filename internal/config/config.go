package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"roster-reconciler/internal/logging"
	"roster-reconciler/internal/match"
	"roster-reconciler/internal/names"
	"roster-reconciler/internal/reconcile"
)

// ErrInvalidConfig is wrapped by every validation problem.
var ErrInvalidConfig = errors.New("invalid config")

// File is the configuration file.
type File struct {
	Version   string           `yaml:"version"`
	Reconcile reconcile.Config `yaml:"reconcile"`
	// VariantsFile extends the built-in name variant dictionary. A relative
	// path is resolved against the configuration file's directory.
	VariantsFile string         `yaml:"variants_file,omitempty"`
	Log          logging.Config `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() *File {
	f := &File{
		Reconcile: reconcile.DefaultConfig(),
		Log:       logging.DefaultConfig(),
	}
	applyDefaults(f)

	return f
}

// LoadFile loads, parses, and validates a configuration file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if f.VariantsFile != "" && !filepath.IsAbs(f.VariantsFile) {
		f.VariantsFile = filepath.Join(filepath.Dir(path), f.VariantsFile)
	}

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	return f, nil
}

// Parse parses YAML data. Keys absent from data keep their default values.
func Parse(data []byte) (*File, error) {
	f := Default()

	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(f)

	return f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	if f.Log.Level == "" {
		f.Log.Level = logging.DefaultConfig().Level
	}

	if f.Log.Format == "" {
		f.Log.Format = "auto"
	}
}

// Validate checks every field and reports all problems at once.
func (f *File) Validate() error {
	var errs []error

	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	rc := f.Reconcile

	if rc.AmbiguityMargin < 0 {
		invalid("reconcile.ambiguity_margin must not be negative, got %v", rc.AmbiguityMargin)
	}
	if !inRange(rc.AutoMatchMinQuality, 0, 100) {
		invalid("reconcile.auto_match_min_quality must be within [0, 100], got %v", rc.AutoMatchMinQuality)
	}
	if rc.AutoMatchMinGap < 0 {
		invalid("reconcile.auto_match_min_gap must not be negative, got %v", rc.AutoMatchMinGap)
	}
	if !inRange(rc.CombinedAutoMinQuality, 0, 1) {
		invalid("reconcile.combined_auto_min_quality must be within [0, 1], got %v", rc.CombinedAutoMinQuality)
	}
	if rc.RecommendationLimit < 0 {
		invalid("reconcile.recommendation_limit must not be negative, got %d", rc.RecommendationLimit)
	}
	if !inRange(rc.RecommendationMinQuality, 0, 100) {
		invalid("reconcile.recommendation_min_quality must be within [0, 100], got %v", rc.RecommendationMinQuality)
	}
	if rc.CacheSize <= 0 {
		invalid("reconcile.cache_size must be positive, got %d", rc.CacheSize)
	}
	if rc.VariantCap <= 0 {
		invalid("reconcile.variant_cap must be positive, got %d", rc.VariantCap)
	}

	unit := map[string]float64{
		"evaluator.translit_max_dissimilarity": rc.Evaluator.TranslitMaxDissimilarity,
		"evaluator.fuzzy_max_dissimilarity":    rc.Evaluator.FuzzyMaxDissimilarity,
		"evaluator.translit_quality":           rc.Evaluator.TranslitQuality,
		"evaluator.variant_quality":            rc.Evaluator.VariantQuality,
		"evaluator.fuzzy_quality":              rc.Evaluator.FuzzyQuality,
		"combined.min_quality":                 rc.Combined.MinQuality,
	}
	for _, key := range sortedKeys(unit) {
		if v := unit[key]; !inRange(v, 0, 1) {
			invalid("reconcile.%s must be within [0, 1], got %v", key, v)
		}
	}

	if rc.Combined.MinLength < 1 {
		invalid("reconcile.combined.min_length must be positive, got %d", rc.Combined.MinLength)
	}
	if rc.Combined.MinPieceLength < 1 {
		invalid("reconcile.combined.min_piece_length must be positive, got %d", rc.Combined.MinPieceLength)
	}

	for _, key := range sortedKeys(rc.Weights) {
		t, err := match.ParseMatchType(key)
		if err != nil || !t.Valid() {
			invalid("reconcile.weights: unknown match type %q", key)
			continue
		}
		// A zero weight would let a matched record carry quality 0.
		if v := rc.Weights[key]; v <= 0 || v > 100 {
			invalid("reconcile.weights.%s must be within (0, 100], got %v", key, v)
		}
	}

	if err := f.Log.Validate(); err != nil {
		invalid("log: %v", err)
	}

	return errors.Join(errs...)
}

// Dictionary returns the name variant dictionary: the built-in one,
// extended with VariantsFile when set.
func (f *File) Dictionary() (*names.Dictionary, error) {
	if f.VariantsFile == "" {
		return names.DefaultDictionary(), nil
	}

	data, err := os.ReadFile(f.VariantsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read variants file %s: %w", f.VariantsFile, err)
	}

	extra, err := names.ParseDictionary(data)
	if err != nil {
		return nil, fmt.Errorf("variants file %s: %w", f.VariantsFile, err)
	}

	dict := names.DefaultDictionary().Clone()
	dict.Merge(extra)

	return dict, nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

type number interface {
	~int | ~float64
}

// inRange reports whether lo <= v <= hi.
func inRange[T number](v, lo, hi T) bool {
	return lo <= v && v <= hi
}
