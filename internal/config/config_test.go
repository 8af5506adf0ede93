package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roster-reconciler/internal/reconcile"
)

func TestParse_Defaults(t *testing.T) {
	f, err := Parse([]byte(""))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, reconcile.DefaultConfig(), f.Reconcile)
	assert.Equal(t, "auto", f.Log.Format)
	require.NoError(t, f.Validate())
}

func TestParse_PartialOverride(t *testing.T) {
	yamlContent := `
version: "1"
reconcile:
  ambiguity_margin: 3
  evaluator:
    fuzzy_max_dissimilarity: 0.3
  weights:
    reversed-order-translit: 80
log:
  level: debug
  format: json
`
	f, err := Parse([]byte(yamlContent))
	require.NoError(t, err)
	require.NoError(t, f.Validate())

	def := reconcile.DefaultConfig()

	assert.InDelta(t, 3, f.Reconcile.AmbiguityMargin, 1e-9)
	assert.InDelta(t, 0.3, f.Reconcile.Evaluator.FuzzyMaxDissimilarity, 1e-9)
	assert.Equal(t, def.Evaluator.TranslitQuality, f.Reconcile.Evaluator.TranslitQuality)
	assert.Equal(t, def.AutoMatchMinQuality, f.Reconcile.AutoMatchMinQuality)
	assert.Equal(t, def.Combined, f.Reconcile.Combined)
	assert.Equal(t, map[string]float64{"reversed-order-translit": 80}, f.Reconcile.Weights)
	assert.Equal(t, "debug", f.Log.Level)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("reconcile: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *File)
		wantErr []string
	}{
		{
			name:   "defaults",
			mutate: func(*File) {},
		},
		{
			name: "negative margin and gap",
			mutate: func(f *File) {
				f.Reconcile.AmbiguityMargin = -1
				f.Reconcile.AutoMatchMinGap = -2
			},
			wantErr: []string{"ambiguity_margin", "auto_match_min_gap"},
		},
		{
			name: "unit interval",
			mutate: func(f *File) {
				f.Reconcile.Evaluator.FuzzyQuality = 1.5
				f.Reconcile.CombinedAutoMinQuality = 85
			},
			wantErr: []string{"evaluator.fuzzy_quality", "combined_auto_min_quality"},
		},
		{
			name: "caches",
			mutate: func(f *File) {
				f.Reconcile.CacheSize = 0
				f.Reconcile.VariantCap = 0
			},
			wantErr: []string{"cache_size", "variant_cap"},
		},
		{
			name: "weights",
			mutate: func(f *File) {
				f.Reconcile.Weights = map[string]float64{"best-guess": 10, "exact-match": 120, "manual": 0}
			},
			wantErr: []string{`unknown match type "best-guess"`, "weights.exact-match", "weights.manual must be within (0, 100]"},
		},
		{
			name: "log",
			mutate: func(f *File) {
				f.Log.Level = "loud"
			},
			wantErr: []string{"log:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Default()
			tt.mutate(f)

			err := f.Validate()
			if len(tt.wantErr) == 0 {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			require.ErrorIs(t, err, ErrInvalidConfig)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	variants := filepath.Join(dir, "variants.yaml")
	require.NoError(t, os.WriteFile(variants, []byte("Тарас: [Тарасюк]\nЗеновій: [Зеник]\n"), 0o644))

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("variants_file: variants.yaml\n"), 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, variants, f.VariantsFile)

	dict, err := f.Dictionary()
	require.NoError(t, err)
	assert.True(t, dict.Related("Зеник", "Зеновій"))
	assert.True(t, dict.Related("Тарасюк", "Тарасик"))
	assert.True(t, dict.Related("Саша", "Олександр"), "built-in entries are kept")
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("reconcile:\n  cache_size: -1\n"), 0o644))

	_, err = LoadFile(bad)
	require.ErrorIs(t, err, ErrInvalidConfig)

	f := Default()
	f.VariantsFile = filepath.Join(dir, "nope.yaml")
	_, err = f.Dictionary()
	require.Error(t, err)
}

func TestWriteFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")

	f := Default()
	f.Reconcile.RecommendationLimit = 3
	require.NoError(t, WriteFile(f, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Reconcile.RecommendationLimit)
}
