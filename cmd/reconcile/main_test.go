package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roster-reconciler/internal/config"
)

const testSession = `
display_names: ["Taras Shevchenko", "margaritakoval", "Олександр", "tsh"]
aliases: {"tsh": "Мельник Андрій"}
roster:
  - {id: "2", surname: "Шевченко", firstname: "Тарас"}
  - {id: "3", surname: "Коваль", firstname: "Маргарита"}
  - {id: "4", surname: "Коваль", firstname: "Олександр"}
  - {id: "5", surname: "Петренко", firstname: "Олександр"}
  - {id: "7", surname: "Мельник", firstname: "Андрій"}
`

type jsonResult struct {
	MatchedNames    map[string]string `json:"matched_names"`
	UnresolvedNames []string          `json:"unresolved_names"`
}

func writeSession(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testSession), 0o644))

	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := newRootCommand(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestRun_JSON(t *testing.T) {
	path := writeSession(t)

	out, _, err := execute(t, "run", "--session", path, "-o", "json")
	require.NoError(t, err)

	var res jsonResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))

	assert.Equal(t, "2", res.MatchedNames["Taras Shevchenko"])
	assert.Equal(t, "3", res.MatchedNames["margaritakoval"])
	assert.Equal(t, "7", res.MatchedNames["tsh"])
	assert.Equal(t, "unresolved", res.MatchedNames["Олександр"])
	assert.Equal(t, []string{"Олександр"}, res.UnresolvedNames)
}

func TestRun_Table(t *testing.T) {
	path := writeSession(t)

	out, _, err := execute(t, "run", "--session", path, "-o", "table")
	require.NoError(t, err)

	assert.Contains(t, out, "Taras Shevchenko")
	assert.Contains(t, out, "reversed-order-translit")
	assert.Contains(t, out, "Alternatives:")
	assert.Contains(t, out, "Петренко Олександр")
	assert.Contains(t, out, "ambiguous_match")
}

func TestRun_YAMLAndDump(t *testing.T) {
	path := writeSession(t)

	out, errOut, err := execute(t, "run", "--session", path, "-o", "yaml", "--dump")
	require.NoError(t, err)

	assert.Contains(t, out, "matched_names:")
	assert.Contains(t, out, "type: split-name")
	assert.Contains(t, errOut, "MatchInfo")
}

func TestRun_PickAndSave(t *testing.T) {
	path := writeSession(t)

	out, _, err := execute(t, "run", "--session", path, "-o", "json", "--pick", "Олександр=2", "--save")
	require.NoError(t, err)

	var res jsonResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "5", res.MatchedNames["Олександр"])
	assert.Empty(t, res.UnresolvedNames)

	saved, err := config.LoadSession(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Олександр": "5"}, saved.Manual)
}

func TestRun_Assign(t *testing.T) {
	path := writeSession(t)

	out, _, err := execute(t, "run", "--session", path, "-o", "json", "--assign", "Олександр=Коваль Олександр")
	require.NoError(t, err)

	var res jsonResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "4", res.MatchedNames["Олександр"])
}

func TestRun_Strict(t *testing.T) {
	path := writeSession(t)

	out, _, err := execute(t, "run", "--session", path, "-o", "table", "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strict mode")
	assert.Contains(t, err.Error(), `"Олександр": [unresolved_name]`)
	assert.Contains(t, out, "error: ")

	_, _, err = execute(t, "run", "--session", path, "-o", "json", "--strict", "--pick", "Олександр=1")
	require.NoError(t, err)
}

func TestRun_Errors(t *testing.T) {
	path := writeSession(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing session flag", []string{"run"}, "session"},
		{"missing session file", []string{"run", "--session", filepath.Join(t.TempDir(), "none.yaml")}, "failed to read session file"},
		{"bad format", []string{"run", "--session", path, "-o", "xml"}, "invalid format"},
		{"bad pick", []string{"run", "--session", path, "--pick", "Олександр=9"}, "has no alternative 9"},
		{"bad assign", []string{"run", "--session", path, "--assign", "Олександр=404"}, "no single roster entry"},
		{"bad choice", []string{"run", "--session", path, "--assign", "Олександр"}, "expected NAME=VALUE"},
		{"bad log level", []string{"--log-level", "loud", "run", "--session", path}, "unknown log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRun_ConfigFile(t *testing.T) {
	path := writeSession(t)

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("reconcile:\n  weights:\n    reversed-order-translit: 86\n"), 0o644))

	out, _, err := execute(t, "run", "--config", cfgPath, "--session", path, "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "quality: 86")
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()

	src := filepath.Join(dir, "src.yaml")
	require.NoError(t, os.WriteFile(src, []byte("reconcile:\n  weights:\n    nickname: 93\n"), 0o644))

	dst := filepath.Join(dir, "reconcile.yaml")
	_, _, err := execute(t, "--config", src, "config", "init", dst)
	require.NoError(t, err)

	written, err := config.LoadFile(dst)
	require.NoError(t, err)
	assert.InDelta(t, 93, written.Reconcile.Weights["nickname"], 0.001)
	assert.Equal(t, config.Default().Reconcile.RecommendationLimit, written.Reconcile.RecommendationLimit)

	_, _, err = execute(t, "config", "init", dst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = execute(t, "config", "init", dst, "--force")
	require.NoError(t, err)

	written, err = config.LoadFile(dst)
	require.NoError(t, err)
	assert.Empty(t, written.Reconcile.Weights)

	out, _, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "reconcile:")
	assert.Contains(t, out, "recommendation_limit: 5")
}

func TestSuggest(t *testing.T) {
	path := writeSession(t)

	out, _, err := execute(t, "suggest", "--session", path, "-o", "json")
	require.NoError(t, err)

	var recs map[string][]struct {
		ID         string  `json:"id"`
		Similarity float64 `json:"similarity"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	require.Len(t, recs["Олександр"], 2)
	assert.Equal(t, "4", recs["Олександр"][0].ID)
	assert.Equal(t, "5", recs["Олександр"][1].ID)

	out, _, err = execute(t, "suggest", "--session", path, "-o", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "Коваль Олександр")
}

func TestTranslit(t *testing.T) {
	out, _, err := execute(t, "translit", "Шевченко", "-o", "json")
	require.NoError(t, err)

	var got []struct {
		Latin    string   `json:"latin"`
		Cyrillic string   `json:"cyrillic"`
		Variants []string `json:"variants"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "shevchenko", got[0].Latin)
	assert.Equal(t, "шевченко", got[0].Cyrillic)
	assert.Contains(t, got[0].Variants, "shevchenko")

	out, _, err = execute(t, "translit", "taras", "-o", "json")
	require.NoError(t, err)

	var forms []struct {
		Cyrillic string   `json:"cyrillic"`
		Forms    []string `json:"forms"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &forms))
	require.Len(t, forms, 1)
	assert.Equal(t, "тарас", forms[0].Cyrillic)
	assert.Contains(t, forms[0].Forms, "тарасик")

	out, _, err = execute(t, "translit", "marharyta", "-o", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "маргарита")

	_, _, err = execute(t, "translit")
	require.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	var buf bytes.Buffer

	f, err := ParseFormat("", &buf)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f, "non-terminal writers get JSON")

	f, err = ParseFormat("YAML", &buf)
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("wide", &buf)
	require.Error(t, err)
}

func TestTableFormatter_FallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, (&TableFormatter{}).Format(&buf, map[string]int{"a": 1}))
	assert.JSONEq(t, `{"a": 1}`, buf.String())
}
