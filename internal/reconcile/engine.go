package reconcile

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"roster-reconciler/internal/diagnostic"
	"roster-reconciler/internal/match"
	"roster-reconciler/internal/memo"
	"roster-reconciler/internal/names"
	"roster-reconciler/internal/roster"
	"roster-reconciler/internal/translit"
)

// Engine reconciles display names against a roster. It owns the manual
// assignments and the memo tables, and remembers the last result so that
// alternatives shown to a user can be picked by index.
//
// An Engine is safe for concurrent use.
type Engine struct {
	cfg        Config
	log        zerolog.Logger
	dict       *names.Dictionary
	strategies []Strategy

	tr       *translit.Transliterator
	ev       *names.Evaluator
	splitter *names.CombinedSplitter
	weights  match.Weights
	recs     *memo.Table[string, map[string][]Recommendation]

	mu     sync.Mutex
	manual map[string]string
	index  *roster.Index
	last   *Result
	run    uint64

	lastIndex       *roster.Index
	lastFingerprint string
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// WithDictionary replaces the built-in name variant dictionary.
func WithDictionary(dict *names.Dictionary) Option {
	return func(e *Engine) {
		e.dict = dict
	}
}

// WithStrategies replaces the strategy pipeline.
func WithStrategies(strategies ...Strategy) Option {
	return func(e *Engine) {
		e.strategies = strategies
	}
}

// New creates an Engine.
func New(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:        cfg,
		log:        zerolog.Nop(),
		strategies: DefaultStrategies(),
		manual:     make(map[string]string),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.tr = translit.New(translit.Config{VariantCap: cfg.VariantCap, CacheSize: cfg.CacheSize})
	e.ev = names.NewEvaluator(cfg.Evaluator, e.tr, e.dict, cfg.CacheSize)
	e.splitter = names.NewCombinedSplitter(cfg.Combined, e.tr)
	e.weights = cfg.MatchWeights()
	e.recs = memo.New[string, map[string][]Recommendation](cfg.CacheSize)

	return e
}

// Reconcile matches every display name against the roster. Each distinct
// name gets exactly one record; duplicates in displayNames are ignored.
func (e *Engine) Reconcile(displayNames []string, aliases map[string]string, entries []roster.Entry) *Result {
	idx := e.indexFor(entries)
	manual := e.ManualAssignments()

	sc := &StrategyContext{
		Index:           idx,
		Aliases:         aliases,
		Manual:          manual,
		Evaluator:       e.ev,
		Weights:         e.weights,
		AmbiguityMargin: e.cfg.AmbiguityMargin,
	}

	var diags diagnostic.Diagnostics

	order := distinct(displayNames)
	if idx.Len() == 0 && len(order) > 0 {
		diags.AddWarning(diagnostic.CodeEmptyRoster, "roster is empty, no name can be matched", "")
	}

	records := make(map[string]MatchRecord, len(order))
	for _, name := range order {
		if strings.TrimSpace(name) == "" {
			diags.AddWarning(diagnostic.CodeEmptyName, "display name is empty", name)
		}

		if id, ok := manual[name]; ok {
			if _, known := idx.ByID(id); !known {
				diags.AddWarning(diagnostic.CodeManualUnknownID,
					fmt.Sprintf("manual assignment points at unknown roster id %s", id), name)
			}
		}

		rec, by := runPipeline(name, e.strategies, sc)
		records[name] = rec

		if by != "" {
			e.log.Debug().
				Str("name", name).
				Str("strategy", by).
				Str("outcome", rec.Outcome.String()).
				Str("id", rec.ID).
				Float64("quality", rec.Quality).
				Msg("strategy accepted")
		}
	}

	used, contested := enforceUniqueness(order, records, &diags)

	// Tied IDs stay out of reach of the auto-matcher too.
	e.autoMatch(order, records, used.Union(contested), sc, &diags)

	res := e.finalize(order, records, &diags)

	e.mu.Lock()
	e.last = res
	e.lastIndex = idx
	e.lastFingerprint = idx.Fingerprint()
	e.run++
	e.mu.Unlock()

	e.log.Info().
		Int("names", len(order)).
		Int("matched", len(order)-len(res.UnresolvedNames)).
		Int("unresolved", len(res.UnresolvedNames)).
		Int("warnings", len(res.Diagnostics.Warnings)).
		Msg("reconciliation finished")

	return res
}

// finalize builds the result maps. Alternatives of records left without a
// match are narrowed to entries nobody holds.
func (e *Engine) finalize(
	order []string,
	records map[string]MatchRecord,
	diags *diagnostic.Diagnostics,
) *Result {
	used := UsedIDsOf(records)

	res := &Result{
		MatchedNames:    make(map[string]string, len(order)),
		MatchInfo:       records,
		UnresolvedNames: []string{},
	}

	for _, name := range order {
		rec := records[name]
		if rec.Matched() {
			res.MatchedNames[name] = rec.ID
			continue
		}

		res.MatchedNames[name] = Unresolved
		res.UnresolvedNames = append(res.UnresolvedNames, name)

		rec.Alternatives = free(rec.Alternatives, used)
		records[name] = rec

		suggestions := make([]string, len(rec.Alternatives))
		for i, alt := range rec.Alternatives {
			suggestions[i] = alt.DBName
		}

		switch {
		case rec.Outcome == OutcomeAmbiguous:
			diags.AddWarning(diagnostic.CodeAmbiguous, "several roster entries match equally well", name, suggestions...)
		case rec.Type != match.Conflict:
			diags.AddWarning(diagnostic.CodeUnresolved, "no roster entry matches", name, suggestions...)
		}
	}

	res.Diagnostics = *diags

	return res
}

// indexFor returns the index of entries, reusing the current one when the
// roster did not change. A changed roster clears every memo table.
func (e *Engine) indexFor(entries []roster.Entry) *roster.Index {
	idx := roster.NewIndex(entries)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.index != nil && e.index.Fingerprint() == idx.Fingerprint() {
		return e.index
	}

	if e.index != nil {
		e.tr.Reset()
		e.ev.Reset()
		e.recs.Reset()
		e.log.Debug().Str("fingerprint", idx.Fingerprint()).Msg("roster changed, caches cleared")
	}

	e.index = idx

	return idx
}

// lastRun returns the last result if it was computed against the roster
// with the given fingerprint, together with the run counter.
func (e *Engine) lastRun(fingerprint string) (*Result, uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.last == nil || e.lastFingerprint != fingerprint {
		return nil, e.run
	}

	return e.last, e.run
}

// LastResult returns the result of the most recent Reconcile call, or nil.
func (e *Engine) LastResult() *Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.last
}

// SetManualMatch assigns name to a roster entry given by ID or by full name
// (surname first or firstname first) in the most recently seen roster. It
// reports false when the entry cannot be found unambiguously.
func (e *Engine) SetManualMatch(name, idOrFullName string) bool {
	value := strings.TrimSpace(idOrFullName)
	if strings.TrimSpace(name) == "" || value == "" {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.index == nil {
		return false
	}

	id, ok := resolveEntry(e.index, value)
	if !ok {
		return false
	}

	e.manual[name] = id
	e.log.Debug().Str("name", name).Str("id", id).Msg("manual match set")

	return true
}

func resolveEntry(idx *roster.Index, value string) (string, bool) {
	if entry, ok := idx.ByID(value); ok {
		return entry.ID, true
	}

	if hits := idx.WithFullName(value); len(hits) == 1 {
		return hits[0].ID, true
	}

	if hits := withReversedName(idx, value); len(hits) == 1 {
		return hits[0].ID, true
	}

	return "", false
}

// SelectAlternative assigns name to the alternative at index among those
// offered for it after the last run: the record's own alternatives, or the
// fresh recommendations when the record has none.
func (e *Engine) SelectAlternative(name string, index int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.last == nil || index < 0 {
		return false
	}

	rec, ok := e.last.MatchInfo[name]
	if !ok || rec.Matched() {
		return false
	}

	alts := rec.Alternatives
	if len(alts) == 0 {
		alts = e.alternatives(name, nil, e.lastIndex, UsedIDsOf(e.last.MatchInfo))
	}

	if index >= len(alts) {
		return false
	}

	e.manual[name] = alts[index].ID

	return true
}

// ClearManualMatch removes the manual assignment of name.
func (e *Engine) ClearManualMatch(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.manual[name]; !ok {
		return false
	}

	delete(e.manual, name)

	return true
}

// ClearManualMatches removes every manual assignment.
func (e *Engine) ClearManualMatches() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.manual = make(map[string]string)
}

// ManualAssignments returns a copy of the manual assignments.
func (e *Engine) ManualAssignments() map[string]string {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make(map[string]string, len(e.manual))
	for k, v := range e.manual {
		out[k] = v
	}

	return out
}

// LoadManualAssignments adds stored assignments, replacing existing ones for
// the same names. IDs are not checked; unknown IDs are reported by the next
// Reconcile call.
func (e *Engine) LoadManualAssignments(assignments map[string]string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for name, id := range assignments {
		if strings.TrimSpace(name) == "" || strings.TrimSpace(id) == "" {
			continue
		}
		e.manual[name] = id
	}
}

func distinct(displayNames []string) []string {
	seen := make(map[string]bool, len(displayNames))
	out := make([]string, 0, len(displayNames))

	for _, name := range displayNames {
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}

	return out
}
