package reconcile

import (
	"math"

	"roster-reconciler/internal/match"
	"roster-reconciler/internal/names"
	"roster-reconciler/internal/roster"
)

// StrategyContext carries the read-only inputs of one run.
type StrategyContext struct {
	Index     *roster.Index
	Aliases   map[string]string
	Manual    map[string]string
	Evaluator *names.Evaluator
	Weights   match.Weights
	// AmbiguityMargin is the minimum lead the name-parts strategy needs.
	AmbiguityMargin float64
}

// Verdict is what an accepting strategy decided.
type Verdict struct {
	// Outcome is OutcomeMatched or OutcomeAmbiguous.
	Outcome Outcome
	// Candidate is the match; unused for ambiguous verdicts.
	Candidate match.Candidate
	// Alternatives are the contenders of an ambiguous verdict.
	Alternatives match.CandidateList
}

func (v Verdict) record() MatchRecord {
	if v.Outcome == OutcomeAmbiguous {
		return MatchRecord{
			Outcome:      OutcomeAmbiguous,
			Type:         match.Ambiguous,
			Alternatives: alternativesOf(v.Alternatives),
		}
	}

	return matchedRecord(v.Candidate)
}

// StrategyFunc inspects one display name. It returns false to pass the name
// on to the next strategy.
type StrategyFunc func(name string, sc *StrategyContext) (Verdict, bool)

// Strategy is a named pipeline step.
type Strategy struct {
	Name  string
	Apply StrategyFunc
}

// DefaultStrategies returns the pipeline in priority order.
func DefaultStrategies() []Strategy {
	return []Strategy{
		{Name: "manual", Apply: manualAssignment},
		{Name: "exact", Apply: exactMatch},
		{Name: "alias", Apply: aliasTag},
		{Name: "unique-name", Apply: uniqueName},
		{Name: "nickname", Apply: nicknameMatch},
		{Name: "name-parts", Apply: nameParts},
	}
}

func manualAssignment(name string, sc *StrategyContext) (Verdict, bool) {
	id, ok := sc.Manual[name]
	if !ok {
		return Verdict{}, false
	}

	e, ok := sc.Index.ByID(id)
	if !ok {
		return Verdict{}, false
	}

	return matched(e, match.Manual, sc.Weights.Of(match.Manual)), true
}

func exactMatch(name string, sc *StrategyContext) (Verdict, bool) {
	return fromEntries(sc.Index.WithFullName(name), match.Exact, sc.Weights)
}

func aliasTag(name string, sc *StrategyContext) (Verdict, bool) {
	alias := sc.Aliases[name]
	if alias == "" {
		return Verdict{}, false
	}

	entries := sc.Index.WithFullName(alias)
	if len(entries) == 0 {
		// Tags are sometimes written firstname first.
		entries = withReversedName(sc.Index, alias)
	}

	return fromEntries(entries, match.AliasTag, sc.Weights)
}

// uniqueName accepts a name whose surname, or failing that firstname, is
// carried by exactly one roster entry. A single token is tried as both.
func uniqueName(name string, sc *StrategyContext) (Verdict, bool) {
	parts := names.Split(name)
	if parts.Empty() {
		return Verdict{}, false
	}

	surname, firstname := parts.Word, parts.Word
	if !parts.Single {
		surname, firstname = parts.Standard.Surname, parts.Standard.Firstname
	}

	if hits := sc.Index.WithSurname(surname); len(hits) == 1 {
		return matched(hits[0], match.UniqueSurname, sc.Weights.Of(match.UniqueSurname)), true
	}

	if hits := sc.Index.WithFirstname(firstname); len(hits) == 1 {
		return matched(hits[0], match.UniqueFirstname, sc.Weights.Of(match.UniqueFirstname)), true
	}

	return Verdict{}, false
}

func nicknameMatch(name string, sc *StrategyContext) (Verdict, bool) {
	return fromEntries(sc.Index.WithNickname(name), match.Nickname, sc.Weights)
}

// nameParts scores every roster entry by comparing name parts in both
// orders. The best candidate wins unless the runner-up is within the
// ambiguity margin.
func nameParts(name string, sc *StrategyContext) (Verdict, bool) {
	cands := nameCandidates(name, sc.Index.Entries(), sc.Evaluator, sc.Weights)
	best := cands.Best()
	if best == nil {
		return Verdict{}, false
	}

	if cands.IsAmbiguous(sc.AmbiguityMargin) {
		return Verdict{Outcome: OutcomeAmbiguous, Alternatives: cands}, true
	}

	return Verdict{Outcome: OutcomeMatched, Candidate: *best}, true
}

func matched(e roster.Entry, t match.MatchType, quality float64) Verdict {
	return Verdict{Outcome: OutcomeMatched, Candidate: candidateOf(e, t, quality, false)}
}

// fromEntries matches a single entry and reports several as ambiguous.
func fromEntries(entries []roster.Entry, t match.MatchType, w match.Weights) (Verdict, bool) {
	switch len(entries) {
	case 0:
		return Verdict{}, false
	case 1:
		return matched(entries[0], t, w.Of(t)), true
	}

	alts := make(match.CandidateList, len(entries))
	for i, e := range entries {
		alts[i] = candidateOf(e, t, w.Of(t), false)
	}

	return Verdict{Outcome: OutcomeAmbiguous, Alternatives: alts.Rank()}, true
}

func withReversedName(idx *roster.Index, name string) []roster.Entry {
	key := match.NormalizeName(name)
	if key == "" {
		return nil
	}

	var out []roster.Entry
	for _, e := range idx.Entries() {
		if match.NormalizeName(e.ReversedName()) == key {
			out = append(out, e)
		}
	}

	return out
}

func candidateOf(e roster.Entry, t match.MatchType, quality float64, reversed bool) match.Candidate {
	return match.Candidate{
		ID:       e.ID,
		DBName:   e.FullName(),
		Type:     t,
		Quality:  roundQuality(quality),
		Reversed: reversed,
	}
}

func roundQuality(q float64) float64 {
	return math.Round(q*100) / 100
}

// orderTypes names the match types of one reading order.
type orderTypes struct {
	exact, variant, translit, surnameExactFirstnameFuzzy, fuzzy match.MatchType
}

var (
	standardOrder = orderTypes{
		exact:                      match.StandardOrderExact,
		variant:                    match.StandardOrderVariant,
		translit:                   match.StandardOrderTranslit,
		surnameExactFirstnameFuzzy: match.SurnameExactFirstnameFuzzy,
		fuzzy:                      match.StandardOrderFuzzy,
	}
	reversedOrder = orderTypes{
		exact:                      match.ReversedOrderExact,
		variant:                    match.ReversedOrderVariant,
		translit:                   match.ReversedOrderTranslit,
		surnameExactFirstnameFuzzy: match.ReversedSurnameExactFirstnameFuzzy,
		fuzzy:                      match.ReversedOrderFuzzy,
	}
)

// classify names the combination of a surname and a firstname verdict.
func (o orderTypes) classify(surname, firstname names.Verdict) (match.MatchType, bool) {
	if !surname.Found() || !firstname.Found() {
		return match.NotFound, false
	}

	switch {
	case surname.Kind == names.KindExact && firstname.Kind == names.KindExact:
		return o.exact, true
	case surname.Kind == names.KindExact && firstname.Kind == names.KindFuzzy:
		return o.surnameExactFirstnameFuzzy, true
	case surname.Kind == names.KindFuzzy || firstname.Kind == names.KindFuzzy:
		return o.fuzzy, true
	case surname.Kind == names.KindTranslit || firstname.Kind == names.KindTranslit:
		return o.translit, true
	default:
		return o.variant, true
	}
}

var (
	surnameOnly = map[names.Kind]match.MatchType{
		names.KindExact:    match.SurnameOnlyExact,
		names.KindVariant:  match.SurnameOnlyVariant,
		names.KindTranslit: match.SurnameOnlyTranslit,
		names.KindFuzzy:    match.SurnameOnlyFuzzy,
	}
	firstnameOnly = map[names.Kind]match.MatchType{
		names.KindExact:    match.FirstnameOnlyExact,
		names.KindVariant:  match.FirstnameOnlyVariant,
		names.KindTranslit: match.FirstnameOnlyTranslit,
		names.KindFuzzy:    match.FirstnameOnlyFuzzy,
	}
)

// nameCandidates scores name against entries by its parts and returns the
// candidates ranked, one per entry. Quality is the type weight scaled by
// the similarity behind the verdicts.
func nameCandidates(name string, entries []roster.Entry, ev *names.Evaluator, w match.Weights) match.CandidateList {
	parts := names.Split(name)
	if parts.Empty() {
		return nil
	}

	var out match.CandidateList
	for _, e := range entries {
		if c, ok := scoreEntry(parts, e, ev, w); ok {
			out = append(out, c)
		}
	}

	return out.Rank()
}

func scoreEntry(parts names.Parts, e roster.Entry, ev *names.Evaluator, w match.Weights) (match.Candidate, bool) {
	var (
		best  match.Candidate
		found bool
	)

	consider := func(t match.MatchType, similarity float64) {
		q := roundQuality(w.Of(t) * similarity)
		if q <= 0 || (found && q <= best.Quality) {
			return
		}
		best, found = candidateOf(e, t, q, t.Reversed()), true
	}

	if parts.Single {
		if v := ev.Evaluate(parts.Word, e.Surname); v.Found() {
			consider(surnameOnly[v.Kind], v.Similarity)
		}
		if v := ev.Evaluate(parts.Word, e.Firstname); v.Found() {
			consider(firstnameOnly[v.Kind], v.Similarity)
		}

		return best, found
	}

	readings := []struct {
		np    names.NameParts
		types orderTypes
	}{
		{parts.Standard, standardOrder},
		{parts.Reversed, reversedOrder},
	}

	for _, r := range readings {
		vs := ev.Evaluate(r.np.Surname, e.Surname)
		vf := firstnameVerdict(ev, r.np.Firstname, e.Firstname)

		if t, ok := r.types.classify(vs, vf); ok {
			consider(t, (vs.Similarity+vf.Similarity)/2)
		}
	}

	return best, found
}

// firstnameVerdict compares the firstname part, falling back to its first
// token so that a trailing patronymic does not hide a match.
func firstnameVerdict(ev *names.Evaluator, part, firstname string) names.Verdict {
	v := ev.Evaluate(part, firstname)
	if v.Found() {
		return v
	}

	if tokens := match.TokenizeName(part); len(tokens) > 1 {
		return ev.Evaluate(tokens[0], firstname)
	}

	return v
}
