package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"roster-reconciler/internal/config"
	"roster-reconciler/internal/diagnostic"
	"roster-reconciler/internal/reconcile"
)

type runOptions struct {
	session string
	output  string
	dump    bool
	save    bool
	strict  bool
	assign  []string
	pick    []string
}

func (a *app) newRunCommand() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Reconcile the display names of a session file",
		Example: `  reconcile run --session meeting.yaml
  reconcile run --session meeting.yaml --assign "Guest 1=Коваль Маргарита" --save
  reconcile run --session meeting.yaml --pick "Олександр=2" -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.session, "session", "s", "", "session file (YAML)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output format: table, json, yaml (default: table on a terminal)")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "dump the full result to stderr")
	cmd.Flags().BoolVar(&opts.save, "save", false, "write manual assignments back to the session file")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when a name stays unresolved or the result has errors")
	cmd.Flags().StringArrayVar(&opts.assign, "assign", nil, "NAME=ID or NAME=FULL NAME, assign a name by hand (repeatable)")
	cmd.Flags().StringArrayVar(&opts.pick, "pick", nil, "NAME=N, pick the N-th listed alternative for a name (repeatable)")
	_ = cmd.MarkFlagRequired("session")

	return cmd
}

func (a *app) run(opts *runOptions) error {
	s, err := config.LoadSession(opts.session)
	if err != nil {
		return err
	}

	eng, err := a.engine()
	if err != nil {
		return err
	}

	eng.LoadManualAssignments(s.Manual)
	res := eng.Reconcile(s.DisplayNames, s.Aliases, s.Roster)

	if len(opts.assign) > 0 || len(opts.pick) > 0 {
		if err := applyChoices(eng, opts.assign, opts.pick); err != nil {
			return err
		}
		res = eng.Reconcile(s.DisplayNames, s.Aliases, s.Roster)
	}

	if opts.save {
		s.Manual = eng.ManualAssignments()
		if err := config.WriteSession(s, opts.session); err != nil {
			return err
		}
		a.log.Info().Str("session", opts.session).Int("manual", len(s.Manual)).Msg("session saved")
	}

	recs := eng.Recommendations(res.UnresolvedNames, s.Roster, res.MatchedNames)

	if opts.strict {
		res = withStrictErrors(res)
	}

	if opts.dump {
		spew.Fdump(a.errOut, res)
	}

	if err := a.output(opts.output, res, resultView{order: s.DisplayNames, res: res, recs: recs}); err != nil {
		return err
	}

	if opts.strict && res.Diagnostics.HasErrors() {
		return fmt.Errorf("strict mode: %w", res.Diagnostics.Error())
	}

	return nil
}

// withStrictErrors returns a copy of res where every unresolved name is also
// reported as an error.
func withStrictErrors(res *reconcile.Result) *reconcile.Result {
	var strict diagnostic.Diagnostics
	for _, name := range res.UnresolvedNames {
		strict.AddError(diagnostic.CodeUnresolved, "name is unresolved", name)
	}

	shown := *res
	shown.Diagnostics.Errors = append([]diagnostic.Diagnostic(nil), res.Diagnostics.Errors...)
	shown.Diagnostics.Merge(strict)

	return &shown
}

// applyChoices applies --pick first, since it indexes into the alternatives
// of the run that was just shown, and --assign after it.
func applyChoices(eng *reconcile.Engine, assign, pick []string) error {
	for _, p := range pick {
		name, value, err := splitChoice(p)
		if err != nil {
			return err
		}

		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid --pick %q: alternative number must be a positive integer", p)
		}

		if !eng.SelectAlternative(name, n-1) {
			return fmt.Errorf("invalid --pick %q: %q has no alternative %d", p, name, n)
		}
	}

	for _, as := range assign {
		name, value, err := splitChoice(as)
		if err != nil {
			return err
		}

		if !eng.SetManualMatch(name, value) {
			return fmt.Errorf("invalid --assign %q: no single roster entry is %q", as, value)
		}
	}

	return nil
}

func splitChoice(s string) (string, string, error) {
	i := strings.LastIndex(s, "=")
	if i <= 0 || i == len(s)-1 {
		return "", "", fmt.Errorf("invalid choice %q: expected NAME=VALUE", s)
	}

	return s[:i], s[i+1:], nil
}

// resultView renders a result as tables in input order. recs are the
// numbered choices --pick accepts for each unresolved name.
type resultView struct {
	order []string
	res   *reconcile.Result
	recs  map[string][]reconcile.Recommendation
}

func (v resultView) Tables() []Table {
	matches := Table{
		Headers: []string{"Display name", "Outcome", "ID", "Roster name", "Type", "Quality"},
	}
	alternatives := Table{
		Title:   "Alternatives:",
		Headers: []string{"Display name", "#", "ID", "Roster name", "Quality"},
	}

	seen := make(map[string]bool, len(v.order))
	for _, name := range v.order {
		if seen[name] {
			continue
		}
		seen[name] = true

		rec := v.res.MatchInfo[name]
		quality := ""
		if rec.Matched() {
			quality = formatQuality(rec.Quality)
		}

		matches.Rows = append(matches.Rows, []string{
			name, rec.Outcome.String(), rec.ID, rec.DBName, rec.Type.String(), quality,
		})

		for i, r := range v.recs[name] {
			alternatives.Rows = append(alternatives.Rows, []string{
				name, strconv.Itoa(i + 1), r.ID, r.DBName, formatQuality(r.Similarity),
			})
		}
	}

	diags := v.res.Diagnostics
	for _, d := range diags.Errors {
		matches.Notes = append(matches.Notes, "error: "+d.String())
	}
	for _, d := range diags.Warnings {
		matches.Notes = append(matches.Notes, "warning: "+d.String())
	}

	tables := []Table{matches}
	if len(alternatives.Rows) > 0 {
		tables = append(tables, alternatives)
	}

	return tables
}

func formatQuality(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
