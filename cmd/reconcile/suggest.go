package main

import (
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"roster-reconciler/internal/config"
	"roster-reconciler/internal/reconcile"
)

func (a *app) newSuggestCommand() *cobra.Command {
	var session, output string

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest roster entries for the names a session leaves unresolved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.LoadSession(session)
			if err != nil {
				return err
			}

			eng, err := a.engine()
			if err != nil {
				return err
			}

			eng.LoadManualAssignments(s.Manual)
			res := eng.Reconcile(s.DisplayNames, s.Aliases, s.Roster)
			recs := eng.Recommendations(res.UnresolvedNames, s.Roster, res.MatchedNames)

			return a.output(output, recs, suggestView{order: res.UnresolvedNames, recs: recs})
		},
	}

	cmd.Flags().StringVarP(&session, "session", "s", "", "session file (YAML)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table, json, yaml")
	_ = cmd.MarkFlagRequired("session")

	return cmd
}

type suggestView struct {
	order []string
	recs  map[string][]reconcile.Recommendation
}

func (v suggestView) Tables() []Table {
	t := Table{Headers: []string{"Display name", "#", "ID", "Roster name", "Similarity"}}

	order := v.order
	if order == nil {
		for name := range v.recs {
			order = append(order, name)
		}
		sort.Strings(order)
	}

	for _, name := range order {
		recs := v.recs[name]
		if len(recs) == 0 {
			t.Notes = append(t.Notes, strconv.Quote(name)+": no suggestions")
			continue
		}

		for i, r := range recs {
			t.Rows = append(t.Rows, []string{name, strconv.Itoa(i + 1), r.ID, r.DBName, formatQuality(r.Similarity)})
		}
	}

	if len(order) == 0 {
		t.Notes = append(t.Notes, "every name is resolved")
	}

	return []Table{t}
}
