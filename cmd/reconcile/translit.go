package main

import (
	"strings"

	"github.com/spf13/cobra"

	"roster-reconciler/internal/translit"
)

type spelling struct {
	Word     string   `json:"word" yaml:"word"`
	Latin    string   `json:"latin" yaml:"latin"`
	Cyrillic string   `json:"cyrillic" yaml:"cyrillic"`
	Variants []string `json:"variants" yaml:"variants"`
	// Forms are diminutives and other given-name forms from the dictionary.
	Forms []string `json:"forms,omitempty" yaml:"forms,omitempty"`
}

type spellings []spelling

func (s spellings) Tables() []Table {
	t := Table{Headers: []string{"Word", "Latin", "Cyrillic", "Variants", "Forms"}}
	for _, sp := range s {
		t.Rows = append(t.Rows, []string{
			sp.Word, sp.Latin, sp.Cyrillic, strings.Join(sp.Variants, ", "), strings.Join(sp.Forms, ", "),
		})
	}

	return []Table{t}
}

func (a *app) newTranslitCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "translit WORD...",
		Short:   "Show Latin and Cyrillic spellings of names",
		Example: `  reconcile translit Шевченко Маргарита shevchenko`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := a.cfg.Dictionary()
			if err != nil {
				return err
			}

			tr := translit.New(translit.Config{
				VariantCap: a.cfg.Reconcile.VariantCap,
				CacheSize:  a.cfg.Reconcile.CacheSize,
			})

			out := make(spellings, 0, len(args))
			for _, word := range args {
				cyrillic := tr.ToCyrillic(word)

				forms := dict.Forms(word)
				if len(forms) == 0 && !translit.HasCyrillic(word) {
					forms = dict.Forms(cyrillic)
				}

				out = append(out, spelling{
					Word:     word,
					Latin:    tr.ToLatin(word),
					Cyrillic: cyrillic,
					Variants: tr.GenerateVariants(word, 0),
					Forms:    forms,
				})
			}

			return a.output(output, out, out)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table, json, yaml")

	return cmd
}
