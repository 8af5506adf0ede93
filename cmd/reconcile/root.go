package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"roster-reconciler/internal/config"
	"roster-reconciler/internal/logging"
	"roster-reconciler/internal/reconcile"
)

// app holds what every command shares: flags, configuration, and the logger.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	logLevel   string

	cfg *config.File
	log zerolog.Logger
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "reconcile",
		Short: "Match transcript display names against a roster",
		Long: `reconcile resolves the free-form names participants show in a meeting
transcript to the people of a roster. Names may be written in Cyrillic or
Latin script, in either order, with diminutives, typos, or glued together.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "configuration file (YAML)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error, off")

	root.AddCommand(
		a.newRunCommand(),
		a.newSuggestCommand(),
		a.newTranslitCommand(),
		a.newConfigCommand(),
	)

	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup() error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.LoadFile(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err := cfg.Log.Validate(); err != nil {
			return err
		}
	}

	a.cfg = cfg
	a.log = logging.New(cfg.Log, a.errOut)

	a.log.Debug().Str("config", a.configPath).Str("version", cfg.Version).Msg("configuration loaded")

	return nil
}

func (a *app) engine() (*reconcile.Engine, error) {
	dict, err := a.cfg.Dictionary()
	if err != nil {
		return nil, err
	}

	return reconcile.New(a.cfg.Reconcile,
		reconcile.WithLogger(a.log),
		reconcile.WithDictionary(dict),
	), nil
}

func (a *app) output(format string, data any, tabular Tabular) error {
	f, err := ParseFormat(format, a.out)
	if err != nil {
		return err
	}

	if f == FormatTable && tabular != nil {
		data = tabular
	}

	return NewFormatter(f).Format(a.out, data)
}
