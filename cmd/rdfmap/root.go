package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/geoknoesis/rdfmodel/internal/config"
	"github.com/geoknoesis/rdfmodel/internal/observability"
	"github.com/geoknoesis/rdfmodel/internal/source"
	"github.com/geoknoesis/rdfmodel/rdf"
)

const appName = "rdfmap"

// app carries the state shared by subcommands once the root command has
// loaded the configuration.
type app struct {
	configPath   string
	logLevel     string
	maxLineBytes int

	cfg    config.Config
	logger zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:           appName,
		Short:         "Convert, inspect and decode RDF graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = a.logLevel
			}
			if cmd.Flags().Changed("max-line-bytes") {
				cfg.MaxLineBytes = a.maxLineBytes
			}
			a.cfg = cfg
			a.logger = observability.NewLogger(appName, cfg.LogLevel)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (.toml or .yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	root.PersistentFlags().IntVar(&a.maxLineBytes, "max-line-bytes", rdf.DefaultMaxLineBytes, "longest accepted input line; negative disables the limit")

	root.AddCommand(
		newConvertCmd(a),
		newStatsCmd(a),
		newQueryCmd(a),
		newDecodeCmd(a),
		newFingerprintCmd(a),
	)
	return root
}

// load parses the command's inputs into one graph and binds the configured
// prefixes.
func (a *app) load(cmd *cobra.Command, args []string) (*rdf.Graph, error) {
	loader := source.Loader{
		Stdin:  cmd.InOrStdin(),
		Logger: a.logger,
		Codec:  []rdf.Option{rdf.OptMaxLineBytes(a.cfg.MaxLineBytes)},
	}
	g, err := loader.Load(args)
	if err != nil {
		return nil, err
	}
	for prefix, ns := range a.cfg.Prefixes {
		g.Bind(prefix, ns)
	}
	a.logger.Info().Int("triples", g.Len()).Int("inputs", max(len(args), 1)).Msg("graph loaded")
	return g, nil
}
