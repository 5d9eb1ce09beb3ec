package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/tql/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose      bool
	Format       string // "json" | "text"
	DB           string // catalog path
	ConfigFile   string
	HistoryLimit int
}

// NewRootCommand creates the root command for the tql CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{
		Format:       config.DefaultFormat,
		DB:           config.DefaultDB,
		HistoryLimit: config.DefaultHistoryLimit,
	}

	cmd := &cobra.Command{
		Use:   "tql",
		Short: "tql - typed pattern queries",
		Long: `Build, render and catalog TypeQL-style pattern queries.

Queries are written as YAML, JSON or CUE documents and rendered to their
canonical query text.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigFile, cmd.Flags())
			if err != nil {
				_ = opts.formatter(cmd).Error(ErrCodeGeneric, err.Error(), nil)
				return WrapExitError(ExitCommandError, "invalid configuration", err)
			}
			opts.apply(cfg)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", config.DefaultFormat, "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.DB, "db", config.DefaultDB, "path to the SQLite query catalog")
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default tql.yaml)")

	// Add subcommands
	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewSaveCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

func (o *RootOptions) apply(cfg *config.Config) {
	o.Verbose = cfg.Verbose
	o.Format = cfg.Format
	o.DB = cfg.DB
	o.HistoryLimit = cfg.HistoryLimit
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   o.Verbose,
	}
}
