package cli

import (
	"github.com/spf13/cobra"
)

// ShowOptions holds flags for the show command.
type ShowOptions struct {
	*RootOptions
	Document bool
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ShowOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a saved query",
		Long: `Print the canonical text of a saved query, or with --document the
YAML document it was stored as.

Example:
  tql show people
  tql show --document people > people.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Document, "document", false, "print the stored YAML document instead of query text")

	return cmd
}

func runShow(opts *ShowOptions, name string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	st, err := openStore(formatter, opts.DB)
	if err != nil {
		return err
	}
	defer st.Close()

	saved, err := st.GetSaved(cmd.Context(), name)
	if err != nil {
		return storeError(formatter, "failed to read saved query", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(saved)
	}
	if opts.Document {
		if saved.Query.Document == "" {
			_ = formatter.Error(ErrCodeGeneric, "query "+name+" has no document form", nil)
			return NewExitError(ExitCommandError, ErrCodeGeneric)
		}
		// Stored YAML already ends with a newline
		_, err := formatter.Writer.Write([]byte(saved.Query.Document))
		return err
	}
	return formatter.Success(saved.Query.Text)
}
