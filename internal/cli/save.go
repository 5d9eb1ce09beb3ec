package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSaveCommand creates the save command.
func NewSaveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "save <name> <file>",
		Short: "Save a query document under a name",
		Long: `Load a query document and store its canonical text in the catalog
under name, replacing any query previously saved under that name.

Example:
  tql save people people.yaml`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSave(rootOpts, args[0], args[1], cmd)
		},
	}
}

func runSave(opts *RootOptions, name, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	q, err := loadQuery(formatter, path)
	if err != nil {
		return err
	}

	st, err := openStore(formatter, opts.DB)
	if err != nil {
		return err
	}
	defer st.Close()

	saved, err := st.SaveQuery(cmd.Context(), name, q)
	if err != nil {
		return storeError(formatter, "failed to save query", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(saved)
	}
	return formatter.Success(fmt.Sprintf("✓ Saved %s (%s, %s)", saved.Name, saved.Query.Kind, shortHash(saved.Query.ID)))
}

// shortHash abbreviates a content hash for text output.
func shortHash(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
