package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List saved queries",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	st, err := openStore(formatter, opts.DB)
	if err != nil {
		return err
	}
	defer st.Close()

	saved, err := st.ListSaved(cmd.Context())
	if err != nil {
		return storeError(formatter, "failed to list saved queries", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(saved)
	}
	if len(saved) == 0 {
		fmt.Fprintln(formatter.Writer, "No saved queries")
		return nil
	}
	for _, s := range saved {
		fmt.Fprintf(formatter.Writer, "%-20s %-22s %s\n", s.Name, s.Query.Kind, shortHash(s.Query.ID))
	}
	return nil
}
