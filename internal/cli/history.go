package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent renders",
		Long: `List the most recent renders recorded in the catalog, oldest first.

The default length comes from history_limit in tql.yaml (or
TQL_HISTORY_LIMIT); 0 lists the whole history.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("limit") {
				limit = rootOpts.HistoryLimit
			}
			return runHistory(rootOpts, limit, cmd)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "number of entries to list (0 for all)")

	return cmd
}

func runHistory(opts *RootOptions, limit int, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	st, err := openStore(formatter, opts.DB)
	if err != nil {
		return err
	}
	defer st.Close()

	renders, err := st.ListRenders(cmd.Context(), limit)
	if err != nil {
		return storeError(formatter, "failed to list renders", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(renders)
	}
	if len(renders) == 0 {
		fmt.Fprintln(formatter.Writer, "No renders recorded")
		return nil
	}
	for _, r := range renders {
		fmt.Fprintf(formatter.Writer, "%4d  %s  %s  %s\n", r.Seq, r.ID, shortHash(r.QueryID), r.Source)
	}
	return nil
}
