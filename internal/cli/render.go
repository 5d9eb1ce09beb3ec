package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/tql/internal/query"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	NoRecord bool
}

// RenderResult is the JSON payload of render.
type RenderResult struct {
	Kind     string `json:"kind"`
	Query    string `json:"query"`
	Hash     string `json:"hash"`
	RenderID string `json:"render_id,omitempty"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a query document to query text",
		Long: `Load a query document (.yaml, .yml, .json or .cue) and print its
canonical query text. Each render is appended to the catalog history
unless --no-record is given.

Example:
  tql render people.yaml
  tql render --format json --no-record people.cue`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.NoRecord, "no-record", false, "do not record the render in the catalog history")

	return cmd
}

func runRender(opts *RenderOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	q, err := loadQuery(formatter, path)
	if err != nil {
		return err
	}

	result := RenderResult{
		Kind:  q.Kind().String(),
		Query: q.String(),
		Hash:  query.Hash(q),
	}

	if !opts.NoRecord {
		st, err := openStore(formatter, opts.DB)
		if err != nil {
			return err
		}
		defer st.Close()

		r, err := st.RecordRender(cmd.Context(), q, path)
		if err != nil {
			return storeError(formatter, "failed to record render", err)
		}
		formatter.VerboseLog("Recorded render %s", r.ID)
		result.RenderID = r.ID
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(result.Query)
}
