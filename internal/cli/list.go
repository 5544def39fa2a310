package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/docreduce/internal/oplog"
)

// ListResult is the list command's output.
type ListResult struct {
	Documents []oplog.DocumentInfo `json:"documents"`
}

func (r ListResult) RenderText(w io.Writer) {
	if len(r.Documents) == 0 {
		fmt.Fprintln(w, "No documents found.")
		return
	}
	for _, d := range r.Documents {
		fmt.Fprintf(w, "%s  %-14s %s\n", d.ID, d.Type, d.CreatedAt)
	}
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.Context(), rootOpts, cmd)
		},
	}
}

func runList(ctx context.Context, opts *RootOptions, cmd *cobra.Command) (err error) {
	s, err := openSession(opts)
	if err != nil {
		return err
	}
	defer s.closeInto(&err)

	docs, err := s.Documents(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list documents", err)
	}
	return opts.formatter(cmd).Success(ListResult{Documents: docs})
}
