package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/docreduce/internal/engine"
)

// CreateOptions holds flags for the create command.
type CreateOptions struct {
	*RootOptions
	Type string
}

// CreateResult is the create command's output.
type CreateResult struct {
	DocumentID string `json:"document_id"`
	Type       string `json:"type"`
}

// RenderText prints the new id alone so it can be captured by scripts.
func (r CreateResult) RenderText(w io.Writer) {
	fmt.Fprintln(w, r.DocumentID)
}

// NewCreateCommand creates the create command.
func NewCreateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CreateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an empty document",
		Long: `Create an empty document of the given type and print its id.

Examples:
  docreduce create --type workbreakdown
  DOC=$(docreduce create --type offering --db ./offers.db)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd.Context(), opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Type, "type", "", "document type (required)")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func runCreate(ctx context.Context, opts *CreateOptions, cmd *cobra.Command) (err error) {
	s, err := openSession(opts.RootOptions)
	if err != nil {
		return err
	}
	defer s.closeInto(&err)

	id, err := s.Create(ctx, opts.Type)
	if err != nil {
		if engine.IsUnknownType(err) {
			return WrapExitError(ExitCommandError, "cannot create document", err)
		}
		return WrapExitError(ExitCommandError, "failed to create document", err)
	}
	return opts.formatter(cmd).Success(CreateResult{DocumentID: id, Type: opts.Type})
}
