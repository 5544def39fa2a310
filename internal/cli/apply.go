package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/docreduce/internal/document"
	"github.com/roach88/docreduce/internal/engine"
	"github.com/roach88/docreduce/internal/schema"
)

// ApplyOptions holds flags for the apply command.
type ApplyOptions struct {
	*RootOptions
	DocumentID string
	Kind       string
	Input      string
}

// ApplyResult describes the record an applied action produced.
type ApplyResult struct {
	DocumentID string `json:"document_id"`
	Kind       string `json:"kind"`
	Scope      string `json:"scope"`
	Index      int64  `json:"index"`
	ActionID   string `json:"action_id"`
	Timestamp  string `json:"timestamp"`
}

func (r ApplyResult) RenderText(w io.Writer) {
	fmt.Fprintf(w, "applied %s to %s (%s #%d)\n", r.Kind, r.DocumentID, r.Scope, r.Index)
	fmt.Fprintf(w, "  action %s\n", r.ActionID)
}

// NewApplyCommand creates the apply command.
func NewApplyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ApplyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply an action to a document",
		Long: `Validate the input against the kind's schema, apply it to the document
and append the record to the operation log.

Input is inline JSON, @file, or - for stdin.

Exit codes:
  0 - Action applied
  1 - Action rejected (invalid input or reducer error)
  2 - Command error (unknown document, storage failure)

Examples:
  docreduce apply --doc $DOC --kind addStep --input '{"id":"s1","title":"Plan"}'
  docreduce apply --doc $DOC --kind addTier --input @tier.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd.Context(), opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DocumentID, "doc", "", "document id (required)")
	cmd.Flags().StringVar(&opts.Kind, "kind", "", "action kind (required)")
	cmd.Flags().StringVar(&opts.Input, "input", "", "action input: JSON, @file or -")
	_ = cmd.MarkFlagRequired("doc")
	_ = cmd.MarkFlagRequired("kind")

	return cmd
}

func runApply(ctx context.Context, opts *ApplyOptions, cmd *cobra.Command) (err error) {
	raw, err := readInput(opts.Input, cmd.InOrStdin())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read input", err)
	}

	s, err := openSession(opts.RootOptions)
	if err != nil {
		return err
	}
	defer s.closeInto(&err)

	f := opts.formatter(cmd)
	rec, err := s.Submit(ctx, opts.DocumentID, document.Kind(opts.Kind), raw)
	if err != nil {
		return reportRejection(f, err)
	}

	return f.Success(ApplyResult{
		DocumentID: opts.DocumentID,
		Kind:       string(rec.Kind),
		Scope:      string(rec.Scope),
		Index:      rec.Index,
		ActionID:   rec.ID,
		Timestamp:  rec.TimestampString(),
	})
}

// reportRejection prints err and maps it to an exit code: rejected actions
// exit 1, anything else exits 2.
func reportRejection(f *OutputFormatter, err error) error {
	if engine.IsNotFound(err) {
		return WrapExitError(ExitCommandError, "document not found", err)
	}

	code := engine.RejectionCode(err)
	var details any
	var vf *schema.ValidationFailure
	if errors.As(err, &vf) {
		details = vf.Issues
	} else if re, ok := document.AsReducerError(err); ok {
		details = map[string]string{"family": string(re.Family), "entity_id": re.EntityID}
	}

	switch code {
	case string(engine.ErrCodePersist), string(engine.ErrCodeCorruptLog), string(engine.ErrCodeUnknownType), "ERROR":
		return WrapExitError(ExitCommandError, "apply failed", err)
	}

	if ferr := f.Error(code, err.Error(), details); ferr != nil {
		return ferr
	}
	return NewExitError(ExitFailure, fmt.Sprintf("action rejected: %s", code))
}
