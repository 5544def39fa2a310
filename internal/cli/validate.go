package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/docreduce/internal/document"
	"github.com/roach88/docreduce/internal/ir"
	"github.com/roach88/docreduce/internal/schema"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
	Type  string
	Kind  string
	Input string
}

// ValidateResult is the validate command's output on success.
type ValidateResult struct {
	Type      string    `json:"type"`
	Kind      string    `json:"kind"`
	Canonical string    `json:"canonical"`
	Payload   ir.Object `json:"payload"`
}

func (r ValidateResult) RenderText(w io.Writer) {
	fmt.Fprintf(w, "\u2713 valid %s/%s input\n", r.Type, r.Kind)
	fmt.Fprintf(w, "  canonical: %s\n", r.Canonical)
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate action input against its schema",
		Long: `Check input against the schema of a document type's action kind without
touching any document. Prints every failing field.

Exit codes:
  0 - Input is valid
  1 - Input is invalid
  2 - Command error (unknown type or kind)

Examples:
  docreduce validate --type agreement --kind addParty --input '{"id":"p1","name":"Acme","role":"PROVIDER"}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Type, "type", "", "document type (required)")
	cmd.Flags().StringVar(&opts.Kind, "kind", "", "action kind (required)")
	cmd.Flags().StringVar(&opts.Input, "input", "", "action input: JSON, @file or -")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("kind")

	return cmd
}

func runValidate(opts *ValidateOptions, cmd *cobra.Command) error {
	raw, err := readInput(opts.Input, cmd.InOrStdin())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read input", err)
	}
	reg, err := registry()
	if err != nil {
		return err
	}

	v := reg.Validator()
	kind := document.Kind(opts.Kind)
	if !v.Has(opts.Type, kind) {
		return NewExitError(ExitCommandError, fmt.Sprintf("unknown kind %s/%s", opts.Type, opts.Kind))
	}

	f := opts.formatter(cmd)
	payload, err := v.Validate(opts.Type, kind, raw)
	if err != nil {
		var vf *schema.ValidationFailure
		if errors.As(err, &vf) {
			if ferr := f.Error("INVALID_INPUT", err.Error(), vf.Issues); ferr != nil {
				return ferr
			}
			return NewExitError(ExitFailure, "validation failed")
		}
		return WrapExitError(ExitCommandError, "validation error", err)
	}

	canonical, err := ir.MarshalCanonical(payload)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to canonicalize input", err)
	}
	return f.Success(ValidateResult{
		Type:      opts.Type,
		Kind:      opts.Kind,
		Canonical: string(canonical),
		Payload:   payload,
	})
}
