package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/docreduce/internal/engine"
)

// ReplayOptions holds flags for the replay command.
type ReplayOptions struct {
	*RootOptions
	DocumentID string // optional - specific document only
}

// ReplayResult holds the overall replay result.
type ReplayResult struct {
	Documents        []engine.VerifyResult `json:"documents"`
	Total            int                   `json:"total"`
	AllDeterministic bool                  `json:"all_deterministic"`
}

func (r ReplayResult) RenderText(w io.Writer) {
	if r.Total == 0 {
		fmt.Fprintln(w, "No documents found in database.")
		return
	}
	for _, d := range r.Documents {
		mark := "\u2713"
		if !d.Match {
			mark = "\u2717"
		}
		fmt.Fprintf(w, "%s %s (%s, %d records) %s\n", mark, d.DocumentID, d.Type, d.Records, d.FirstDigest)
		if !d.Match {
			fmt.Fprintf(w, "    second replay: %s\n", d.SecondDigest)
		}
	}
	fmt.Fprintln(w)
	if r.AllDeterministic {
		fmt.Fprintf(w, "\u2713 %d document(s) replay deterministically\n", r.Total)
	} else {
		fmt.Fprintln(w, "\u2717 Determinism verification failed")
	}
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay operation logs and verify determinism",
		Long: `Replay each document's operation log twice from scratch and compare the
resulting state digests.

Exit codes:
  0 - All documents are deterministic
  1 - Determinism verification failed (digests differ)
  2 - Command error (database not found, corrupt log, etc.)

Examples:
  docreduce replay --db ./docreduce.db
  docreduce replay --doc $DOC --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd.Context(), opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DocumentID, "doc", "", "replay specific document only")

	return cmd
}

func runReplay(ctx context.Context, opts *ReplayOptions, cmd *cobra.Command) (err error) {
	s, err := openSession(opts.RootOptions)
	if err != nil {
		return err
	}
	defer s.closeInto(&err)

	var results []engine.VerifyResult
	if opts.DocumentID != "" {
		res, err := s.Verify(ctx, opts.DocumentID)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("failed to replay document %s", opts.DocumentID), err)
		}
		results = []engine.VerifyResult{res}
	} else {
		results, err = s.VerifyAll(ctx)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to replay documents", err)
		}
	}

	result := ReplayResult{
		Documents:        results,
		Total:            len(results),
		AllDeterministic: true,
	}
	for _, r := range results {
		if !r.Match {
			result.AllDeterministic = false
		}
	}

	if err := opts.formatter(cmd).Success(result); err != nil {
		return err
	}
	if !result.AllDeterministic {
		return NewExitError(ExitFailure, "non-deterministic replay detected")
	}
	return nil
}
