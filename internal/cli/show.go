package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/docreduce/internal/engine"
)

// ShowOptions holds flags for the show command.
type ShowOptions struct {
	*RootOptions
	DocumentID string
	History    bool
}

// HistoryEntry is one record in show --history output.
type HistoryEntry struct {
	Scope     string          `json:"scope"`
	Index     int64           `json:"index"`
	Kind      string          `json:"kind"`
	ActionID  string          `json:"action_id"`
	Timestamp string          `json:"timestamp"`
	Input     json.RawMessage `json:"input"`
}

// ShowResult is the show command's output.
type ShowResult struct {
	Document engine.Snapshot `json:"document"`
	State    json.RawMessage `json:"state"`
	History  []HistoryEntry  `json:"history,omitempty"`
}

func (r ShowResult) RenderText(w io.Writer) {
	d := r.Document
	fmt.Fprintf(w, "Document: %s (%s)\n", d.ID, d.Type)
	fmt.Fprintf(w, "Created:  %s\n", d.CreatedAt)
	fmt.Fprintf(w, "Revision: global=%d local=%d\n", d.GlobalRevision, d.LocalRevision)
	fmt.Fprintf(w, "Digest:   %s\n\n", d.Digest)

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, r.State, "", "  "); err != nil {
		pretty.Reset()
		pretty.Write(r.State)
	}
	fmt.Fprintln(w, pretty.String())

	if len(r.History) > 0 {
		fmt.Fprintln(w, "\nHistory:")
		for _, h := range r.History {
			fmt.Fprintf(w, "  [%s #%d] %s %s %s\n", h.Scope, h.Index, h.Timestamp, h.Kind, h.Input)
		}
	}
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ShowOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a document's state",
		Long: `Rehydrate a document from its operation log and print its global state,
revisions and digest.

Examples:
  docreduce show --doc $DOC
  docreduce show --doc $DOC --history --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.Context(), opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DocumentID, "doc", "", "document id (required)")
	cmd.Flags().BoolVar(&opts.History, "history", false, "include the record history")
	_ = cmd.MarkFlagRequired("doc")

	return cmd
}

func runShow(ctx context.Context, opts *ShowOptions, cmd *cobra.Command) (err error) {
	s, err := openSession(opts.RootOptions)
	if err != nil {
		return err
	}
	defer s.closeInto(&err)

	snap, err := s.Inspect(ctx, opts.DocumentID)
	if err != nil {
		if engine.IsNotFound(err) {
			return WrapExitError(ExitCommandError, "document not found", err)
		}
		return WrapExitError(ExitCommandError, "failed to load document", err)
	}
	result := ShowResult{Document: snap, State: snap.State}

	if opts.History {
		records, err := s.History(ctx, opts.DocumentID)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load history", err)
		}
		for _, rec := range records {
			input, err := json.Marshal(rec.Payload)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to encode input", err)
			}
			result.History = append(result.History, HistoryEntry{
				Scope:     string(rec.Scope),
				Index:     rec.Index,
				Kind:      string(rec.Kind),
				ActionID:  rec.ID,
				Timestamp: rec.TimestampString(),
				Input:     input,
			})
		}
	}

	return opts.formatter(cmd).Success(result)
}
