package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// KindInfo describes one action kind.
type KindInfo struct {
	Kind  string `json:"kind"`
	Scope string `json:"scope"`
}

// TypeInfo lists a document type's kinds.
type TypeInfo struct {
	Type  string     `json:"type"`
	Kinds []KindInfo `json:"kinds"`
}

// KindsResult is the kinds command's output.
type KindsResult struct {
	Types []TypeInfo `json:"types"`
}

func (r KindsResult) RenderText(w io.Writer) {
	for i, t := range r.Types {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s:\n", t.Type)
		for _, k := range t.Kinds {
			fmt.Fprintf(w, "  %-24s %s\n", k.Kind, k.Scope)
		}
	}
}

// NewKindsCommand creates the kinds command.
func NewKindsCommand(rootOpts *RootOptions) *cobra.Command {
	var docType string

	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List document types and their action kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := registry()
			if err != nil {
				return err
			}

			types := reg.Types()
			if docType != "" {
				if _, ok := reg.Model(docType); !ok {
					return NewExitError(ExitCommandError, fmt.Sprintf("unknown document type %q", docType))
				}
				types = []string{docType}
			}

			result := KindsResult{Types: make([]TypeInfo, 0, len(types))}
			for _, name := range types {
				desc, _ := reg.Model(name)
				info := TypeInfo{Type: name}
				for _, k := range desc.Kinds() {
					def, _ := desc.Definition(k)
					info.Kinds = append(info.Kinds, KindInfo{Kind: string(k), Scope: string(def.Scope)})
				}
				result.Types = append(result.Types, info)
			}
			return rootOpts.formatter(cmd).Success(result)
		},
	}

	cmd.Flags().StringVar(&docType, "type", "", "only this document type")

	return cmd
}
