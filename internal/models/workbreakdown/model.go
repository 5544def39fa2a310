// Package workbreakdown is the work breakdown document: ordered steps,
// risks, change requests and an extraction history.
package workbreakdown

import (
	_ "embed"

	"github.com/roach88/docreduce/internal/document"
	"github.com/roach88/docreduce/internal/schema"
)

// DocumentType is the registry name of this model.
const DocumentType = "workbreakdown"

//go:embed schema.cue
var schemaCUE []byte

// Schema returns the CUE action schemas.
func Schema() schema.Source {
	return schema.Source{DocumentType: DocumentType, CUE: schemaCUE}
}

func define[T Input]() document.Definition { return document.Define[T]() }

// Model returns the work breakdown model.
func Model() *document.Model[State] {
	return &document.Model[State]{
		Type:    DocumentType,
		Initial: InitialState,
		Reducer: reduce,
		Definitions: []document.Definition{
			define[SetWorkBreakdownTitleInput](),
			define[AddStepInput](),
			define[UpdateStepInput](),
			define[RemoveStepInput](),
			define[SetStepStatusInput](),
			define[ReorderStepsInput](),
			define[AddRiskInput](),
			define[UpdateRiskInput](),
			define[RemoveRiskInput](),
			define[AddChangeRequestInput](),
			define[UpdateChangeRequestInput](),
			define[ApproveChangeRequestInput](),
			define[RejectChangeRequestInput](),
			define[RecordExtractionInput](),
		},
	}
}
