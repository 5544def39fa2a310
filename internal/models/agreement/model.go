// Package agreement is the service agreement document: parties, the
// DRAFT → SIGNED → TERMINATED lifecycle and a compliance event log with
// single amendment per event.
package agreement

import (
	_ "embed"

	"github.com/roach88/docreduce/internal/document"
	"github.com/roach88/docreduce/internal/schema"
)

// DocumentType is the registry name of this model.
const DocumentType = "agreement"

//go:embed schema.cue
var schemaCUE []byte

// Schema returns the CUE action schemas.
func Schema() schema.Source {
	return schema.Source{DocumentType: DocumentType, CUE: schemaCUE}
}

func define[T Input]() document.Definition { return document.Define[T]() }

// Model returns the agreement model.
func Model() *document.Model[State] {
	return &document.Model[State]{
		Type:    DocumentType,
		Initial: InitialState,
		Reducer: reduce,
		Definitions: []document.Definition{
			define[SetAgreementTitleInput](),
			define[AddPartyInput](),
			define[UpdatePartyInput](),
			define[RemovePartyInput](),
			define[SignAgreementInput](),
			define[TerminateAgreementInput](),
			define[RecordComplianceEventInput](),
			define[AmendComplianceEventInput](),
		},
	}
}
