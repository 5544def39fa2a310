// Package offering is the service offering document: what is sold
// (services), at which price points (tiers) and for which audiences
// (facet targets).
package offering

import (
	_ "embed"

	"github.com/roach88/docreduce/internal/document"
	"github.com/roach88/docreduce/internal/schema"
)

// DocumentType is the registry name of this model.
const DocumentType = "offering"

//go:embed schema.cue
var schemaCUE []byte

// Schema returns the CUE action schemas.
func Schema() schema.Source {
	return schema.Source{DocumentType: DocumentType, CUE: schemaCUE}
}

func define[T Input]() document.Definition { return document.Define[T]() }

// Model returns the offering model.
func Model() *document.Model[State] {
	return &document.Model[State]{
		Type:    DocumentType,
		Initial: InitialState,
		Reducer: reduce,
		Definitions: []document.Definition{
			define[SetOfferingInfoInput](),
			define[SetOfferingStatusInput](),
			define[AddServiceInput](),
			define[UpdateServiceInput](),
			define[DeleteServiceInput](),
			define[ReorderServicesInput](),
			define[AddTierInput](),
			define[UpdateTierInput](),
			define[DeleteTierInput](),
			define[AddFacetTargetInput](),
			define[RemoveFacetTargetInput](),
			define[AddFacetOptionInput](),
			define[RemoveFacetOptionInput](),
		},
	}
}
