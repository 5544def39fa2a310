// Package subscription is the subscription document: a customer's
// subscription to an offering tier, its lifecycle, seats and activity log.
//
// Lifecycle:
//
//	PENDING ─activate→ ACTIVE ─pause→ PAUSED ─resume→ ACTIVE
//	ACTIVE ─markExpiring→ EXPIRING ─renew→ ACTIVE
//	ACTIVE|EXPIRING ─expire (autoRenew off)→ EXPIRED
//	any non-terminal ─cancel→ CANCELLED
//
// setSubscriptionStatus overwrites the status unconditionally.
package subscription

import (
	_ "embed"

	"github.com/roach88/docreduce/internal/document"
	"github.com/roach88/docreduce/internal/schema"
)

// DocumentType is the registry name of this model.
const DocumentType = "subscription"

//go:embed schema.cue
var schemaCUE []byte

// Schema returns the CUE action schemas.
func Schema() schema.Source {
	return schema.Source{DocumentType: DocumentType, CUE: schemaCUE}
}

func define[T Input]() document.Definition { return document.Define[T]() }

// Model returns the subscription model.
func Model() *document.Model[State] {
	return &document.Model[State]{
		Type:    DocumentType,
		Initial: InitialState,
		Reducer: reduce,
		Definitions: []document.Definition{
			define[InitializeSubscriptionInput](),
			define[ActivateSubscriptionInput](),
			define[PauseSubscriptionInput](),
			define[ResumeSubscriptionInput](),
			define[MarkExpiringInput](),
			define[ExpireSubscriptionInput](),
			define[RenewSubscriptionInput](),
			define[CancelSubscriptionInput](),
			define[SetSubscriptionStatusInput](),
			define[SetAutoRenewInput](),
			define[AddSeatInput](),
			define[UpdateSeatInput](),
			define[RemoveSeatInput](),
			define[RecordActivityInput](),
		},
	}
}
