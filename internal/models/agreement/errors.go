package agreement

import "github.com/roach88/docreduce/internal/document"

// Reducer error codes.
const (
	ErrCodeDuplicatePartyID       document.ErrorCode = "DuplicatePartyIdError"
	ErrCodePartyNotFound          document.ErrorCode = "PartyNotFoundError"
	ErrCodeAgreementNotDraft      document.ErrorCode = "AgreementNotDraftError"
	ErrCodeAgreementNotSigned     document.ErrorCode = "AgreementNotSignedError"
	ErrCodeEventNotFound          document.ErrorCode = "EventNotFoundError"
	ErrCodeEventAlreadySuperseded document.ErrorCode = "EventAlreadySupersededError"
	ErrCodeAmendmentReusesID      document.ErrorCode = "AmendmentReusesEventIdError"
)
