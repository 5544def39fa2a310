package agreement

import "github.com/roach88/docreduce/internal/document"

// Input is implemented by every agreement action input.
type Input interface {
	document.Input
	agreementInput()
}

type SetAgreementTitleInput struct {
	Title string `json:"title"`
}

type AddPartyInput struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Role  PartyRole `json:"role"`
	Email *string   `json:"email,omitempty"`
}

type UpdatePartyInput struct {
	ID    string                    `json:"id"`
	Name  document.Field[string]    `json:"name,omitzero"`
	Role  document.Field[PartyRole] `json:"role,omitzero"`
	Email document.Field[string]    `json:"email,omitzero"`
}

type RemovePartyInput struct {
	ID string `json:"id"`
}

type SignAgreementInput struct {
	Timestamp string `json:"timestamp"`
}

type TerminateAgreementInput struct {
	Timestamp string  `json:"timestamp"`
	Reason    *string `json:"reason,omitempty"`
}

type RecordComplianceEventInput struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
}

type AmendComplianceEventInput struct {
	ID          string `json:"id"`
	EventID     string `json:"eventId"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
}

func (SetAgreementTitleInput) Kind() document.Kind     { return "setAgreementTitle" }
func (AddPartyInput) Kind() document.Kind              { return "addParty" }
func (UpdatePartyInput) Kind() document.Kind           { return "updateParty" }
func (RemovePartyInput) Kind() document.Kind           { return "removeParty" }
func (SignAgreementInput) Kind() document.Kind         { return "signAgreement" }
func (TerminateAgreementInput) Kind() document.Kind    { return "terminateAgreement" }
func (RecordComplianceEventInput) Kind() document.Kind { return "recordComplianceEvent" }
func (AmendComplianceEventInput) Kind() document.Kind  { return "amendComplianceEvent" }

func (SetAgreementTitleInput) agreementInput()     {}
func (AddPartyInput) agreementInput()              {}
func (UpdatePartyInput) agreementInput()           {}
func (RemovePartyInput) agreementInput()           {}
func (SignAgreementInput) agreementInput()         {}
func (TerminateAgreementInput) agreementInput()    {}
func (RecordComplianceEventInput) agreementInput() {}
func (AmendComplianceEventInput) agreementInput()  {}
