package subscription

import "github.com/roach88/docreduce/internal/document"

// Input is implemented by every subscription action input.
type Input interface {
	document.Input
	subscriptionInput()
}

type InitializeSubscriptionInput struct {
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
	OfferingID   string `json:"offeringId"`
	TierName     string `json:"tierName"`
	AutoRenew    *bool  `json:"autoRenew,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

// transition is the payload of the timestamped lifecycle kinds.
type transition struct {
	Timestamp string `json:"timestamp"`
}

type ActivateSubscriptionInput transition

type PauseSubscriptionInput transition

type ResumeSubscriptionInput transition

type MarkExpiringInput transition

type ExpireSubscriptionInput transition

type RenewSubscriptionInput transition

type CancelSubscriptionInput struct {
	Timestamp string  `json:"timestamp"`
	Reason    *string `json:"reason,omitempty"`
}

type SetSubscriptionStatusInput struct {
	Status Status `json:"status"`
}

type SetAutoRenewInput struct {
	AutoRenew bool `json:"autoRenew"`
}

type AddSeatInput struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
}

type UpdateSeatInput struct {
	ID    string                 `json:"id"`
	Name  document.Field[string] `json:"name,omitzero"`
	Email document.Field[string] `json:"email,omitzero"`
}

type RemoveSeatInput struct {
	ID string `json:"id"`
}

type RecordActivityInput struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
}

func (InitializeSubscriptionInput) Kind() document.Kind { return "initializeSubscription" }
func (ActivateSubscriptionInput) Kind() document.Kind   { return "activateSubscription" }
func (PauseSubscriptionInput) Kind() document.Kind      { return "pauseSubscription" }
func (ResumeSubscriptionInput) Kind() document.Kind     { return "resumeSubscription" }
func (MarkExpiringInput) Kind() document.Kind           { return "markExpiring" }
func (ExpireSubscriptionInput) Kind() document.Kind     { return "expireSubscription" }
func (RenewSubscriptionInput) Kind() document.Kind      { return "renewSubscription" }
func (CancelSubscriptionInput) Kind() document.Kind     { return "cancelSubscription" }
func (SetSubscriptionStatusInput) Kind() document.Kind  { return "setSubscriptionStatus" }
func (SetAutoRenewInput) Kind() document.Kind           { return "setAutoRenew" }
func (AddSeatInput) Kind() document.Kind                { return "addSeat" }
func (UpdateSeatInput) Kind() document.Kind             { return "updateSeat" }
func (RemoveSeatInput) Kind() document.Kind             { return "removeSeat" }
func (RecordActivityInput) Kind() document.Kind         { return "recordActivity" }

func (InitializeSubscriptionInput) subscriptionInput() {}
func (ActivateSubscriptionInput) subscriptionInput()   {}
func (PauseSubscriptionInput) subscriptionInput()      {}
func (ResumeSubscriptionInput) subscriptionInput()     {}
func (MarkExpiringInput) subscriptionInput()           {}
func (ExpireSubscriptionInput) subscriptionInput()     {}
func (RenewSubscriptionInput) subscriptionInput()      {}
func (CancelSubscriptionInput) subscriptionInput()     {}
func (SetSubscriptionStatusInput) subscriptionInput()  {}
func (SetAutoRenewInput) subscriptionInput()           {}
func (AddSeatInput) subscriptionInput()                {}
func (UpdateSeatInput) subscriptionInput()             {}
func (RemoveSeatInput) subscriptionInput()             {}
func (RecordActivityInput) subscriptionInput()         {}
