package subscription

import (
	"slices"

	"github.com/roach88/docreduce/internal/document"
)

// Status is the lifecycle state of a subscription.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusActive    Status = "ACTIVE"
	StatusPaused    Status = "PAUSED"
	StatusExpiring  Status = "EXPIRING"
	StatusCancelled Status = "CANCELLED"
	StatusExpired   Status = "EXPIRED"
)

// Terminal reports whether no further lifecycle transition is allowed.
func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusExpired
}

// Seat is a named user slot on the subscription.
type Seat struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email"`
}

func (s Seat) EntityID() string { return s.ID }

// Activity is an append-only audit entry.
type Activity struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
}

// Global is the persisted state of a subscription.
type Global struct {
	CustomerID         string     `json:"customerId"`
	CustomerName       string     `json:"customerName"`
	OfferingID         string     `json:"offeringId"`
	TierName           string     `json:"tierName"`
	Status             Status     `json:"status"`
	AutoRenew          bool       `json:"autoRenew"`
	CreatedAt          *string    `json:"createdAt"`
	ActivatedSince     *string    `json:"activatedSince"`
	PausedSince        *string    `json:"pausedSince"`
	ExpiringSince      *string    `json:"expiringSince"`
	CancelledSince     *string    `json:"cancelledSince"`
	ExpiredSince       *string    `json:"expiredSince"`
	CancellationReason *string    `json:"cancellationReason"`
	Seats              []Seat     `json:"seats"`
	Activity           []Activity `json:"activity"`
}

// Local is per-session state. No actions target it.
type Local struct{}

// State is the full document state.
type State struct {
	Global Global
	Local  Local
}

// InitialState returns a PENDING subscription with no customer.
func InitialState() State {
	return State{Global: Global{
		Status:   StatusPending,
		Seats:    []Seat{},
		Activity: []Activity{},
	}}
}

// GlobalState implements document.State.
func (s State) GlobalState() any { return s.Global }

// Clone implements document.State.
func (s State) Clone() State {
	g := s.Global
	g.CreatedAt = document.ClonePtr(g.CreatedAt)
	g.ActivatedSince = document.ClonePtr(g.ActivatedSince)
	g.PausedSince = document.ClonePtr(g.PausedSince)
	g.ExpiringSince = document.ClonePtr(g.ExpiringSince)
	g.CancelledSince = document.ClonePtr(g.CancelledSince)
	g.ExpiredSince = document.ClonePtr(g.ExpiredSince)
	g.CancellationReason = document.ClonePtr(g.CancellationReason)

	g.Seats = make([]Seat, len(s.Global.Seats))
	for i, seat := range s.Global.Seats {
		seat.Email = document.ClonePtr(seat.Email)
		g.Seats[i] = seat
	}
	g.Activity = slices.Clone(s.Global.Activity)
	if g.Activity == nil {
		g.Activity = []Activity{}
	}
	return State{Global: g, Local: s.Local}
}
