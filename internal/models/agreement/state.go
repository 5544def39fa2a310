package agreement

import "github.com/roach88/docreduce/internal/document"

// Status is the signature state of an agreement.
type Status string

const (
	StatusDraft      Status = "DRAFT"
	StatusSigned     Status = "SIGNED"
	StatusTerminated Status = "TERMINATED"
)

// PartyRole is a party's role in the agreement.
type PartyRole string

const (
	RoleProvider PartyRole = "PROVIDER"
	RoleCustomer PartyRole = "CUSTOMER"
	RoleWitness  PartyRole = "WITNESS"
)

// Party is a signatory or witness.
type Party struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Role  PartyRole `json:"role"`
	Email *string   `json:"email"`
}

func (p Party) EntityID() string { return p.ID }

// ComplianceEvent is an append-only compliance record. An event can be
// amended once; the amendment is a new event pointing back at it.
type ComplianceEvent struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	Description  string  `json:"description"`
	Timestamp    string  `json:"timestamp"`
	Supersedes   *string `json:"supersedes"`
	SupersededBy *string `json:"supersededBy"`
}

func (e ComplianceEvent) EntityID() string { return e.ID }

// Global is the persisted state of an agreement.
type Global struct {
	Title             string            `json:"title"`
	Status            Status            `json:"status"`
	SignedAt          *string           `json:"signedAt"`
	TerminatedAt      *string           `json:"terminatedAt"`
	TerminationReason *string           `json:"terminationReason"`
	Parties           []Party           `json:"parties"`
	Events            []ComplianceEvent `json:"events"`
}

// Local is per-session state. No actions target it.
type Local struct{}

// State is the full document state.
type State struct {
	Global Global
	Local  Local
}

// InitialState returns an empty DRAFT agreement.
func InitialState() State {
	return State{Global: Global{
		Status:  StatusDraft,
		Parties: []Party{},
		Events:  []ComplianceEvent{},
	}}
}

// GlobalState implements document.State.
func (s State) GlobalState() any { return s.Global }

// Clone implements document.State.
func (s State) Clone() State {
	g := s.Global
	g.SignedAt = document.ClonePtr(g.SignedAt)
	g.TerminatedAt = document.ClonePtr(g.TerminatedAt)
	g.TerminationReason = document.ClonePtr(g.TerminationReason)

	g.Parties = make([]Party, len(s.Global.Parties))
	for i, p := range s.Global.Parties {
		p.Email = document.ClonePtr(p.Email)
		g.Parties[i] = p
	}
	g.Events = make([]ComplianceEvent, len(s.Global.Events))
	for i, e := range s.Global.Events {
		e.Supersedes = document.ClonePtr(e.Supersedes)
		e.SupersededBy = document.ClonePtr(e.SupersededBy)
		g.Events[i] = e
	}
	return State{Global: g, Local: s.Local}
}
