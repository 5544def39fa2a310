package workbreakdown

import (
	"slices"

	"github.com/roach88/docreduce/internal/document"
)

// StepStatus is the progress of a step.
type StepStatus string

const (
	StepNotStarted StepStatus = "NOT_STARTED"
	StepInProgress StepStatus = "IN_PROGRESS"
	StepBlocked    StepStatus = "BLOCKED"
	StepDone       StepStatus = "DONE"
)

// RiskLevel rates likelihood and impact.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// ChangeRequestStatus is the decision state of a change request.
type ChangeRequestStatus string

const (
	ChangeRequestProposed ChangeRequestStatus = "PROPOSED"
	ChangeRequestApproved ChangeRequestStatus = "APPROVED"
	ChangeRequestRejected ChangeRequestStatus = "REJECTED"
)

// Step is one unit of planned work.
type Step struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	Owner         *string    `json:"owner"`
	EstimateHours *int64     `json:"estimateHours"`
	Status        StepStatus `json:"status"`
	DisplayOrder  int        `json:"displayOrder"`
}

func (s Step) EntityID() string { return s.ID }

// Risk is a tracked project risk, optionally tied to a step.
type Risk struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Likelihood  RiskLevel `json:"likelihood"`
	Impact      RiskLevel `json:"impact"`
	Mitigation  *string   `json:"mitigation"`
	StepID      *string   `json:"stepId"`
}

func (r Risk) EntityID() string { return r.ID }

// ChangeRequest is a proposed scope change awaiting a decision.
type ChangeRequest struct {
	ID           string              `json:"id"`
	Title        string              `json:"title"`
	Description  *string             `json:"description"`
	RequestedBy  string              `json:"requestedBy"`
	Status       ChangeRequestStatus `json:"status"`
	CreatedAt    string              `json:"createdAt"`
	DecidedAt    *string             `json:"decidedAt"`
	DecisionNote *string             `json:"decisionNote"`
}

func (c ChangeRequest) EntityID() string { return c.ID }

// Extraction records one import of steps from an external source.
type Extraction struct {
	ID        string `json:"id"`
	Source    string `json:"source"`
	Summary   string `json:"summary"`
	StepCount int64  `json:"stepCount"`
	Timestamp string `json:"timestamp"`
}

// Global is the persisted state of a work breakdown.
type Global struct {
	Title          string          `json:"title"`
	Steps          []Step          `json:"steps"`
	Risks          []Risk          `json:"risks"`
	ChangeRequests []ChangeRequest `json:"changeRequests"`
	Extractions    []Extraction    `json:"extractions"`
}

// Local is per-session state. No actions target it.
type Local struct{}

// State is the full document state.
type State struct {
	Global Global
	Local  Local
}

// InitialState returns an empty work breakdown.
func InitialState() State {
	return State{Global: Global{
		Steps:          []Step{},
		Risks:          []Risk{},
		ChangeRequests: []ChangeRequest{},
		Extractions:    []Extraction{},
	}}
}

// GlobalState implements document.State.
func (s State) GlobalState() any { return s.Global }

// Clone implements document.State.
func (s State) Clone() State {
	g := s.Global
	out := State{Local: s.Local, Global: Global{
		Title:          g.Title,
		Steps:          make([]Step, len(g.Steps)),
		Risks:          make([]Risk, len(g.Risks)),
		ChangeRequests: make([]ChangeRequest, len(g.ChangeRequests)),
		Extractions:    slices.Clone(g.Extractions),
	}}
	if out.Global.Extractions == nil {
		out.Global.Extractions = []Extraction{}
	}
	for i, st := range g.Steps {
		st.Description = document.ClonePtr(st.Description)
		st.Owner = document.ClonePtr(st.Owner)
		st.EstimateHours = document.ClonePtr(st.EstimateHours)
		out.Global.Steps[i] = st
	}
	for i, r := range g.Risks {
		r.Description = document.ClonePtr(r.Description)
		r.Mitigation = document.ClonePtr(r.Mitigation)
		r.StepID = document.ClonePtr(r.StepID)
		out.Global.Risks[i] = r
	}
	for i, c := range g.ChangeRequests {
		c.Description = document.ClonePtr(c.Description)
		c.DecidedAt = document.ClonePtr(c.DecidedAt)
		c.DecisionNote = document.ClonePtr(c.DecisionNote)
		out.Global.ChangeRequests[i] = c
	}
	return out
}
