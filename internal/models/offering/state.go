package offering

import (
	"slices"

	"github.com/roach88/docreduce/internal/document"
)

// Status is the publication state of an offering.
type Status string

const (
	StatusDraft      Status = "DRAFT"
	StatusPublished  Status = "PUBLISHED"
	StatusDeprecated Status = "DEPRECATED"
)

// BillingCycle is how often a tier is charged.
type BillingCycle string

const (
	BillingMonthly BillingCycle = "MONTHLY"
	BillingYearly  BillingCycle = "YEARLY"
	BillingOneTime BillingCycle = "ONE_TIME"
)

// Service is a deliverable included in the offering.
type Service struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	DisplayOrder int     `json:"displayOrder"`
}

func (s Service) EntityID() string { return s.ID }

// Tier is a purchasable price point. Prices are integer minor units
// (cents) so the canonical form never needs floats.
type Tier struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	PriceMinor         int64        `json:"priceMinor"`
	Currency           string       `json:"currency"`
	BillingCycle       BillingCycle `json:"billingCycle"`
	IncludedServiceIDs []string     `json:"includedServiceIds"`
}

func (t Tier) EntityID() string { return t.ID }

// FacetTarget declares which options of a facet category the offering
// targets. Targets are addressed by category key once created.
type FacetTarget struct {
	ID              string   `json:"id"`
	CategoryKey     string   `json:"categoryKey"`
	CategoryLabel   string   `json:"categoryLabel"`
	SelectedOptions []string `json:"selectedOptions"`
}

func (f FacetTarget) EntityID() string { return f.ID }

// Global is the persisted state of an offering.
type Global struct {
	Title        string        `json:"title"`
	Summary      *string       `json:"summary"`
	Status       Status        `json:"status"`
	Services     []Service     `json:"services"`
	Tiers        []Tier        `json:"tiers"`
	FacetTargets []FacetTarget `json:"facetTargets"`
}

// Local is per-session state. No actions target it.
type Local struct{}

// State is the full document state.
type State struct {
	Global Global
	Local  Local
}

// InitialState returns an empty DRAFT offering.
func InitialState() State {
	return State{Global: Global{
		Status:       StatusDraft,
		Services:     []Service{},
		Tiers:        []Tier{},
		FacetTargets: []FacetTarget{},
	}}
}

// GlobalState implements document.State.
func (s State) GlobalState() any { return s.Global }

// Clone implements document.State.
func (s State) Clone() State {
	g := s.Global
	g.Summary = document.ClonePtr(g.Summary)

	g.Services = make([]Service, len(s.Global.Services))
	for i, svc := range s.Global.Services {
		svc.Description = document.ClonePtr(svc.Description)
		g.Services[i] = svc
	}
	g.Tiers = make([]Tier, len(s.Global.Tiers))
	for i, t := range s.Global.Tiers {
		t.IncludedServiceIDs = cloneStrings(t.IncludedServiceIDs)
		g.Tiers[i] = t
	}
	g.FacetTargets = make([]FacetTarget, len(s.Global.FacetTargets))
	for i, f := range s.Global.FacetTargets {
		f.SelectedOptions = cloneStrings(f.SelectedOptions)
		g.FacetTargets[i] = f
	}
	return State{Global: g, Local: s.Local}
}

func cloneStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}
