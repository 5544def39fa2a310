package offering

import "github.com/roach88/docreduce/internal/document"

// Input is implemented by every offering action input.
type Input interface {
	document.Input
	offeringInput()
}

type SetOfferingInfoInput struct {
	Title   document.Field[string] `json:"title,omitzero"`
	Summary document.Field[string] `json:"summary,omitzero"`
}

type SetOfferingStatusInput struct {
	Status Status `json:"status"`
}

type AddServiceInput struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

type UpdateServiceInput struct {
	ID          string                 `json:"id"`
	Title       document.Field[string] `json:"title,omitzero"`
	Description document.Field[string] `json:"description,omitzero"`
}

type DeleteServiceInput struct {
	ID string `json:"id"`
}

type ReorderServicesInput struct {
	Order []string `json:"order"`
}

type AddTierInput struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	PriceMinor         int64        `json:"priceMinor"`
	Currency           string       `json:"currency"`
	BillingCycle       BillingCycle `json:"billingCycle"`
	IncludedServiceIDs []string     `json:"includedServiceIds,omitempty"`
}

type UpdateTierInput struct {
	ID                 string                       `json:"id"`
	Name               document.Field[string]       `json:"name,omitzero"`
	PriceMinor         document.Field[int64]        `json:"priceMinor,omitzero"`
	Currency           document.Field[string]       `json:"currency,omitzero"`
	BillingCycle       document.Field[BillingCycle] `json:"billingCycle,omitzero"`
	IncludedServiceIDs document.Field[[]string]     `json:"includedServiceIds,omitzero"`
}

type DeleteTierInput struct {
	ID string `json:"id"`
}

type AddFacetTargetInput struct {
	ID              string   `json:"id"`
	CategoryKey     string   `json:"categoryKey"`
	CategoryLabel   string   `json:"categoryLabel"`
	SelectedOptions []string `json:"selectedOptions,omitempty"`
}

type RemoveFacetTargetInput struct {
	CategoryKey string `json:"categoryKey"`
}

type facetOption struct {
	CategoryKey string `json:"categoryKey"`
	OptionID    string `json:"optionId"`
}

type AddFacetOptionInput facetOption

type RemoveFacetOptionInput facetOption

func (SetOfferingInfoInput) Kind() document.Kind   { return "setOfferingInfo" }
func (SetOfferingStatusInput) Kind() document.Kind { return "setOfferingStatus" }
func (AddServiceInput) Kind() document.Kind        { return "addService" }
func (UpdateServiceInput) Kind() document.Kind     { return "updateService" }
func (DeleteServiceInput) Kind() document.Kind     { return "deleteService" }
func (ReorderServicesInput) Kind() document.Kind   { return "reorderServices" }
func (AddTierInput) Kind() document.Kind           { return "addTier" }
func (UpdateTierInput) Kind() document.Kind        { return "updateTier" }
func (DeleteTierInput) Kind() document.Kind        { return "deleteTier" }
func (AddFacetTargetInput) Kind() document.Kind    { return "addFacetTarget" }
func (RemoveFacetTargetInput) Kind() document.Kind { return "removeFacetTarget" }
func (AddFacetOptionInput) Kind() document.Kind    { return "addFacetOption" }
func (RemoveFacetOptionInput) Kind() document.Kind { return "removeFacetOption" }

func (SetOfferingInfoInput) offeringInput()   {}
func (SetOfferingStatusInput) offeringInput() {}
func (AddServiceInput) offeringInput()        {}
func (UpdateServiceInput) offeringInput()     {}
func (DeleteServiceInput) offeringInput()     {}
func (ReorderServicesInput) offeringInput()   {}
func (AddTierInput) offeringInput()           {}
func (UpdateTierInput) offeringInput()        {}
func (DeleteTierInput) offeringInput()        {}
func (AddFacetTargetInput) offeringInput()    {}
func (RemoveFacetTargetInput) offeringInput() {}
func (AddFacetOptionInput) offeringInput()    {}
func (RemoveFacetOptionInput) offeringInput() {}
