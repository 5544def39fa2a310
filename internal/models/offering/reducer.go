package offering

import "github.com/roach88/docreduce/internal/document"

func reduce(draft *State, a document.Action) error {
	g := &draft.Global
	switch in := a.Input.(type) {
	case SetOfferingInfoInput:
		in.Title.Apply(&g.Title)
		in.Summary.ApplyNullable(&g.Summary)
	case SetOfferingStatusInput:
		g.Status = in.Status
	case AddServiceInput:
		return addService(g, in)
	case UpdateServiceInput:
		return updateService(g, in)
	case DeleteServiceInput:
		return deleteService(g, in)
	case ReorderServicesInput:
		reorderServices(g, in)
	case AddTierInput:
		return addTier(g, in)
	case UpdateTierInput:
		return updateTier(g, in)
	case DeleteTierInput:
		return deleteTier(g, in)
	case AddFacetTargetInput:
		return addFacetTarget(g, in)
	case RemoveFacetTargetInput:
		removeFacetTarget(g, in)
	case AddFacetOptionInput:
		return addFacetOption(g, in)
	case RemoveFacetOptionInput:
		removeFacetOption(g, in)
	default:
		document.UnhandledInput(DocumentType, a.Input)
	}
	return nil
}
