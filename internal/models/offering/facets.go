package offering

import (
	"slices"

	"github.com/roach88/docreduce/internal/document"
)

func facetByCategory(g *Global, key string) int {
	return slices.IndexFunc(g.FacetTargets, func(f FacetTarget) bool { return f.CategoryKey == key })
}

// addFacetTarget allows one target per category; the other facet kinds
// address targets by category key.
func addFacetTarget(g *Global, in AddFacetTargetInput) error {
	if facetByCategory(g, in.CategoryKey) >= 0 {
		return document.DuplicateID(ErrCodeDuplicateFacetCategory, "facet category", in.CategoryKey)
	}
	targets, err := document.Insert(g.FacetTargets, FacetTarget{
		ID:              in.ID,
		CategoryKey:     in.CategoryKey,
		CategoryLabel:   in.CategoryLabel,
		SelectedOptions: cloneStrings(in.SelectedOptions),
	}, ErrCodeDuplicateFacetTargetID, "facet target")
	if err != nil {
		return err
	}
	g.FacetTargets = targets
	return nil
}

// removeFacetTarget drops the target for a category. A category with no
// target is left alone.
func removeFacetTarget(g *Global, in RemoveFacetTargetInput) {
	g.FacetTargets = slices.DeleteFunc(g.FacetTargets,
		func(f FacetTarget) bool { return f.CategoryKey == in.CategoryKey })
}

func addFacetOption(g *Global, in AddFacetOptionInput) error {
	i := facetByCategory(g, in.CategoryKey)
	if i < 0 {
		return document.NotFound(ErrCodeFacetTargetNotFound, "facet target", in.CategoryKey)
	}
	f := &g.FacetTargets[i]
	if !slices.Contains(f.SelectedOptions, in.OptionID) {
		f.SelectedOptions = append(f.SelectedOptions, in.OptionID)
	}
	return nil
}

func removeFacetOption(g *Global, in RemoveFacetOptionInput) {
	i := facetByCategory(g, in.CategoryKey)
	if i < 0 {
		return
	}
	f := &g.FacetTargets[i]
	f.SelectedOptions = slices.DeleteFunc(f.SelectedOptions, func(id string) bool { return id == in.OptionID })
}
