package offering

import (
	"slices"

	"github.com/roach88/docreduce/internal/document"
)

func addTier(g *Global, in AddTierInput) error {
	tiers, err := document.Insert(g.Tiers, Tier{
		ID:                 in.ID,
		Name:               in.Name,
		PriceMinor:         in.PriceMinor,
		Currency:           in.Currency,
		BillingCycle:       in.BillingCycle,
		IncludedServiceIDs: cloneStrings(in.IncludedServiceIDs),
	}, ErrCodeDuplicateTierID, "tier")
	if err != nil {
		return err
	}
	g.Tiers = tiers
	return nil
}

func updateTier(g *Global, in UpdateTierInput) error {
	return document.Modify(g.Tiers, in.ID, ErrCodeTierNotFound, "tier", func(t *Tier) {
		in.Name.Apply(&t.Name)
		in.PriceMinor.Apply(&t.PriceMinor)
		in.Currency.Apply(&t.Currency)
		in.BillingCycle.Apply(&t.BillingCycle)
		if in.IncludedServiceIDs.Present() {
			t.IncludedServiceIDs = slices.Clone(in.IncludedServiceIDs.Value)
			if t.IncludedServiceIDs == nil {
				t.IncludedServiceIDs = []string{}
			}
		}
	})
}

func deleteTier(g *Global, in DeleteTierInput) error {
	tiers, err := document.Delete(g.Tiers, in.ID, ErrCodeTierNotFound, "tier")
	if err != nil {
		return err
	}
	g.Tiers = tiers
	return nil
}
