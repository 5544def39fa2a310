package workbreakdown

import "github.com/roach88/docreduce/internal/document"

func addRisk(g *Global, in AddRiskInput) error {
	risks, err := document.Insert(g.Risks, Risk(in), ErrCodeDuplicateRiskID, "risk")
	if err != nil {
		return err
	}
	g.Risks = risks
	return nil
}

func updateRisk(g *Global, in UpdateRiskInput) error {
	return document.Modify(g.Risks, in.ID, ErrCodeRiskNotFound, "risk", func(r *Risk) {
		in.Title.Apply(&r.Title)
		in.Description.ApplyNullable(&r.Description)
		in.Likelihood.Apply(&r.Likelihood)
		in.Impact.Apply(&r.Impact)
		in.Mitigation.ApplyNullable(&r.Mitigation)
		in.StepID.ApplyNullable(&r.StepID)
	})
}

func removeRisk(g *Global, in RemoveRiskInput) error {
	risks, err := document.Delete(g.Risks, in.ID, ErrCodeRiskNotFound, "risk")
	if err != nil {
		return err
	}
	g.Risks = risks
	return nil
}
