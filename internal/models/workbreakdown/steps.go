package workbreakdown

import "github.com/roach88/docreduce/internal/document"

func addStep(g *Global, in AddStepInput) error {
	steps, err := document.Insert(g.Steps, Step{
		ID:            in.ID,
		Title:         in.Title,
		Description:   in.Description,
		Owner:         in.Owner,
		EstimateHours: in.EstimateHours,
		Status:        StepNotStarted,
		DisplayOrder:  len(g.Steps),
	}, ErrCodeDuplicateStepID, "step")
	if err != nil {
		return err
	}
	g.Steps = steps
	return nil
}

func updateStep(g *Global, in UpdateStepInput) error {
	return document.Modify(g.Steps, in.ID, ErrCodeStepNotFound, "step", func(s *Step) {
		in.Title.Apply(&s.Title)
		in.Description.ApplyNullable(&s.Description)
		in.Owner.ApplyNullable(&s.Owner)
		in.EstimateHours.ApplyNullable(&s.EstimateHours)
	})
}

// removeStep also detaches risks that pointed at the step.
func removeStep(g *Global, in RemoveStepInput) error {
	steps, err := document.Delete(g.Steps, in.ID, ErrCodeStepNotFound, "step")
	if err != nil {
		return err
	}
	document.Renumber(steps, setStepOrder)
	g.Steps = steps
	for i := range g.Risks {
		if r := &g.Risks[i]; r.StepID != nil && *r.StepID == in.ID {
			r.StepID = nil
		}
	}
	return nil
}

func setStepOrder(s *Step, i int) { s.DisplayOrder = i }

func setStepStatus(g *Global, in SetStepStatusInput) error {
	return document.Modify(g.Steps, in.ID, ErrCodeStepNotFound, "step", func(s *Step) {
		s.Status = in.Status
	})
}
