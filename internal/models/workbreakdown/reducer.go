package workbreakdown

import "github.com/roach88/docreduce/internal/document"

func reduce(draft *State, a document.Action) error {
	g := &draft.Global
	switch in := a.Input.(type) {
	case SetWorkBreakdownTitleInput:
		g.Title = in.Title
		return nil
	case AddStepInput:
		return addStep(g, in)
	case UpdateStepInput:
		return updateStep(g, in)
	case RemoveStepInput:
		return removeStep(g, in)
	case SetStepStatusInput:
		return setStepStatus(g, in)
	case ReorderStepsInput:
		g.Steps = document.Reorder(g.Steps, in.Order, setStepOrder)
		return nil
	case AddRiskInput:
		return addRisk(g, in)
	case UpdateRiskInput:
		return updateRisk(g, in)
	case RemoveRiskInput:
		return removeRisk(g, in)
	case AddChangeRequestInput:
		return addChangeRequest(g, in)
	case UpdateChangeRequestInput:
		return updateChangeRequest(g, in)
	case ApproveChangeRequestInput:
		return decideChangeRequest(g, decision(in), ChangeRequestApproved)
	case RejectChangeRequestInput:
		return decideChangeRequest(g, decision(in), ChangeRequestRejected)
	case RecordExtractionInput:
		g.Extractions = append(g.Extractions, Extraction(in))
		return nil
	default:
		document.UnhandledInput(DocumentType, a.Input)
		return nil
	}
}
