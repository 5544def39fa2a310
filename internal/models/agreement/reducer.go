package agreement

import "github.com/roach88/docreduce/internal/document"

func reduce(draft *State, a document.Action) error {
	g := &draft.Global
	switch in := a.Input.(type) {
	case SetAgreementTitleInput:
		g.Title = in.Title
	case AddPartyInput:
		return addParty(g, in)
	case UpdatePartyInput:
		return updateParty(g, in)
	case RemovePartyInput:
		// Unlike the other removes, a missing party is not an error.
		g.Parties = document.DeleteIfPresent(g.Parties, in.ID)
	case SignAgreementInput:
		return sign(g, in)
	case TerminateAgreementInput:
		return terminate(g, in)
	case RecordComplianceEventInput:
		recordEvent(g, in)
	case AmendComplianceEventInput:
		return amendEvent(g, in)
	default:
		document.UnhandledInput(DocumentType, a.Input)
	}
	return nil
}
