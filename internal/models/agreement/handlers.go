package agreement

import "github.com/roach88/docreduce/internal/document"

func addParty(g *Global, in AddPartyInput) error {
	parties, err := document.Insert(g.Parties, Party(in), ErrCodeDuplicatePartyID, "party")
	if err != nil {
		return err
	}
	g.Parties = parties
	return nil
}

func updateParty(g *Global, in UpdatePartyInput) error {
	return document.Modify(g.Parties, in.ID, ErrCodePartyNotFound, "party", func(p *Party) {
		in.Name.Apply(&p.Name)
		in.Role.Apply(&p.Role)
		in.Email.ApplyNullable(&p.Email)
	})
}

func sign(g *Global, in SignAgreementInput) error {
	if g.Status != StatusDraft {
		return document.InvalidTransition(ErrCodeAgreementNotDraft,
			"cannot sign a %s agreement, expected %s", g.Status, StatusDraft)
	}
	ts := in.Timestamp
	g.Status = StatusSigned
	g.SignedAt = &ts
	return nil
}

func terminate(g *Global, in TerminateAgreementInput) error {
	if g.Status != StatusSigned {
		return document.InvalidTransition(ErrCodeAgreementNotSigned,
			"cannot terminate a %s agreement, expected %s", g.Status, StatusSigned)
	}
	ts := in.Timestamp
	g.Status = StatusTerminated
	g.TerminatedAt = &ts
	g.TerminationReason = document.ClonePtr(in.Reason)
	return nil
}

func recordEvent(g *Global, in RecordComplianceEventInput) {
	g.Events = append(g.Events, ComplianceEvent{
		ID:          in.ID,
		Type:        in.Type,
		Description: in.Description,
		Timestamp:   in.Timestamp,
	})
}

// amendEvent appends a corrected copy of an event and links the two. Each
// event can be amended at most once; amend the amendment to correct again.
// Event ids are not unique and lookups take the first match, so an
// amendment may not reuse the id of the event it replaces.
func amendEvent(g *Global, in AmendComplianceEventInput) error {
	i := document.IndexOf(g.Events, in.EventID)
	if i < 0 {
		return document.NotFound(ErrCodeEventNotFound, "compliance event", in.EventID)
	}
	if in.ID == in.EventID {
		return document.InvalidTransition(ErrCodeAmendmentReusesID,
			"amendment of compliance event %q must have a new id", in.EventID)
	}
	prior := &g.Events[i]
	if prior.SupersededBy != nil {
		return document.AlreadySuperseded(ErrCodeEventAlreadySuperseded,
			"compliance event", prior.ID, *prior.SupersededBy)
	}

	newID, priorID := in.ID, prior.ID
	prior.SupersededBy = &newID
	g.Events = append(g.Events, ComplianceEvent{
		ID:          in.ID,
		Type:        prior.Type,
		Description: in.Description,
		Timestamp:   in.Timestamp,
		Supersedes:  &priorID,
	})
	return nil
}
