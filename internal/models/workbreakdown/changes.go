package workbreakdown

import "github.com/roach88/docreduce/internal/document"

func addChangeRequest(g *Global, in AddChangeRequestInput) error {
	crs, err := document.Insert(g.ChangeRequests, ChangeRequest{
		ID:          in.ID,
		Title:       in.Title,
		Description: in.Description,
		RequestedBy: in.RequestedBy,
		Status:      ChangeRequestProposed,
		CreatedAt:   in.Timestamp,
	}, ErrCodeDuplicateChangeRequestID, "change request")
	if err != nil {
		return err
	}
	g.ChangeRequests = crs
	return nil
}

func updateChangeRequest(g *Global, in UpdateChangeRequestInput) error {
	return document.Modify(g.ChangeRequests, in.ID, ErrCodeChangeRequestNotFound, "change request", func(c *ChangeRequest) {
		in.Title.Apply(&c.Title)
		in.Description.ApplyNullable(&c.Description)
	})
}

// decideChangeRequest moves a PROPOSED request to the given outcome. A
// request that was already decided cannot be decided again.
func decideChangeRequest(g *Global, in decision, outcome ChangeRequestStatus) error {
	i := document.IndexOf(g.ChangeRequests, in.ID)
	if i < 0 {
		return document.NotFound(ErrCodeChangeRequestNotFound, "change request", in.ID)
	}
	c := &g.ChangeRequests[i]
	if c.Status != ChangeRequestProposed {
		err := document.InvalidTransition(ErrCodeChangeRequestNotProposed,
			"change request %q is %s, expected %s", c.ID, c.Status, ChangeRequestProposed)
		err.EntityID = c.ID
		return err
	}
	c.Status = outcome
	ts := in.Timestamp
	c.DecidedAt = &ts
	c.DecisionNote = document.ClonePtr(in.Note)
	return nil
}
