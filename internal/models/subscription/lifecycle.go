package subscription

import "github.com/roach88/docreduce/internal/document"

func initialize(g *Global, in InitializeSubscriptionInput) {
	g.CustomerID = in.CustomerID
	g.CustomerName = in.CustomerName
	g.OfferingID = in.OfferingID
	g.TierName = in.TierName
	if in.AutoRenew != nil {
		g.AutoRenew = *in.AutoRenew
	}
	createdAt := in.CreatedAt
	g.CreatedAt = &createdAt
}

func activate(g *Global, ts string) error {
	if err := requireStatus(g, ErrCodeActivateNotPending, "activate", StatusPending); err != nil {
		return err
	}
	g.Status = StatusActive
	g.ActivatedSince = &ts
	return nil
}

func pause(g *Global, ts string) error {
	if err := requireStatus(g, ErrCodePauseNotActive, "pause", StatusActive); err != nil {
		return err
	}
	g.Status = StatusPaused
	g.PausedSince = &ts
	return nil
}

func resume(g *Global) error {
	if err := requireStatus(g, ErrCodeResumeNotPaused, "resume", StatusPaused); err != nil {
		return err
	}
	g.Status = StatusActive
	g.PausedSince = nil
	return nil
}

func markExpiring(g *Global, ts string) error {
	if err := requireStatus(g, ErrCodeMarkExpiringNotActive, "mark expiring", StatusActive); err != nil {
		return err
	}
	g.Status = StatusExpiring
	g.ExpiringSince = &ts
	return nil
}

func renew(g *Global, ts string) error {
	if err := requireStatus(g, ErrCodeRenewNotExpiring, "renew", StatusExpiring); err != nil {
		return err
	}
	g.Status = StatusActive
	g.ExpiringSince = nil
	g.ActivatedSince = &ts
	return nil
}

func cancel(g *Global, in CancelSubscriptionInput) error {
	if g.Status.Terminal() {
		return document.InvalidTransition(ErrCodeCancelTerminated,
			"cannot cancel a %s subscription", g.Status)
	}
	ts := in.Timestamp
	g.Status = StatusCancelled
	g.CancelledSince = &ts
	g.CancellationReason = document.ClonePtr(in.Reason)
	return nil
}

// expire ends an ACTIVE or EXPIRING subscription that will not renew.
// Anything else is not due yet and is left alone without an error.
func expire(g *Global, ts string) {
	if g.AutoRenew {
		return
	}
	if g.Status != StatusActive && g.Status != StatusExpiring {
		return
	}
	g.Status = StatusExpired
	g.ExpiredSince = &ts
}
