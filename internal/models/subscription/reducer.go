package subscription

import "github.com/roach88/docreduce/internal/document"

func reduce(draft *State, a document.Action) error {
	g := &draft.Global
	switch in := a.Input.(type) {
	case InitializeSubscriptionInput:
		initialize(g, in)
	case ActivateSubscriptionInput:
		return activate(g, in.Timestamp)
	case PauseSubscriptionInput:
		return pause(g, in.Timestamp)
	case ResumeSubscriptionInput:
		return resume(g)
	case MarkExpiringInput:
		return markExpiring(g, in.Timestamp)
	case ExpireSubscriptionInput:
		expire(g, in.Timestamp)
	case RenewSubscriptionInput:
		return renew(g, in.Timestamp)
	case CancelSubscriptionInput:
		return cancel(g, in)
	case SetSubscriptionStatusInput:
		g.Status = in.Status
	case SetAutoRenewInput:
		g.AutoRenew = in.AutoRenew
	case AddSeatInput:
		return addSeat(g, in)
	case UpdateSeatInput:
		return updateSeat(g, in)
	case RemoveSeatInput:
		return removeSeat(g, in)
	case RecordActivityInput:
		g.Activity = append(g.Activity, Activity(in))
	default:
		document.UnhandledInput(DocumentType, a.Input)
	}
	return nil
}
