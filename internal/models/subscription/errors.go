package subscription

import "github.com/roach88/docreduce/internal/document"

// Reducer error codes.
const (
	ErrCodeActivateNotPending    document.ErrorCode = "ActivateNotPendingError"
	ErrCodePauseNotActive        document.ErrorCode = "PauseNotActiveError"
	ErrCodeResumeNotPaused       document.ErrorCode = "ResumeNotPausedError"
	ErrCodeMarkExpiringNotActive document.ErrorCode = "MarkExpiringNotActiveError"
	ErrCodeCancelTerminated      document.ErrorCode = "CancelTerminatedSubscriptionError"
	ErrCodeRenewNotExpiring      document.ErrorCode = "RenewNotExpiringError"
	ErrCodeDuplicateSeatID       document.ErrorCode = "DuplicateSeatIdError"
	ErrCodeSeatNotFound          document.ErrorCode = "SeatNotFoundError"
)

func requireStatus(g *Global, code document.ErrorCode, kind string, want Status) error {
	if g.Status != want {
		return document.InvalidTransition(code, "cannot %s a %s subscription, expected %s", kind, g.Status, want)
	}
	return nil
}
