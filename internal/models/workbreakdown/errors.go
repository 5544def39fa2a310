package workbreakdown

import "github.com/roach88/docreduce/internal/document"

// Reducer error codes.
const (
	ErrCodeDuplicateStepID          document.ErrorCode = "DuplicateStepIdError"
	ErrCodeStepNotFound             document.ErrorCode = "StepNotFoundError"
	ErrCodeDuplicateRiskID          document.ErrorCode = "DuplicateRiskIdError"
	ErrCodeRiskNotFound             document.ErrorCode = "RiskNotFoundError"
	ErrCodeDuplicateChangeRequestID document.ErrorCode = "DuplicateChangeRequestIdError"
	ErrCodeChangeRequestNotFound    document.ErrorCode = "ChangeRequestNotFoundError"
	ErrCodeChangeRequestNotProposed document.ErrorCode = "ChangeRequestNotProposedError"
)
