package offering

import "github.com/roach88/docreduce/internal/document"

// Reducer error codes.
const (
	ErrCodeDuplicateServiceID     document.ErrorCode = "DuplicateServiceIdError"
	ErrCodeServiceNotFound        document.ErrorCode = "ServiceNotFoundError"
	ErrCodeDuplicateTierID        document.ErrorCode = "DuplicateTierIdError"
	ErrCodeTierNotFound           document.ErrorCode = "TierNotFoundError"
	ErrCodeDuplicateFacetTargetID document.ErrorCode = "DuplicateFacetTargetIdError"
	ErrCodeDuplicateFacetCategory document.ErrorCode = "DuplicateFacetTargetCategoryError"
	ErrCodeFacetTargetNotFound    document.ErrorCode = "FacetTargetNotFoundError"
)
