package workbreakdown

import "github.com/roach88/docreduce/internal/document"

// Input is implemented by every work breakdown action input.
type Input interface {
	document.Input
	workBreakdownInput()
}

type SetWorkBreakdownTitleInput struct {
	Title string `json:"title"`
}

type AddStepInput struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   *string `json:"description,omitempty"`
	Owner         *string `json:"owner,omitempty"`
	EstimateHours *int64  `json:"estimateHours,omitempty"`
}

// UpdateStepInput changes only the fields present. Description, Owner and
// EstimateHours accept null to clear.
type UpdateStepInput struct {
	ID            string                 `json:"id"`
	Title         document.Field[string] `json:"title,omitzero"`
	Description   document.Field[string] `json:"description,omitzero"`
	Owner         document.Field[string] `json:"owner,omitzero"`
	EstimateHours document.Field[int64]  `json:"estimateHours,omitzero"`
}

type RemoveStepInput struct {
	ID string `json:"id"`
}

type SetStepStatusInput struct {
	ID     string     `json:"id"`
	Status StepStatus `json:"status"`
}

type ReorderStepsInput struct {
	Order []string `json:"order"`
}

type AddRiskInput struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Likelihood  RiskLevel `json:"likelihood"`
	Impact      RiskLevel `json:"impact"`
	Mitigation  *string   `json:"mitigation,omitempty"`
	StepID      *string   `json:"stepId,omitempty"`
}

type UpdateRiskInput struct {
	ID          string                    `json:"id"`
	Title       document.Field[string]    `json:"title,omitzero"`
	Description document.Field[string]    `json:"description,omitzero"`
	Likelihood  document.Field[RiskLevel] `json:"likelihood,omitzero"`
	Impact      document.Field[RiskLevel] `json:"impact,omitzero"`
	Mitigation  document.Field[string]    `json:"mitigation,omitzero"`
	StepID      document.Field[string]    `json:"stepId,omitzero"`
}

type RemoveRiskInput struct {
	ID string `json:"id"`
}

type AddChangeRequestInput struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	RequestedBy string  `json:"requestedBy"`
	Timestamp   string  `json:"timestamp"`
}

type UpdateChangeRequestInput struct {
	ID          string                 `json:"id"`
	Title       document.Field[string] `json:"title,omitzero"`
	Description document.Field[string] `json:"description,omitzero"`
}

// decision is the payload shared by approve and reject.
type decision struct {
	ID        string  `json:"id"`
	Timestamp string  `json:"timestamp"`
	Note      *string `json:"note,omitempty"`
}

type ApproveChangeRequestInput decision

type RejectChangeRequestInput decision

type RecordExtractionInput struct {
	ID        string `json:"id"`
	Source    string `json:"source"`
	Summary   string `json:"summary"`
	StepCount int64  `json:"stepCount"`
	Timestamp string `json:"timestamp"`
}

func (SetWorkBreakdownTitleInput) Kind() document.Kind { return "setWorkBreakdownTitle" }
func (AddStepInput) Kind() document.Kind               { return "addStep" }
func (UpdateStepInput) Kind() document.Kind            { return "updateStep" }
func (RemoveStepInput) Kind() document.Kind            { return "removeStep" }
func (SetStepStatusInput) Kind() document.Kind         { return "setStepStatus" }
func (ReorderStepsInput) Kind() document.Kind          { return "reorderSteps" }
func (AddRiskInput) Kind() document.Kind               { return "addRisk" }
func (UpdateRiskInput) Kind() document.Kind            { return "updateRisk" }
func (RemoveRiskInput) Kind() document.Kind            { return "removeRisk" }
func (AddChangeRequestInput) Kind() document.Kind      { return "addChangeRequest" }
func (UpdateChangeRequestInput) Kind() document.Kind   { return "updateChangeRequest" }
func (ApproveChangeRequestInput) Kind() document.Kind  { return "approveChangeRequest" }
func (RejectChangeRequestInput) Kind() document.Kind   { return "rejectChangeRequest" }
func (RecordExtractionInput) Kind() document.Kind      { return "recordExtraction" }

func (SetWorkBreakdownTitleInput) workBreakdownInput() {}
func (AddStepInput) workBreakdownInput()               {}
func (UpdateStepInput) workBreakdownInput()            {}
func (RemoveStepInput) workBreakdownInput()            {}
func (SetStepStatusInput) workBreakdownInput()         {}
func (ReorderStepsInput) workBreakdownInput()          {}
func (AddRiskInput) workBreakdownInput()               {}
func (UpdateRiskInput) workBreakdownInput()            {}
func (RemoveRiskInput) workBreakdownInput()            {}
func (AddChangeRequestInput) workBreakdownInput()      {}
func (UpdateChangeRequestInput) workBreakdownInput()   {}
func (ApproveChangeRequestInput) workBreakdownInput()  {}
func (RejectChangeRequestInput) workBreakdownInput()   {}
func (RecordExtractionInput) workBreakdownInput()      {}
