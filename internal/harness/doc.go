// Package harness runs YAML scenarios against document models.
//
// A scenario creates one document, submits a sequence of actions through
// the engine (backed by an in-memory journal) and checks the outcome of
// every step, the final state and the replay guarantee.
//
// # Scenario Format
//
//	name: step_lifecycle
//	description: "Steps can be added, reordered and removed"
//	type: workbreakdown
//	steps:
//	  - kind: addStep
//	    input: { id: s1, title: Plan }
//	  - kind: addStep
//	    input: { id: s1, title: Again }
//	    expect_error: DuplicateStepIdError
//	assertions:
//	  - path: steps.0.title
//	    equals: Plan
//	  - type: count
//	    path: steps
//	    count: 1
//
// A step without expect_error must apply. A step with expect_error must be
// rejected with that code (a reducer error code, or INVALID_INPUT,
// UNKNOWN_KIND, SCOPE_MISMATCH).
//
// # Assertion Types
//
//   - state (default): the value at path equals the expected value
//   - absent: path does not resolve
//   - count: the array or object at path has count entries
//   - history: the applied kinds, in order
//
// Paths are dot separated. A numeric segment indexes an array and a
// segment of the form name[key=value] selects the array element whose key
// field equals value, e.g. steps[id=s2].status.
//
// # Deterministic Execution
//
// Every run uses a fresh registry with a stepping clock starting at
// testutil.Epoch and a fixed document id, so the same scenario always
// produces the same trace and state. After the steps the harness verifies
// that replaying the persisted log reproduces the live state digest.
package harness
