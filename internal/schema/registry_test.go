package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/docreduce/internal/document"
	"github.com/roach88/docreduce/internal/ir"
)

const testSchema = `
import "time"

#Timestamp: string & time.Time
#Level: "LOW" | "MEDIUM" | "HIGH"

#addRisk: {
	id:          string & !=""
	title:       string
	level:       #Level
	probability: int & >=0 & <=100
	mitigation?: string | null
	tags?: [...string]
}

#markDone: {
	timestamp: #Timestamp
	done:      bool
}
`

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry(Source{DocumentType: "plan", CUE: []byte(testSchema)})
	require.NoError(t, err)
	return r
}

func TestRegistryDiscoversKinds(t *testing.T) {
	r := newTestRegistry(t)
	assert.Equal(t, []document.Kind{"addRisk", "markDone"}, r.Kinds("plan"))
	assert.True(t, r.Has("plan", "addRisk"))
	assert.False(t, r.Has("plan", "Level"), "upper-case definitions are helpers")
	assert.False(t, r.Has("other", "addRisk"))
}

func TestValidateAccepts(t *testing.T) {
	r := newTestRegistry(t)
	obj, err := r.Validate("plan", "addRisk",
		[]byte(`{"id":"r1","title":"Vendor","level":"HIGH","probability":40,"mitigation":null,"tags":["a"]}`))
	require.NoError(t, err)
	assert.Equal(t, ir.String("r1"), obj["id"])
	assert.Equal(t, ir.Null{}, obj["mitigation"])
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		kind   document.Kind
		raw    string
		fields []string
	}{
		{"missing field", "addRisk", `{"id":"r1","level":"LOW","probability":1}`, []string{"title"}},
		{"wrong type", "addRisk", `{"id":"r1","title":7,"level":"LOW","probability":1}`, []string{"title"}},
		{"enum", "addRisk", `{"id":"r1","title":"t","level":"EXTREME","probability":1}`, []string{"level"}},
		{"range", "addRisk", `{"id":"r1","title":"t","level":"LOW","probability":101}`, []string{"probability"}},
		{"empty id", "addRisk", `{"id":"","title":"t","level":"LOW","probability":1}`, []string{"id"}},
		{"unknown field", "addRisk", `{"id":"r1","title":"t","level":"LOW","probability":1,"owner":"x"}`, []string{"owner"}},
		{"bad timestamp", "markDone", `{"timestamp":"yesterday","done":true}`, []string{"timestamp"}},
		{"null on non-nullable", "markDone", `{"timestamp":"2025-01-01T00:00:00Z","done":null}`, []string{"done"}},
	}
	r := newTestRegistry(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Validate("plan", tt.kind, []byte(tt.raw))
			require.Error(t, err)

			var vf *ValidationFailure
			require.True(t, errors.As(err, &vf), "got %T: %v", err, err)
			assert.ErrorIs(t, err, document.ErrInvalidInput)
			for _, f := range tt.fields {
				assert.Contains(t, vf.Fields(), f)
			}
			_, isReducer := document.AsReducerError(err)
			assert.False(t, isReducer)
		})
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	r := newTestRegistry(t)
	_, err := r.Validate("plan", "addRisk", []byte(`{"id":"r1","level":"NOPE","probability":-1}`))

	var vf *ValidationFailure
	require.ErrorAs(t, err, &vf)
	fields := vf.Fields()
	assert.Contains(t, fields, "level")
	assert.Contains(t, fields, "probability")
	assert.Contains(t, fields, "title")
	assert.IsNonDecreasing(t, fields)
}

func TestValidateMalformedInputNeverPanics(t *testing.T) {
	r := newTestRegistry(t)
	for _, raw := range []string{``, `{`, `[]`, `null`, `"x"`, `{"probability":1.5}`, `{"id":"a"} trailing`} {
		assert.NotPanics(t, func() {
			_, err := r.Validate("plan", "addRisk", []byte(raw))
			assert.ErrorIs(t, err, document.ErrInvalidInput, raw)
		})
	}
}

func TestValidateUnknownKind(t *testing.T) {
	r := newTestRegistry(t)
	_, err := r.Validate("plan", "explode", []byte(`{}`))
	assert.ErrorIs(t, err, document.ErrUnknownKind)
}

func TestNewRegistryErrors(t *testing.T) {
	_, err := NewRegistry(Source{DocumentType: "bad", CUE: []byte(`#x: {`)})
	require.Error(t, err)

	_, err = NewRegistry(Source{DocumentType: "empty", CUE: []byte(`#Helper: string`)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no action kinds")
}

func TestValidationFailureMessage(t *testing.T) {
	vf := &ValidationFailure{
		DocumentType: "plan",
		Kind:         "addRisk",
		Issues:       []FieldIssue{{Field: "id", Message: "required field is missing"}, {Message: "bad"}},
	}
	assert.Equal(t, "invalid plan/addRisk input: id: required field is missing; bad", vf.Error())
}
