package document_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/docreduce/internal/document"
	"github.com/roach88/docreduce/internal/testutil"
)

type fixture struct {
	model   *document.Model[checklistState]
	factory *document.Factory
	doc     *document.Document[checklistState]
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	m := newChecklistModel()
	f := document.NewFactory(m, newPermissiveValidator(m),
		document.WithClock(testutil.NewDefaultSteppingClock()))
	return fixture{model: m, factory: f, doc: document.New(m, "doc-1", m.Initial())}
}

func (fx fixture) apply(t *testing.T, kind document.Kind, raw string) (document.Record, error) {
	t.Helper()
	a, err := fx.factory.Create(kind, []byte(raw), "")
	require.NoError(t, err)
	return fx.doc.Apply(a)
}

func TestApplyAssignsContiguousIndices(t *testing.T) {
	fx := newFixture(t)

	for i := range 3 {
		rec, err := fx.apply(t, "log", `{"text":"entry"}`)
		require.NoError(t, err)
		assert.Equal(t, int64(i), rec.Index)
	}
	assert.Equal(t, int64(3), fx.doc.Revision(document.ScopeGlobal))
	assert.Equal(t, int64(0), fx.doc.Revision(document.ScopeLocal))
	assert.Len(t, fx.doc.History(document.ScopeGlobal), 3)
}

func TestApplyFailureIsAtomic(t *testing.T) {
	fx := newFixture(t)
	_, err := fx.apply(t, "addItem", `{"id":"a","label":"first"}`)
	require.NoError(t, err)

	before := fx.doc.State()
	digest, err := fx.doc.Digest()
	require.NoError(t, err)

	_, err = fx.apply(t, "addItem", `{"id":"a","label":"again"}`)
	require.Error(t, err)
	assert.True(t, document.IsDuplicateID(err))
	code, ok := document.CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, codeDuplicateItem, code)

	assert.Equal(t, before, fx.doc.State())
	after, err := fx.doc.Digest()
	require.NoError(t, err)
	assert.Equal(t, digest, after)
	assert.Equal(t, int64(1), fx.doc.Revision(document.ScopeGlobal))

	// The failed attempt did not consume an index.
	rec, err := fx.apply(t, "log", `{"text":"next"}`)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.Index)
}

func TestApplyRejectsUnvalidatedAction(t *testing.T) {
	fx := newFixture(t)
	_, err := fx.doc.Apply(document.Action{
		DocumentType: "checklist",
		Kind:         "log",
		Scope:        document.ScopeGlobal,
		Input:        logInput{Text: "forged"},
	})
	require.ErrorIs(t, err, document.ErrActionNotValidated)
	assert.Empty(t, fx.doc.Records())
}

func TestApplyRejectsOtherDocumentType(t *testing.T) {
	fx := newFixture(t)
	other := *fx.model
	other.Type = "other"
	f := document.NewFactory(&other, newPermissiveValidator(&other))
	a, err := f.Create("log", []byte(`{"text":"x"}`), "")
	require.NoError(t, err)

	_, err = fx.doc.Apply(a)
	require.ErrorIs(t, err, document.ErrModelMismatch)
}

func TestApplyCarriesSkip(t *testing.T) {
	fx := newFixture(t)
	a := fx.factory.MustCreate("log", []byte(`{"text":"x"}`))
	rec, err := fx.doc.Apply(a, document.WithSkip(2))
	require.NoError(t, err)
	assert.Equal(t, int64(2), rec.Skip)
	assert.Equal(t, int64(0), rec.Index)
}

func TestStateIsACopy(t *testing.T) {
	fx := newFixture(t)
	_, err := fx.apply(t, "addItem", `{"id":"a","label":"first"}`)
	require.NoError(t, err)

	s := fx.doc.State()
	s.Global.Items[0].Label = "mutated"
	assert.Equal(t, "first", fx.doc.State().Global.Items[0].Label)
}

func TestPartialUpdate(t *testing.T) {
	fx := newFixture(t)
	_, err := fx.apply(t, "addItem", `{"id":"a","label":"first","note":"keep me"}`)
	require.NoError(t, err)

	_, err = fx.apply(t, "updateItem", `{"id":"a","label":"renamed"}`)
	require.NoError(t, err)
	it := fx.doc.State().Global.Items[0]
	assert.Equal(t, "renamed", it.Label)
	require.NotNil(t, it.Note)
	assert.Equal(t, "keep me", *it.Note)

	_, err = fx.apply(t, "updateItem", `{"id":"a","note":null}`)
	require.NoError(t, err)
	it = fx.doc.State().Global.Items[0]
	assert.Equal(t, "renamed", it.Label)
	assert.Nil(t, it.Note)

	_, err = fx.apply(t, "updateItem", `{"id":"missing","label":"x"}`)
	assert.True(t, document.IsNotFound(err))
}

func TestReplayMatchesIncremental(t *testing.T) {
	fx := newFixture(t)
	steps := []struct {
		kind document.Kind
		raw  string
	}{
		{"setTitle", `{"title":"Launch"}`},
		{"addItem", `{"id":"a","label":"A"}`},
		{"addItem", `{"id":"b","label":"B"}`},
		{"addItem", `{"id":"c","label":"C"}`},
		{"reorderItems", `{"order":["c","a"]}`},
		{"removeItem", `{"id":"a"}`},
		{"log", `{"text":"done"}`},
	}
	for _, s := range steps {
		_, err := fx.apply(t, s.kind, s.raw)
		require.NoError(t, err, s.kind)
	}

	replayed, err := document.Replay(fx.model, "doc-1", fx.model.Initial(), fx.doc.Records())
	require.NoError(t, err)

	assert.Equal(t, fx.doc.State(), replayed.State())
	want, err := fx.doc.Digest()
	require.NoError(t, err)
	got, err := replayed.Digest()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, fx.doc.Records(), replayed.Records())

	wantJSON, err := fx.doc.Snapshot()
	require.NoError(t, err)
	gotJSON, err := replayed.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, string(wantJSON), string(gotJSON))
}

func TestReplayDetectsIndexGap(t *testing.T) {
	fx := newFixture(t)
	for range 3 {
		_, err := fx.apply(t, "log", `{"text":"x"}`)
		require.NoError(t, err)
	}
	records := fx.doc.Records()
	gapped := []document.Record{records[0], records[2]}

	_, err := document.Replay(fx.model, "doc-1", fx.model.Initial(), gapped)
	require.ErrorIs(t, err, document.ErrIndexGap)
}

func TestReplaySurfacesRejectedRecord(t *testing.T) {
	fx := newFixture(t)
	a := fx.factory.MustCreate("removeItem", []byte(`{"id":"ghost"}`))
	records := []document.Record{{Index: 0, Action: a}}

	_, err := document.Replay(fx.model, "doc-1", fx.model.Initial(), records)
	require.Error(t, err)
	assert.True(t, document.IsNotFound(err))
}

func TestDigestIgnoresLocalState(t *testing.T) {
	m := newChecklistModel()
	a := document.New(m, "x", checklistState{Local: map[string]string{"cursor": "1"}})
	b := document.New(m, "x", checklistState{Local: map[string]string{"cursor": "9"}})

	da, err := a.Digest()
	require.NoError(t, err)
	db, err := b.Digest()
	require.NoError(t, err)
	assert.Equal(t, da, db)
}

func TestFactoryActionIDIsDeterministic(t *testing.T) {
	m := newChecklistModel()
	clock := testutil.NewFixedClock(testutil.Epoch)
	f1 := document.NewFactory(m, newPermissiveValidator(m), document.WithClock(clock))
	f2 := document.NewFactory(m, newPermissiveValidator(m), document.WithClock(clock))

	a1 := f1.MustCreate("addItem", []byte(`{"label":"A","id":"a"}`))
	a2 := f2.MustCreate("addItem", []byte(`{"id":"a","label":"A"}`))
	assert.Equal(t, a1.ID, a2.ID)
	assert.Equal(t, a1.Payload, a2.Payload)
	assert.Equal(t, "2025-01-01T00:00:00Z", a1.TimestampString())
	assert.True(t, a1.Validated())
}

func TestFactoryNewMatchesCreate(t *testing.T) {
	m := newChecklistModel()
	clock := testutil.NewFixedClock(testutil.Epoch)
	f := document.NewFactory(m, newPermissiveValidator(m), document.WithClock(clock))

	typed := f.MustNew(addItemInput{ID: "a", Label: "A"})
	raw := f.MustCreate("addItem", []byte(`{"id":"a","label":"A"}`))
	assert.Equal(t, raw.ID, typed.ID)
	assert.Equal(t, addItemInput{ID: "a", Label: "A"}, typed.Input)
}

func TestFactoryErrors(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.factory.Create("explode", []byte(`{}`), "")
	require.ErrorIs(t, err, document.ErrUnknownKind)

	_, err = fx.factory.Create("log", []byte(`{"text":"x"}`), document.ScopeLocal)
	require.ErrorIs(t, err, document.ErrScopeMismatch)

	_, err = fx.factory.Create("log", []byte(`not json`), "")
	require.ErrorIs(t, err, document.ErrInvalidInput)

	assert.Panics(t, func() { fx.factory.MustCreate("explode", []byte(`{}`)) })
}

func TestFactoryRestoreKeepsTimestamp(t *testing.T) {
	fx := newFixture(t)
	orig := fx.factory.MustCreate("log", []byte(`{"text":"x"}`))

	restored, err := fx.factory.Restore(orig.Kind, orig.Scope, []byte(`{"text":"x"}`), orig.Timestamp)
	require.NoError(t, err)
	assert.Equal(t, orig.ID, restored.ID)
	assert.True(t, orig.Timestamp.Equal(restored.Timestamp))
}

func TestUnhandledInputPanics(t *testing.T) {
	m := newChecklistModel()
	m.Definitions = append(m.Definitions, document.Define[strayInput]())
	f := document.NewFactory(m, newPermissiveValidator(m))
	doc := document.New(m, "d", m.Initial())

	a := f.MustCreate("stray", []byte(`{}`))
	assert.Panics(t, func() { _, _ = doc.Apply(a) })
}

type strayInput struct{}

func (strayInput) Kind() document.Kind { return "stray" }

func TestRegistry(t *testing.T) {
	m := newChecklistModel()
	reg, err := document.NewRegistry(newPermissiveValidator(m), testutil.NewFixedClock(time.Time{}), m)
	require.NoError(t, err)

	assert.Equal(t, []string{"checklist"}, reg.Types())
	desc, ok := reg.Model("checklist")
	require.True(t, ok)
	assert.Contains(t, desc.Kinds(), document.Kind("addItem"))

	f, err := reg.Factory("checklist")
	require.NoError(t, err)
	assert.Equal(t, "checklist", f.DocumentType())

	_, err = reg.Factory("nope")
	require.Error(t, err)
}

func TestRegistryRejectsMissingSchema(t *testing.T) {
	m := newChecklistModel()
	v := newPermissiveValidator(m)
	delete(v.kinds, "log")

	_, err := document.NewRegistry(v, document.SystemClock{}, m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checklist/log: no schema")
}

func TestRegistryRejectsDuplicateType(t *testing.T) {
	m := newChecklistModel()
	_, err := document.NewRegistry(newPermissiveValidator(m), document.SystemClock{}, m, m)
	require.Error(t, err)
}

func TestDescriptorRoundTrip(t *testing.T) {
	fx := newFixture(t)
	var desc document.Descriptor = fx.model

	h := desc.NewDocument("h1")
	a := fx.factory.MustCreate("setTitle", []byte(`{"title":"T"}`))
	_, err := h.Apply(a)
	require.NoError(t, err)

	replayed, err := desc.Replay("h1", h.Records())
	require.NoError(t, err)
	want, _ := h.Digest()
	got, _ := replayed.Digest()
	assert.Equal(t, want, got)
}

func TestReducerErrorMatching(t *testing.T) {
	err := document.NotFound(codeItemNotFound, "item", "x")
	wrapped := errors.Join(errors.New("context"), err)

	assert.True(t, document.IsNotFound(wrapped))
	assert.False(t, document.IsDuplicateID(wrapped))
	assert.ErrorIs(t, wrapped, &document.ReducerError{Code: codeItemNotFound})
	assert.NotErrorIs(t, wrapped, &document.ReducerError{Code: codeDuplicateItem})
	assert.Equal(t, `ItemNotFoundError: item "x" not found (id=x)`, err.Error())

	_, ok := document.CodeOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestErrorFamilies(t *testing.T) {
	assert.True(t, document.IsInvalidTransition(document.InvalidTransition("X", "bad %s", "state")))
	assert.True(t, document.IsAlreadySuperseded(document.AlreadySuperseded("Y", "event", "e1", "e2")))
	assert.True(t, document.IsDuplicateID(document.DuplicateID("Z", "seat", "s1")))
}

func TestFieldTriState(t *testing.T) {
	var in updateItemInput
	require.NoError(t, json.Unmarshal([]byte(`{"id":"a","note":null}`), &in))
	assert.False(t, in.Label.Set)
	assert.True(t, in.Note.Set)
	assert.True(t, in.Note.Null)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"a","label":"x"}`), &in))
	assert.True(t, in.Label.Present())
	assert.Equal(t, "x", in.Label.Value)

	out, err := json.Marshal(updateItemInput{ID: "a", Note: document.Clear[string]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"a","note":null}`, string(out))

	out, err = json.Marshal(updateItemInput{ID: "a", Label: document.Some("y")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"a","label":"y"}`, string(out))
}

func TestFieldApply(t *testing.T) {
	label := "old"
	document.Field[string]{}.Apply(&label)
	assert.Equal(t, "old", label)
	document.Clear[string]().Apply(&label)
	assert.Equal(t, "old", label)
	document.Some("new").Apply(&label)
	assert.Equal(t, "new", label)

	note := &label
	document.Field[string]{}.ApplyNullable(&note)
	assert.NotNil(t, note)
	document.Clear[string]().ApplyNullable(&note)
	assert.Nil(t, note)
	document.Some("n").ApplyNullable(&note)
	require.NotNil(t, note)
	assert.Equal(t, "n", *note)
}
