package agreement

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/docreduce/internal/document"
	"github.com/roach88/docreduce/internal/schema"
	"github.com/roach88/docreduce/internal/testutil"
)

type fixture struct {
	factory *document.Factory
	doc     *document.Document[State]
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	reg, err := schema.NewRegistry(Schema())
	require.NoError(t, err)
	m := Model()
	return &fixture{
		factory: document.NewFactory(m, reg, document.WithClock(testutil.NewDefaultSteppingClock())),
		doc:     document.New(m, "agr-1", m.Initial()),
	}
}

func (fx *fixture) apply(t *testing.T, kind document.Kind, raw string) error {
	t.Helper()
	a, err := fx.factory.Create(kind, []byte(raw), "")
	require.NoError(t, err, "%s %s", kind, raw)
	_, err = fx.doc.Apply(a)
	return err
}

func (fx *fixture) must(t *testing.T, kind document.Kind, raw string) {
	t.Helper()
	require.NoError(t, fx.apply(t, kind, raw))
}

const event1 = `{"id":"e1","type":"audit","description":"Annual audit passed","timestamp":"2025-06-01T00:00:00Z"}`

func TestSchemaCoversEveryKind(t *testing.T) {
	reg, err := schema.NewRegistry(Schema())
	require.NoError(t, err)
	assert.ElementsMatch(t, Model().Kinds(), reg.Kinds(DocumentType))
}

func TestParties(t *testing.T) {
	fx := newFixture(t)
	fx.must(t, "addParty", `{"id":"p1","name":"Acme","role":"CUSTOMER"}`)

	err := fx.apply(t, "addParty", `{"id":"p1","name":"Acme","role":"CUSTOMER"}`)
	code, _ := document.CodeOf(err)
	assert.Equal(t, ErrCodeDuplicatePartyID, code)

	err = fx.apply(t, "updateParty", `{"id":"p9","name":"x"}`)
	code, _ = document.CodeOf(err)
	assert.Equal(t, ErrCodePartyNotFound, code)

	fx.must(t, "updateParty", `{"id":"p1","role":"WITNESS"}`)
	assert.Equal(t, RoleWitness, fx.doc.State().Global.Parties[0].Role)

	// removeParty is the lenient variant: a missing id is not an error.
	fx.must(t, "removeParty", `{"id":"p9"}`)
	fx.must(t, "removeParty", `{"id":"p1"}`)
	assert.Empty(t, fx.doc.State().Global.Parties)
}

func TestLifecycle(t *testing.T) {
	fx := newFixture(t)

	err := fx.apply(t, "terminateAgreement", `{"timestamp":"2025-05-01T00:00:00Z"}`)
	code, _ := document.CodeOf(err)
	assert.Equal(t, ErrCodeAgreementNotSigned, code)

	fx.must(t, "signAgreement", `{"timestamp":"2025-05-01T00:00:00Z"}`)
	err = fx.apply(t, "signAgreement", `{"timestamp":"2025-05-02T00:00:00Z"}`)
	code, _ = document.CodeOf(err)
	assert.Equal(t, ErrCodeAgreementNotDraft, code)
	assert.True(t, document.IsInvalidTransition(err))

	fx.must(t, "terminateAgreement", `{"timestamp":"2025-09-01T00:00:00Z","reason":"breach"}`)
	g := fx.doc.State().Global
	assert.Equal(t, StatusTerminated, g.Status)
	require.NotNil(t, g.TerminationReason)
	assert.Equal(t, "breach", *g.TerminationReason)
	assert.Equal(t, "2025-05-01T00:00:00Z", *g.SignedAt)
}

func TestComplianceEventsAppendWithoutChecks(t *testing.T) {
	fx := newFixture(t)
	fx.must(t, "recordComplianceEvent", event1)
	fx.must(t, "recordComplianceEvent", event1)
	assert.Len(t, fx.doc.State().Global.Events, 2)
}

func TestAmendComplianceEvent(t *testing.T) {
	fx := newFixture(t)

	err := fx.apply(t, "amendComplianceEvent", `{"id":"e2","eventId":"e1","description":"x","timestamp":"2025-06-02T00:00:00Z"}`)
	code, _ := document.CodeOf(err)
	assert.Equal(t, ErrCodeEventNotFound, code)
	assert.True(t, document.IsNotFound(err))

	fx.must(t, "recordComplianceEvent", event1)
	fx.must(t, "amendComplianceEvent", `{"id":"e2","eventId":"e1","description":"corrected","timestamp":"2025-06-02T00:00:00Z"}`)

	events := fx.doc.State().Global.Events
	require.Len(t, events, 2)
	require.NotNil(t, events[0].SupersededBy)
	assert.Equal(t, "e2", *events[0].SupersededBy)
	require.NotNil(t, events[1].Supersedes)
	assert.Equal(t, "e1", *events[1].Supersedes)
	assert.Equal(t, "audit", events[1].Type)

	err = fx.apply(t, "amendComplianceEvent", `{"id":"e3","eventId":"e1","description":"again","timestamp":"2025-06-03T00:00:00Z"}`)
	require.Error(t, err)
	assert.True(t, document.IsAlreadySuperseded(err))
	code, _ = document.CodeOf(err)
	assert.Equal(t, ErrCodeEventAlreadySuperseded, code)
	assert.Len(t, fx.doc.State().Global.Events, 2)

	// The amendment itself can still be amended.
	fx.must(t, "amendComplianceEvent", `{"id":"e3","eventId":"e2","description":"final","timestamp":"2025-06-03T00:00:00Z"}`)
	assert.Len(t, fx.doc.State().Global.Events, 3)
}

func TestAmendmentNeedsNewID(t *testing.T) {
	fx := newFixture(t)
	fx.must(t, "recordComplianceEvent", event1)

	err := fx.apply(t, "amendComplianceEvent", `{"id":"e1","eventId":"e1","description":"same id","timestamp":"2025-06-02T00:00:00Z"}`)
	assert.True(t, document.IsInvalidTransition(err))
	code, _ := document.CodeOf(err)
	assert.Equal(t, ErrCodeAmendmentReusesID, code)

	events := fx.doc.State().Global.Events
	require.Len(t, events, 1)
	assert.Nil(t, events[0].SupersededBy)
}

func TestReplayGolden(t *testing.T) {
	fx := newFixture(t)
	fx.must(t, "setAgreementTitle", `{"title":"Hosting MSA"}`)
	fx.must(t, "addParty", `{"id":"p1","name":"Acme Corp","role":"CUSTOMER","email":"legal@acme.test"}`)
	fx.must(t, "addParty", `{"id":"p2","name":"HostCo","role":"PROVIDER"}`)
	fx.must(t, "addParty", `{"id":"p3","name":"Witness","role":"WITNESS"}`)
	fx.must(t, "removeParty", `{"id":"p3"}`)
	fx.must(t, "removeParty", `{"id":"p3"}`)
	fx.must(t, "updateParty", `{"id":"p1","email":null}`)
	fx.must(t, "signAgreement", `{"timestamp":"2025-05-01T12:00:00Z"}`)
	fx.must(t, "recordComplianceEvent", event1)
	fx.must(t, "amendComplianceEvent", `{"id":"e2","eventId":"e1","description":"Annual audit passed with notes","timestamp":"2025-06-02T00:00:00Z"}`)

	replayed, err := Model().Replay("agr-1", fx.doc.Records())
	require.NoError(t, err)
	assert.Equal(t, int64(10), replayed.Revision(document.ScopeGlobal))

	snap, err := replayed.Snapshot()
	require.NoError(t, err)
	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "replay", snap)
}
