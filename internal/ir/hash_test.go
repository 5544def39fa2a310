package ir

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionIDDeterminism(t *testing.T) {
	input := Object{"id": String("r1"), "title": String("Vendor delay")}
	id1, err := ActionID("workbreakdown", "addRisk", "global", input, "2025-01-02T03:04:05Z")
	require.NoError(t, err)
	id2, err := ActionID("workbreakdown", "addRisk", "global", input, "2025-01-02T03:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
}

func TestActionIDChangesWithEachField(t *testing.T) {
	input := Object{"id": String("r1")}
	base := MustActionID("workbreakdown", "addRisk", "global", input, "t1")

	variants := []string{
		MustActionID("agreement", "addRisk", "global", input, "t1"),
		MustActionID("workbreakdown", "removeRisk", "global", input, "t1"),
		MustActionID("workbreakdown", "addRisk", "local", input, "t1"),
		MustActionID("workbreakdown", "addRisk", "global", Object{"id": String("r2")}, "t1"),
		MustActionID("workbreakdown", "addRisk", "global", input, "t2"),
	}
	for i, v := range variants {
		assert.NotEqual(t, base, v, "variant %d", i)
	}
}

func TestActionIDKeyOrderIndependent(t *testing.T) {
	a := NewObject(P("a", Int(1)), P("b", Int(2)))
	b := NewObject(P("b", Int(2)), P("a", Int(1)))
	assert.Equal(t,
		MustActionID("t", "k", "global", a, "ts"),
		MustActionID("t", "k", "global", b, "ts"))
}

func TestStateDigestDomainSeparation(t *testing.T) {
	obj := Object{"x": Int(1)}
	digest, err := StateDigest(obj)
	require.NoError(t, err)

	canonical, err := MarshalCanonical(obj)
	require.NoError(t, err)
	assert.NotEqual(t, hashWithDomain(DomainAction, canonical), digest)
	assert.Equal(t, hashWithDomain(DomainState, canonical), digest)
}

func TestHashHexEncoding(t *testing.T) {
	digest, err := StateDigest(Object{})
	require.NoError(t, err)
	assert.Len(t, digest, 64)
	_, err = hex.DecodeString(digest)
	require.NoError(t, err)
}

func TestMustActionIDPanicsOnUnsupportedValue(t *testing.T) {
	assert.Panics(t, func() {
		MustActionID("t", "k", "global", Object{"bad": unsupported{}}, "ts")
	})
}

type unsupported struct{}

func (unsupported) irValue() {}
